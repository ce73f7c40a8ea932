package config

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// The admin password is a classroom convenience, not a security boundary,
// so a weak one is only worth a startup warning. Lookahead needs regexp2.
const passwordComplexityPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Admin    *AdminConfig    `mapstructure:"admin"`
	Clock    *ClockConfig    `mapstructure:"clock"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// AdminConfig is the single hardcoded credential pair the dashboard
// accepts. Password may be plaintext or a bcrypt hash.
type AdminConfig struct {
	ID       string `mapstructure:"id"`
	Password string `mapstructure:"password"`
}

type ClockConfig struct {
	Timezone string `mapstructure:"timezone"`
}

func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.API.Port == "" {
		return fmt.Errorf("api.port is required")
	}
	if c.API.JWTSigningKey == "" {
		return fmt.Errorf("api.jwt_signing_key is required")
	}
	if c.Admin == nil || c.Admin.ID == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin.id and admin.password are required")
	}
	if c.Clock == nil || c.Clock.Timezone == "" {
		return fmt.Errorf("clock.timezone is required")
	}

	if !strings.HasPrefix(c.Admin.Password, "$2") {
		re := regexp2.MustCompile(passwordComplexityPattern, regexp2.None)
		if ok, _ := re.MatchString(c.Admin.Password); !ok {
			zap.L().Warn("admin password does not meet complexity recommendation (8+ chars, letters and digits)")
		}
	}

	return nil
}
