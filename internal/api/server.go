package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/querylab/groupboard/docs"
	v1 "github.com/querylab/groupboard/internal/api/handler/v1"
	"github.com/querylab/groupboard/internal/api/middleware"
	"github.com/querylab/groupboard/internal/clock"
	"github.com/querylab/groupboard/internal/config"
	"github.com/querylab/groupboard/internal/repository"
	"github.com/querylab/groupboard/internal/repository/dao"
	"github.com/querylab/groupboard/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, night *clock.NightEvaluator) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	slots := dao.NewSlotDAO(db)

	groupSvc := service.NewGroupService(repository.NewGroupRepository(slots))
	sessionSvc := service.NewSessionService(repository.NewSessionRepository(slots))
	shellSvc := service.NewShellService(groupSvc)
	authSvc := service.NewAuthService(conf.Admin)

	authHandler := v1.NewAuthHandler(conf.API, authSvc, shellSvc)
	groupHandler := v1.NewGroupHandler(groupSvc, night)
	sessionHandler := v1.NewSessionHandler(sessionSvc)
	shellHandler := v1.NewShellHandler(shellSvc)

	s.MountHandlers(authHandler, groupHandler, sessionHandler, shellHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, groupHandler *v1.GroupHandler, sessionHandler *v1.SessionHandler, shellHandler *v1.ShellHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/logout", authHandler.HandleLogout)

		public.GET("/groups", groupHandler.HandleGetGroups)
		public.GET("/groups/:groupID", groupHandler.HandleGetGroup)
		public.GET("/groups/:groupID/avatar", groupHandler.HandleGetAvatar)

		public.GET("/sessions", sessionHandler.HandleGetSessions)

		public.GET("/shell", shellHandler.HandleGetShell)
		public.POST("/shell/select-group", shellHandler.HandleSelectGroup)
		public.POST("/shell/back", shellHandler.HandleBack)
		public.POST("/shell/view", shellHandler.HandleSetView)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/groups", groupHandler.HandleCreateGroup)
		admin.DELETE("/groups/:groupID", groupHandler.HandleDeleteGroup)
		admin.PATCH("/groups/:groupID/name", groupHandler.HandleRenameGroup)
		admin.POST("/groups/:groupID/members", groupHandler.HandleAddMember)
		admin.DELETE("/groups/:groupID/members/:position", groupHandler.HandleRemoveMember)
		admin.POST("/groups/:groupID/points", groupHandler.HandleAdjustPoints)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Groupboard API"
	docs.SwaggerInfo.Description = "Classroom gamification dashboard backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
