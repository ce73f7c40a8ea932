package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrSlotNotFound = errors.New("slot not found")

// Slot is one named durable slot holding a JSON-encoded document. The whole
// dashboard persists through two of them ("groups" and "sessions"); last
// write wins, no version tag.
type Slot struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

type SlotDAO struct {
	db *gorm.DB
}

func NewSlotDAO(db *gorm.DB) *SlotDAO {
	return &SlotDAO{
		db: db,
	}
}

func (d *SlotDAO) Read(ctx context.Context, key string) ([]byte, error) {
	var slot Slot

	result := d.db.WithContext(ctx).First(&slot, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}

		return nil, result.Error
	}

	return slot.Value, nil
}

func (d *SlotDAO) Write(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: key, Value: value}

	result := d.db.WithContext(ctx).Create(&slot)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return d.db.WithContext(ctx).
				Model(&Slot{}).
				Where("key = ?", key).
				Update("value", value).Error
		}

		return result.Error
	}

	return nil
}
