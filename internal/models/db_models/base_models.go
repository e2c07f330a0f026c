package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel keys every entity kind on its own auto-incrementing counter.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt int64 `json:"created_at"`
}

// Hook to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().Unix()
	}
	return nil
}
