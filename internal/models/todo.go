package models

import (
	"time"
)

// Todo is a row from the todos table. CreatedAt is set by the database
// on insert and is immutable afterwards; only title, description and
// status are ever updated in place.
type Todo struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	CreatedBy   string    `gorm:"type:varchar(36);index;not null" json:"created_by"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      bool      `gorm:"not null;default:false" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}
