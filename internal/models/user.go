package models

// User is an identity record. The ID is an opaque server-generated
// string (UUID v4), assigned once at registration and never changed.
// Email is stored lowercased so uniqueness is case-insensitive.
type User struct {
	ID           string `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password" json:"-"`
	Username     string `gorm:"type:varchar(255);not null" json:"username"`

	// Relations
	Todos []Todo `gorm:"foreignKey:CreatedBy" json:"-"`
}
