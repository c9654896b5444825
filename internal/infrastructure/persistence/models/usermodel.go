package models

import "time"

// UserModel is the persistence shape of a helpdesk account.
// Password holds a bcrypt hash.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:50;not null"`
	Password  string `gorm:"size:255;not null"`
	Profile   string `gorm:"size:20;not null;index"`
	FirstName string `gorm:"size:50"`
	LastName  string `gorm:"size:50"`
	IsActive  bool   `gorm:"not null"`
	Email     string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
