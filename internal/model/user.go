package model

import "time"

// User is a registered account. Email is the login key.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Email        string    `gorm:"size:254;not null;uniqueIndex;index:idx_users_email_username,unique" json:"email"`
	Username     string    `gorm:"size:150;not null;uniqueIndex;index:idx_users_email_username,unique" json:"username"`
	FirstName    string    `gorm:"size:150;not null" json:"first_name"`
	LastName     string    `gorm:"size:150;not null" json:"last_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
}
