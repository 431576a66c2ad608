package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Platform      string    `gorm:"type:varchar(50);not null" json:"platform"`
	Title         string    `gorm:"type:varchar(255)" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	ScheduledDate string    `gorm:"type:varchar(10);not null;index" json:"scheduled_date"`
	ScheduledTime string    `gorm:"type:varchar(5)" json:"scheduled_time"`
	ImageURL      string    `gorm:"type:varchar(500)" json:"image_url"`
	Status        string    `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type UserModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
