package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	FullName       string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
}
