package models

import "gorm.io/gorm"

// Score is a leaderboard entry. UserName is free text supplied by the
// client and is not linked to a User account.
type Score struct {
	gorm.Model

	UserName   string `gorm:"not null"`
	Difficulty string `gorm:"not null"`
	Points     int    `gorm:"not null;index:idx_scores_points,sort:desc"`
	Date       string `gorm:"not null"` // display timestamp, DD/MM HH:MM
}
