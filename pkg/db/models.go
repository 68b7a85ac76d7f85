// pkg/db/models.go
package db

import "time"

// SavingsEntry is one recorded amount of the 365-day savings challenge. The
// composite unique index keeps an amount from being booked twice for the same
// user even when two writers race.
type SavingsEntry struct {
	ID     uint      `gorm:"primaryKey"`
	UserID int64     `gorm:"index:idx_user_date;uniqueIndex:idx_user_amount"`
	Date   time.Time `gorm:"type:date;not null;index:idx_user_date"`
	Amount int       `gorm:"not null;uniqueIndex:idx_user_amount"`
}

// ScheduleConfig holds a user's daily reminder time. One row per user, last
// write wins.
type ScheduleConfig struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    int64  `gorm:"uniqueIndex"`
	TimeOfDay string `gorm:"not null;size:5"` // "HH:MM", process-local wall clock
}
