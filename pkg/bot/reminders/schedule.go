package reminders

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"gorm.io/gorm"
)

const clockLayout = "15:04"

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")

// ParseTimeOfDay validates an HH:MM string and normalizes it ("8:5" becomes
// "08:05").
func ParseTimeOfDay(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return "", ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return "", ErrInvalidTimeOfDay
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// SetSchedule stores the user's daily reminder time, replacing any previous
// one.
func SetSchedule(userID int64, timeOfDay string) error {
	normalized, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return err
	}
	cfg := db.ScheduleConfig{UserID: userID, TimeOfDay: normalized}
	return db.DB.Where("user_id = ?", userID).
		Assign(db.ScheduleConfig{TimeOfDay: normalized}).
		FirstOrCreate(&cfg).Error
}

// GetSchedule returns the user's reminder time. ok is false when no schedule
// is configured.
func GetSchedule(userID int64) (string, bool, error) {
	var cfg db.ScheduleConfig
	err := db.DB.Where("user_id = ?", userID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cfg.TimeOfDay, true, nil
}

// ClearSchedule removes the user's reminder configuration, if any.
func ClearSchedule(userID int64) error {
	return db.DB.Where("user_id = ?", userID).Delete(&db.ScheduleConfig{}).Error
}
