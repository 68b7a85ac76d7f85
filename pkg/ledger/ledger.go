// Package ledger is the savings ledger: every amount a user has recorded for
// the 365-day challenge, with the draw-without-replacement invariant on the
// 1..365 range.
package ledger

import (
	"errors"
	"time"

	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"gorm.io/gorm"
)

const (
	MinAmount = 1
	MaxAmount = 365
)

type RecordResult int

const (
	RecordSaved RecordResult = iota + 1
	RecordDuplicate
	RecordOutOfRange
)

// RecordEntry appends amount to the user's ledger dated today. The result
// covers the domain outcomes; a non-nil error means the store failed and the
// result is not meaningful.
func RecordEntry(userID int64, amount int) (RecordResult, error) {
	if amount < MinAmount || amount > MaxAmount {
		return RecordOutOfRange, nil
	}

	var count int64
	if err := db.DB.Model(&db.SavingsEntry{}).
		Where("user_id = ? AND amount = ?", userID, amount).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return RecordDuplicate, nil
	}

	entry := db.SavingsEntry{
		UserID: userID,
		Date:   today(),
		Amount: amount,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		// The unique index on (user_id, amount) closes the gap between the
		// existence check and the insert; the losing writer lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return RecordDuplicate, nil
		}
		return 0, err
	}
	return RecordSaved, nil
}

// TotalAndCount returns the sum of the user's recorded amounts and how many
// entries exist. A user with no entries gets (0, 0).
func TotalAndCount(userID int64) (int64, int64, error) {
	var row struct {
		Total int64
		Count int64
	}
	err := db.DB.Model(&db.SavingsEntry{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}

// ListAmounts returns the user's recorded amounts, most recent date first.
func ListAmounts(userID int64) ([]int, error) {
	var amounts []int
	err := db.DB.Model(&db.SavingsEntry{}).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Pluck("amount", &amounts).Error
	if err != nil {
		return nil, err
	}
	return amounts, nil
}

// ClearAll removes every ledger entry for the user. Calling it for a user
// with no entries is a no-op.
func ClearAll(userID int64) error {
	return db.DB.Where("user_id = ?", userID).Delete(&db.SavingsEntry{}).Error
}

// PickUnusedNumber draws uniformly at random from the amounts the user has
// not recorded yet. ok is false when all 365 are taken. Picking never writes
// to the ledger.
func PickUnusedNumber(userID int64) (int, bool, error) {
	used, err := ListAmounts(userID)
	if err != nil {
		return 0, false, err
	}
	n, ok := pickUnused(used)
	return n, ok, nil
}

func today() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
