// Package export renders a user's ledger as a CSV document.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rolandomc/MiAhorroBot/pkg/db"
)

const dateLayout = "2006-01-02"

// BuildLedgerCSV renders entries as date,amount rows with a header, in the
// order given.
func BuildLedgerCSV(entries []db.SavingsEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "amount"}); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		record := []string{
			entry.Date.Format(dateLayout),
			strconv.Itoa(entry.Amount),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Filename(now time.Time) string {
	return fmt.Sprintf("savings-%s.csv", now.Format(dateLayout))
}
