package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

// WriteAccounts renders account snapshots as CSV with the columns
// client,available,held,total,locked and amounts formatted to 4 decimal
// places. Rows are sorted by client for stable output; the engine
// itself guarantees no order.
func WriteAccounts(w io.Writer, snapshots []domain.AccountSnapshot) error {
	rows := make([]domain.AccountSnapshot, len(snapshots))
	copy(rows, snapshots)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Client < rows[j].Client })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.Client), 10),
			row.Available.String(),
			row.Held.String(),
			row.Total.String(),
			strconv.FormatBool(row.Frozen),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write account row for client %d: %w", row.Client, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv writer: %w", err)
	}

	return nil
}
