package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

// RowError reports a malformed input row. Row errors are recoverable:
// the reader stays usable and the next call to Next moves past the bad
// row.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader streams transactions from a CSV source with the columns
// type,client,tx,amount. Fields are whitespace-tolerant; the amount
// column is empty for dispute, resolve and chargeback rows.
type Reader struct {
	csv        *csv.Reader
	line       int
	headerRead bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next parsed transaction. It returns io.EOF when the
// input is exhausted and a *RowError for malformed rows; after a
// *RowError the caller may keep reading.
func (r *Reader) Next() (domain.Transaction, error) {
	if !r.headerRead {
		if _, err := r.csv.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return domain.Transaction{}, io.EOF
			}
			return domain.Transaction{}, fmt.Errorf("read csv header: %w", err)
		}
		r.headerRead = true
		r.line = 1
	}

	record, err := r.csv.Read()
	r.line++
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Transaction{}, io.EOF
		}
		return domain.Transaction{}, &RowError{Line: r.line, Err: err}
	}

	tx, err := r.parseRow(record)
	if err != nil {
		return domain.Transaction{}, &RowError{Line: r.line, Err: err}
	}

	return tx, nil
}

func (r *Reader) parseRow(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	kind := strings.ToLower(strings.TrimSpace(record[0]))

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse client %q: %w", record[1], err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse tx %q: %w", record[2], err)
	}

	amountField := ""
	if len(record) > 3 {
		amountField = strings.TrimSpace(record[3])
	}

	switch kind {
	case "deposit", "withdrawal":
		if amountField == "" {
			return domain.Transaction{}, fmt.Errorf("%s missing amount", kind)
		}
		amount, err := domain.ParseAmount(amountField)
		if err != nil {
			return domain.Transaction{}, err
		}
		if kind == "deposit" {
			return domain.Deposit(domain.ClientID(client), domain.TxID(tx), amount), nil
		}
		return domain.Withdrawal(domain.ClientID(client), domain.TxID(tx), amount), nil
	case "dispute":
		return domain.Dispute(domain.ClientID(client), domain.TxID(tx)), nil
	case "resolve":
		return domain.Resolve(domain.ClientID(client), domain.TxID(tx)), nil
	case "chargeback":
		return domain.Chargeback(domain.ClientID(client), domain.TxID(tx)), nil
	default:
		return domain.Transaction{}, fmt.Errorf("unrecognized transaction type %q", record[0])
	}
}
