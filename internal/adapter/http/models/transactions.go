package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionRequest struct {
	Type   string `json:"type"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Amount string `json:"amount,omitempty"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	kind := strings.ToLower(strings.TrimSpace(r.Type))
	switch kind {
	case "deposit", "withdrawal":
		amount := strings.TrimSpace(r.Amount)
		if amount == "" {
			errs = append(errs, kind+" requires an amount")
		} else if d, err := decimal.NewFromString(amount); err != nil {
			errs = append(errs, "amount must be a decimal number")
		} else if d.Exponent() < -4 && !d.Equal(d.Truncate(4)) {
			errs = append(errs, "amount must have at most 4 decimal places")
		}
	case "dispute", "resolve", "chargeback":
		if strings.TrimSpace(r.Amount) != "" {
			errs = append(errs, kind+" must not carry an amount")
		}
	case "":
		errs = append(errs, "type is required")
	default:
		errs = append(errs, "type must be one of deposit, withdrawal, dispute, resolve, chargeback")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type SubmitTransactionsRequest struct {
	Transactions []TransactionRequest `json:"transactions"`
}

func (r SubmitTransactionsRequest) Validate() error {
	if len(r.Transactions) == 0 {
		return errors.New("transactions is required and cannot be empty")
	}

	var errs []string
	for i, tx := range r.Transactions {
		if err := tx.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("transactions[%d]: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionResult struct {
	Type     string `json:"type"`
	Client   uint16 `json:"client"`
	Tx       uint32 `json:"tx"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

type SubmitTransactionsResponse struct {
	Processed int                 `json:"processed"`
	Accepted  int                 `json:"accepted"`
	Rejected  int                 `json:"rejected"`
	Results   []TransactionResult `json:"results"`
}
