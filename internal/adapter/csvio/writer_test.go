package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
)

func TestWriteAccountsSortsByClientAndFormats(t *testing.T) {
	snapshots := []domain.AccountSnapshot{
		{Client: 2, Available: domain.AmountFromUnits(500_000), Held: 0, Total: domain.AmountFromUnits(500_000)},
		{Client: 1, Available: domain.AmountFromUnits(750_000), Held: 0, Total: domain.AmountFromUnits(750_000)},
	}

	var buf bytes.Buffer
	if err := WriteAccounts(&buf, snapshots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"client,available,held,total,locked",
		"1,75.0000,0.0000,75.0000,false",
		"2,50.0000,0.0000,50.0000,false",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestWriteAccountsRendersDebtAndFrozen(t *testing.T) {
	snapshots := []domain.AccountSnapshot{
		{
			Client:    7,
			Available: domain.AmountFromUnits(-50_000),
			Held:      domain.AmountFromUnits(50_000),
			Total:     0,
			Frozen:    true,
		},
	}

	var buf bytes.Buffer
	if err := WriteAccounts(&buf, snapshots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "7,-5.0000,5.0000,0.0000,true" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestWriteAccountsEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAccounts(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "client,available,held,total,locked" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}
