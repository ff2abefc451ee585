package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/api-sage/txn-dispute-engine/internal/domain"
	"github.com/api-sage/txn-dispute-engine/internal/usecase/services"
)

type archiveStub struct {
	runs []domain.RunRecord
	err  error
}

func (a *archiveStub) SaveRun(_ context.Context, run domain.RunRecord) error {
	a.runs = append(a.runs, run)
	return a.err
}

func TestRunServiceExecutesFullBatch(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,100.0",
		"deposit,2,2,50.0",
		"withdrawal,1,3,25.0",
		"",
	}, "\n")

	var out bytes.Buffer
	svc := services.NewRunService(nil)

	run, err := svc.Execute(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.Processed != 3 || run.Accepted != 3 || run.Rejected != 0 {
		t.Fatalf("unexpected counters: %+v", run)
	}
	if run.ID == "" {
		t.Fatal("expected a run id")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"client,available,held,total,locked",
		"1,75.0000,0.0000,75.0000,false",
		"2,50.0000,0.0000,50.0000,false",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("output line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestRunServiceSkipsMalformedAndRejectedRows(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,100.0",
		"unknown,1,2,5.0",      // malformed: skipped before the engine
		"deposit,1,3,",         // malformed: missing amount
		"withdrawal,1,4,200.0", // rejected: insufficient funds
		"deposit,1,5,50.0",
		"",
	}, "\n")

	var out bytes.Buffer
	svc := services.NewRunService(nil)

	run, err := svc.Execute(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Malformed rows never reach the processor; only the withdrawal is a
	// processor-level rejection.
	if run.Processed != 3 || run.Accepted != 2 || run.Rejected != 1 {
		t.Fatalf("unexpected counters: %+v", run)
	}
	if len(run.Rejections) != 1 || run.Rejections[0].Reason != domain.ErrInsufficientFunds.Error() {
		t.Fatalf("unexpected rejections: %+v", run.Rejections)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[1] != "1,150.0000,0.0000,150.0000,false" {
		t.Fatalf("unexpected account row: %q", lines[1])
	}
}

func TestRunServiceDisputeLifecycleEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,5.0",
		"withdrawal,2,2,5.0", // rejected, but account 2 is created
		"dispute,1,1,",
		"chargeback,1,1,",
		"deposit,1,3,1.0", // rejected: frozen
		"",
	}, "\n")

	var out bytes.Buffer
	svc := services.NewRunService(nil)

	run, err := svc.Execute(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Accepted != 3 || run.Rejected != 2 {
		t.Fatalf("unexpected counters: %+v", run)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"client,available,held,total,locked",
		"1,0.0000,0.0000,0.0000,true",
		"2,0.0000,0.0000,0.0000,false",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("output line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestRunServiceArchivesRun(t *testing.T) {
	archive := &archiveStub{}
	svc := services.NewRunService(archive)

	input := "type,client,tx,amount\ndeposit,1,1,10.0\n"
	var out bytes.Buffer

	run, err := svc.Execute(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(archive.runs) != 1 {
		t.Fatalf("expected 1 archived run, got %d", len(archive.runs))
	}
	if archive.runs[0].ID != run.ID {
		t.Fatalf("archived run id %q does not match %q", archive.runs[0].ID, run.ID)
	}
	if len(archive.runs[0].Accounts) != 1 {
		t.Fatalf("expected 1 archived account, got %d", len(archive.runs[0].Accounts))
	}
}
