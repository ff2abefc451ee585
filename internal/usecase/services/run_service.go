package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/api-sage/txn-dispute-engine/internal/adapter/csvio"
	"github.com/api-sage/txn-dispute-engine/internal/domain"
	"github.com/api-sage/txn-dispute-engine/internal/engine"
	"github.com/api-sage/txn-dispute-engine/internal/logger"
)

// ArchiveRepository persists completed run summaries.
type ArchiveRepository interface {
	SaveRun(ctx context.Context, run domain.RunRecord) error
}

// RunService executes one batch pass: a reader goroutine parses the CSV
// input and feeds a buffered channel, and the processor drains it as
// the single consumer, in input order. Malformed rows are warned and
// skipped; rejected transactions are logged and recorded. The final
// account snapshot goes to the output writer and, when an archive is
// configured, to the archive.
type RunService struct {
	archive ArchiveRepository
}

// NewRunService creates the batch pipeline. A nil archive disables
// archival.
func NewRunService(archive ArchiveRepository) *RunService {
	return &RunService{archive: archive}
}

func (s *RunService) Execute(ctx context.Context, input io.Reader, output io.Writer) (domain.RunRecord, error) {
	recorder := &runRecorder{}
	processor := engine.NewProcessor(recorder)

	txs := make(chan domain.Transaction, 64)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(txs)

		reader := csvio.NewReader(input)
		for {
			tx, err := reader.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				var rowErr *csvio.RowError
				if errors.As(err, &rowErr) {
					logger.Warn("skipping malformed input row", logger.Fields{
						"line":  rowErr.Line,
						"error": rowErr.Err.Error(),
					})
					continue
				}
				return fmt.Errorf("read transactions: %w", err)
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case txs <- tx:
			}
		}
	})

	g.Go(func() error {
		return processor.Run(ctx, txs)
	})

	if err := g.Wait(); err != nil {
		return domain.RunRecord{}, fmt.Errorf("run aborted: %w", err)
	}

	run := domain.RunRecord{
		ID:         uuid.NewString(),
		Processed:  recorder.processed,
		Accepted:   recorder.accepted,
		Rejected:   recorder.rejected(),
		Accounts:   processor.Snapshot(),
		Rejections: recorder.rejections,
	}

	if err := csvio.WriteAccounts(output, run.Accounts); err != nil {
		return domain.RunRecord{}, fmt.Errorf("write account snapshot: %w", err)
	}

	if s.archive != nil {
		if err := s.archive.SaveRun(ctx, run); err != nil {
			// Archival is telemetry; a failed save must not fail the run.
			logger.Error("run service failed to archive run", err, logger.Fields{
				"runId": run.ID,
			})
		}
	}

	logger.Info("run completed", logger.Fields{
		"runId":     run.ID,
		"processed": run.Processed,
		"accepted":  run.Accepted,
		"rejected":  run.Rejected,
		"accounts":  len(run.Accounts),
	})

	return run, nil
}
