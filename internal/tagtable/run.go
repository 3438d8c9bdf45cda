package tagtable

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dicomtags/internal/catalog"
	"dicomtags/internal/extract"
	"dicomtags/internal/logging"
)

// OutputFileName is the table written into every scanned root.
const OutputFileName = "original_DICOM_tags.csv"

// DefaultProgressInterval is the number of rows between progress log lines.
const DefaultProgressInterval = 500

// RowExtractor produces the output row for one file, or false to skip it.
type RowExtractor interface {
	Row(path string) (extract.Row, bool)
}

// Options configures a Run.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Output is the table path. Default: OutputPath(Root)
	Output string
	// ProgressInterval is the number of rows between progress log lines.
	ProgressInterval int
	// LockDir holds the run lock file. Default: os.TempDir()
	LockDir string
	Logger  *slog.Logger
}

// Summary describes a finished (or interrupted) run.
type Summary struct {
	RunID       string
	Root        string
	Output      string
	Directories int
	Visited     int
	Rows        int
	Skipped     int
	Elapsed     time.Duration
}

// OutputPath returns the table path for a scan root.
func OutputPath(root string) string {
	return filepath.Join(root, OutputFileName)
}

// Run scans opts.Root and writes the tag table. It returns an error only when
// the output table cannot be locked, created, written, or closed, or when ctx
// is cancelled; the table is closed on every path.
func Run(ctx context.Context, extractor RowExtractor, opts Options) (summary Summary, err error) {
	if extractor == nil {
		return Summary{}, errors.New("tagtable run: nil extractor")
	}
	if opts.Root == "" {
		return Summary{}, errors.New("tagtable run: empty root")
	}
	if opts.Output == "" {
		opts.Output = OutputPath(opts.Root)
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}

	start := time.Now()
	summary = Summary{RunID: uuid.NewString(), Root: opts.Root, Output: opts.Output}
	logger := logging.NewComponentLogger(opts.Logger, "tagtable").With(slog.String(logging.FieldRunID, summary.RunID))

	lock, err := acquireLock(opts.LockDir, opts.Output)
	if err != nil {
		return summary, err
	}
	defer func() {
		if releaseErr := lock.release(); releaseErr != nil {
			logger.Warn("failed to release run lock", logging.Error(releaseErr))
		}
	}()

	table, err := Create(opts.Output, catalog.Header())
	if err != nil {
		return summary, err
	}
	defer func() {
		closeErr := table.Close()
		summary.Elapsed = time.Since(start)
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := walker{
		ctx:       ctx,
		extractor: extractor,
		table:     table,
		output:    absPath(opts.Output),
		sampler:   logging.NewProgressSampler(opts.ProgressInterval),
		logger:    logger,
		summary:   &summary,
	}
	if err := filepath.WalkDir(opts.Root, w.visit); err != nil {
		return summary, err
	}

	logger.Info("tag table written",
		slog.String(logging.FieldPath, opts.Output),
		slog.Int("rows", summary.Rows),
		slog.Int("skipped", summary.Skipped),
		slog.Int("directories", summary.Directories),
	)
	return summary, nil
}

type walker struct {
	ctx       context.Context
	extractor RowExtractor
	table     *Table
	output    string
	sampler   *logging.ProgressSampler
	logger    *slog.Logger
	summary   *Summary
}

func (w *walker) visit(path string, d fs.DirEntry, walkErr error) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if walkErr != nil {
		if d == nil && path == w.summary.Root {
			return fmt.Errorf("scan %s: %w", path, walkErr)
		}
		w.logger.Warn("skipping unreadable entry", slog.String(logging.FieldPath, path), logging.Error(walkErr))
		return nil
	}
	if d.IsDir() {
		w.summary.Directories++
		w.logger.Info("scanning directory", slog.String(logging.FieldPath, path))
		return nil
	}
	if absPath(path) == w.output {
		return nil
	}

	w.summary.Visited++
	row, ok := w.extractor.Row(path)
	if !ok {
		w.summary.Skipped++
		w.logger.Debug("skipped undecodable file", slog.String(logging.FieldPath, path))
		return nil
	}
	if err := w.table.Append(row); err != nil {
		return err
	}
	w.summary.Rows = w.table.Rows()
	if w.sampler.ShouldLog(w.summary.Rows) {
		w.logger.Info("dicom files processed", slog.Int(logging.FieldCount, w.summary.Rows))
		if err := w.table.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
