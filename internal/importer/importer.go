package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DEFAULT_BATCH_SIZE = 1000
	UTF8_BOM           = "\ufeff"
)

type Options struct {
	// BatchSize is the number of rows between commits.
	BatchSize int
	// Location is the zone epoch timestamps are converted into.
	Location *time.Location
	Logger   *slog.Logger
	// Progress receives the per-batch and final notices. Nil disables them.
	Progress io.Writer
}

// Result summarizes an import run. On failure Committed tells how many rows
// made it into the store.
type Result struct {
	RunID        uuid.UUID
	Rows         int
	Committed    int
	Batches      int
	RoomsCreated int
	Duration     time.Duration
}

// Importer appends sensor readings from a CSV export to the store.
type Importer struct {
	db      *gorm.DB
	options Options
	logger  *slog.Logger
}

func New(db *gorm.DB, options Options) (*Importer, error) {
	if options.BatchSize == 0 {
		options.BatchSize = DEFAULT_BATCH_SIZE
	}
	if options.BatchSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, options.BatchSize)
	}
	if options.Location == nil {
		options.Location = time.Local
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Importer{
		db:      db,
		options: options,
		logger:  logger,
	}, nil
}

func (importer *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open source: %w", err)
	}
	defer file.Close()

	importer.logger.Debug("Opened source", "path", path)

	return importer.Import(ctx, file)
}

// Import reads every record from source and appends it to the store,
// committing every BatchSize rows and once more at the end. A failing row
// aborts the run and discards everything since the last commit.
func (importer *Importer) Import(ctx context.Context, source io.Reader) (Result, error) {
	started := time.Now()
	result := Result{RunID: uuid.New()}
	logger := importer.logger.With("run_id", result.RunID.String())

	logger.Info("Starting import", "batch_size", importer.options.BatchSize)

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		logger.Warn("Source has no header row")
		importer.notice(color.FgGreen, "Import complete. Total rows processed: %d\n", 0)
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], UTF8_BOM)
	}

	tx, err := importer.begin(ctx)
	if err != nil {
		return result, err
	}
	resolver := NewRoomResolver(tx)

	abort := func(err error) (Result, error) {
		tx.Rollback()
		logger.Warn(
			"Import aborted",
			"rows", result.Rows,
			"committed", result.Committed,
			"discarded", result.Rows-result.Committed,
			"error", err,
		)
		result.Duration = time.Since(started)
		return result, err
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return abort(fmt.Errorf("failed to read source: %w", err))
		}

		line, _ := reader.FieldPos(0)
		row := newSourceRow(line, header, record)

		reading, err := row.reading(resolver, importer.options.Location)
		if err != nil {
			return abort(err)
		}

		if err := tx.Create(&reading).Error; err != nil {
			return abort(fmt.Errorf("line %d: failed to insert reading: %w", line, err))
		}
		result.Rows++

		if result.Rows%importer.options.BatchSize == 0 {
			if err := importer.commit(tx, resolver, &result); err != nil {
				return result, err
			}

			logger.Debug("Committed batch", "batch", result.Batches, "rows", result.Rows)
			importer.notice(color.FgCyan, "Committed %d rows...\n", result.Rows)

			tx, err = importer.begin(ctx)
			if err != nil {
				return result, err
			}
			resolver = NewRoomResolver(tx)
		}
	}

	if err := importer.commit(tx, resolver, &result); err != nil {
		return result, err
	}
	result.Duration = time.Since(started)

	logger.Info(
		"Import complete",
		"rows", result.Rows,
		"batches", result.Batches,
		"rooms_created", result.RoomsCreated,
		"duration", result.Duration,
	)
	importer.notice(color.FgGreen, "Import complete. Total rows processed: %d\n", result.Rows)

	return result, nil
}

func (importer *Importer) begin(ctx context.Context) (*gorm.DB, error) {
	tx := importer.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return tx, nil
}

// commit makes the rooms and readings written through tx durable.
func (importer *Importer) commit(tx *gorm.DB, resolver *RoomResolver, result *Result) error {
	pending := result.Rows - result.Committed

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit after %d rows: %w", result.Rows, err)
	}

	if pending > 0 {
		result.Batches++
	}
	result.Committed = result.Rows
	result.RoomsCreated += resolver.Created()

	return nil
}

func (importer *Importer) notice(attribute color.Attribute, format string, args ...any) {
	if importer.options.Progress == nil {
		return
	}

	color.New(attribute).Fprintf(importer.options.Progress, format, args...)
}
