package storage

import (
	"context"
	"log/slog"

	"github.com/gocarina/gocsv"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/logging"
	"nhl-stats-crawler/internal/metrics"
)

// ObjectStore is the blob-store port the writer delegates to. Implementations
// must be safe for concurrent use.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
}

// Writer serializes player records to CSV and writes them to an object store.
// It does not retry; retry policy belongs to the caller.
type Writer struct {
	store   ObjectStore
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewWriter constructs a Writer over the given object store.
func NewWriter(store ObjectStore, logger *slog.Logger, recorder *metrics.Recorder) *Writer {
	return &Writer{store: store, logger: logger, metrics: recorder}
}

// StoreGame encodes records as CSV (header row always present, even for an
// empty record set) and writes them under the rendered key.
func (w *Writer) StoreGame(ctx context.Context, key Key, records []domain.PlayerRecord) error {
	data, err := encodeRecords(records)
	if err != nil {
		return &StorageError{Key: key.Render(), Err: err}
	}

	logging.Info(w.logger, "storing game records",
		slog.String(logging.FieldKey, key.Render()),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int(logging.FieldBytes, len(data)),
	)

	putErr := w.store.Put(ctx, key.Render(), data)
	if w.metrics != nil {
		w.metrics.RecordStorageWrite(len(data), putErr)
	}
	if putErr != nil {
		return &StorageError{Key: key.Render(), Err: putErr}
	}
	return nil
}

func encodeRecords(records []domain.PlayerRecord) ([]byte, error) {
	if records == nil {
		records = []domain.PlayerRecord{}
	}
	return gocsv.MarshalBytes(&records)
}
