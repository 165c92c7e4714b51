package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyFile reports an upload without a header row.
	ErrEmptyFile = errors.New("empty csv file")
)

// MissingColumnError reports a header missing a required column. It fails
// the batch before any row is processed.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// Service ingests one CSV batch. Per-row failures are tolerated and
// reported in the returned Report; an error return means the whole batch
// was rolled back.
type Service interface {
	IngestCSV(ctx context.Context, r io.Reader) (Report, error)
}
