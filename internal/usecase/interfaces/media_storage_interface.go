package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrResultsNotFound signals that no staged artifact exists for a job id, as
// opposed to an unreadable or corrupt one.
var ErrResultsNotFound = errors.New("results not found")

// StoredFile is one document found in a job's extracted archive.
type StoredFile struct {
	Name string
	Path string
}

// IMediaStorage abstracts the filesystem area holding job artifacts: the
// uploaded ledger, the extracted boleto archive, the staged results document
// and the permanent store of committed boleto PDFs.
//
// Artifacts are addressed purely by job id and must survive process restarts:
// commit may run in a different invocation than process.
type IMediaStorage interface {
	SaveLedger(ctx context.Context, jobID string, r io.Reader) (string, error)
	OpenLedger(ctx context.Context, jobID string) (io.ReadCloser, error)
	ExtractArchive(ctx context.Context, jobID string, archive io.ReaderAt, size int64) error
	ListBoletos(ctx context.Context, jobID string) ([]StoredFile, error)
	SaveResults(ctx context.Context, jobID string, data []byte) error
	LoadResults(ctx context.Context, jobID string) ([]byte, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	SaveBoletoPDF(ctx context.Context, name string, data []byte) (string, error)
}
