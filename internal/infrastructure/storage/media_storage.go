package storage

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cobranca_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultMediaRoot = "media"

	ledgerFileName  = "spreadsheet.csv"
	resultsFileName = "results.json"
	boletosDirName  = "boletos"
)

// MediaStorage is the filesystem implementation of interfaces.IMediaStorage.
//
// Layout under the media root:
//
//	<root>/<job_id>/spreadsheet.csv   uploaded ledger
//	<root>/<job_id>/boletos/          extracted archive
//	<root>/<job_id>/results.json      staged reconciliation graph
//	<root>/boletos/                   committed boleto PDFs
//
// Jobs are addressed purely by id; presence on disk is the only job index.
type MediaStorage struct {
	root string
}

var _ interfaces.IMediaStorage = (*MediaStorage)(nil)

func NewMediaStorage() *MediaStorage {
	root := os.Getenv("MEDIA_ROOT")
	if root == "" {
		root = defaultMediaRoot
	}
	return &MediaStorage{root: root}
}

// NewMediaStorageAt roots the store at an explicit directory. Used by tests.
func NewMediaStorageAt(root string) *MediaStorage {
	return &MediaStorage{root: root}
}

func (s *MediaStorage) jobDir(jobID string) string {
	return filepath.Join(s.root, jobID)
}

func (s *MediaStorage) SaveLedger(_ context.Context, jobID string, r io.Reader) (string, error) {
	dir := s.jobDir(jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ledgerFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

func (s *MediaStorage) OpenLedger(_ context.Context, jobID string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.jobDir(jobID), ledgerFileName))
}

// ExtractArchive unpacks the uploaded zip into the job's boletos directory.
// Entry names are flattened to their base name; the archive is a flat bundle
// of PDFs and nested paths could otherwise escape the staging directory.
func (s *MediaStorage) ExtractArchive(_ context.Context, jobID string, archive io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(archive, size)
	if err != nil {
		return err
	}

	dir := filepath.Join(s.jobDir(jobID), boletosDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := filepath.Base(entry.Name)
		if name == "." || name == string(filepath.Separator) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
		}
		dst, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			rc.Close()
			return err
		}
		_, err = io.Copy(dst, rc)
		rc.Close()
		dst.Close()
		if err != nil {
			return fmt.Errorf("extracting archive entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

// ListBoletos returns the extracted documents of a job. A missing directory is
// not an error: the run simply has no boletos.
func (s *MediaStorage) ListBoletos(_ context.Context, jobID string) ([]interfaces.StoredFile, error) {
	dir := filepath.Join(s.jobDir(jobID), boletosDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	files := make([]interfaces.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, interfaces.StoredFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return files, nil
}

func (s *MediaStorage) SaveResults(_ context.Context, jobID string, data []byte) error {
	dir := s.jobDir(jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, resultsFileName), data, 0o644)
}

func (s *MediaStorage) LoadResults(_ context.Context, jobID string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.jobDir(jobID), resultsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, interfaces.ErrResultsNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *MediaStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// SaveBoletoPDF writes a committed boleto into the permanent area. Name
// collisions get a random suffix rather than overwriting: distinct
// installments can legitimately share a base filename across jobs.
func (s *MediaStorage) SaveBoletoPDF(_ context.Context, name string, data []byte) (string, error) {
	dir := filepath.Join(s.root, boletosDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(name))
	if _, err := os.Stat(path); err == nil {
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		path = fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
