package storage

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"cobranca_facil/internal/usecase/interfaces"
)

func TestMediaStorage_LedgerRoundTrip(t *testing.T) {
	s := NewMediaStorageAt(t.TempDir())
	ctx := context.Background()

	path, err := s.SaveLedger(ctx, "job-1", strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path == "" {
		t.Fatal("expected a path")
	}

	rc, err := s.OpenLedger(ctx, "job-1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatalf("read: %v", err)
	}
	if buf.String() != "a,b,c\n" {
		t.Fatalf("content mismatch: %q", buf.String())
	}
}

func TestMediaStorage_ExtractArchiveFlattensEntries(t *testing.T) {
	s := NewMediaStorageAt(t.TempDir())
	ctx := context.Background()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"1000 PARC 1.pdf", "nested/dir/2000 PARC 1.pdf", "../escape.pdf"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry: %v", err)
		}
		if _, err := w.Write([]byte("%PDF")); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	if err := s.ExtractArchive(ctx, "job-1", bytes.NewReader(buf.Bytes()), int64(buf.Len())); err != nil {
		t.Fatalf("extract: %v", err)
	}

	files, err := s.ListBoletos(ctx, "job-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 extracted files, got %d", len(files))
	}
	names := map[string]bool{}
	for _, f := range files {
		names[f.Name] = true
		if strings.Contains(f.Name, "/") {
			t.Fatalf("entry not flattened: %s", f.Name)
		}
	}
	if !names["2000 PARC 1.pdf"] || !names["escape.pdf"] {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestMediaStorage_ListBoletosMissingDir(t *testing.T) {
	s := NewMediaStorageAt(t.TempDir())

	files, err := s.ListBoletos(context.Background(), "no-such-job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Fatalf("expected no files, got %v", files)
	}
}

func TestMediaStorage_Results(t *testing.T) {
	s := NewMediaStorageAt(t.TempDir())
	ctx := context.Background()

	if _, err := s.LoadResults(ctx, "job-1"); !errors.Is(err, interfaces.ErrResultsNotFound) {
		t.Fatalf("expected ErrResultsNotFound, got %v", err)
	}

	if err := s.SaveResults(ctx, "job-1", []byte(`{"payers":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := s.LoadResults(ctx, "job-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"payers":[]}` {
		t.Fatalf("content mismatch: %s", data)
	}
}

func TestMediaStorage_SaveBoletoPDFCollision(t *testing.T) {
	s := NewMediaStorageAt(t.TempDir())
	ctx := context.Background()

	first, err := s.SaveBoletoPDF(ctx, "1000 PARC 1.pdf", []byte("%PDF one"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := s.SaveBoletoPDF(ctx, "1000 PARC 1.pdf", []byte("%PDF two"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Fatal("expected a distinct path for the colliding name")
	}

	data, err := s.ReadFile(ctx, first)
	if err != nil || string(data) != "%PDF one" {
		t.Fatalf("first file clobbered: %s, %v", data, err)
	}
}
