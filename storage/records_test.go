package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.db")

	rows := [][]byte{
		[]byte(`{"oid":11,"nspname":"pg_catalog"}`),
		[]byte(`{"oid":2200,"nspname":"public"}`),
		{}, // zero-length rows are legal records
	}

	if err := writeRecords(path, rows); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}

	got, err := readRecords(path)
	if err != nil {
		t.Fatalf("readRecords failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("expected %d records, got %d", len(rows), len(got))
	}
	for i := range rows {
		if !bytes.Equal(got[i], rows[i]) {
			t.Errorf("record %d did not round-trip: %q vs %q", i, got[i], rows[i])
		}
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	got, err := readRecords(filepath.Join(t.TempDir(), "absent.db"))
	if err != nil {
		t.Fatalf("missing file should read as empty, got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestReadRecordsSkipsDeleted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.db")
	if err := writeRecords(path, [][]byte{[]byte("a"), []byte("b")}); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}

	// Flip the first record's deleted flag in place.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	data[0] = 1
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	got, err := readRecords(path)
	if err != nil {
		t.Fatalf("readRecords failed: %v", err)
	}
	if len(got) != 1 || !bytes.Equal(got[0], []byte("b")) {
		t.Errorf("deleted record not skipped: %q", got)
	}
}

func TestReadRecordsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.db")
	if err := writeRecords(path, [][]byte{[]byte("hello world")}); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-3], 0644); err != nil {
		t.Fatalf("failed to truncate file: %v", err)
	}

	if _, err := readRecords(path); err == nil {
		t.Error("truncated file read without error")
	}
}

func TestWriteRecordsLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.db")
	if err := writeRecords(path, [][]byte{[]byte("x")}); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after successful write")
	}
}
