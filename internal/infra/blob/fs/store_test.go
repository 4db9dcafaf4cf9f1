package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"farmtwin/internal/blob/core"
)

func TestSanitizeKeyRejectsEscapes(t *testing.T) {
	for _, key := range []string{"", "   ", "/abs/key", "../up", "rows/../../etc", "rows/a.json.meta"} {
		if _, err := sanitizeKey(key); err == nil {
			t.Fatalf("expected %q to be rejected", key)
		}
	}
	got, err := sanitizeKey("ledger/rows//a.json")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "ledger/rows/a.json" {
		t.Fatalf("unexpected clean key %q", got)
	}
}

func TestPutWritesSidecar(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Root() != root || store.Driver() != core.DriverFilesystem {
		t.Fatalf("unexpected store identity")
	}
	info, err := store.Put(context.Background(), "ledger/rows/a.json", bytes.NewReader([]byte("{}")), core.PutOptions{
		ContentType: "application/json",
		Metadata:    map[string]string{"zone": "Tank 1"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.ETag == "" || info.Size != 2 {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, err := os.Stat(filepath.Join(root, "ledger", "rows", "a.json"+metaSuffix)); err != nil {
		t.Fatalf("expected sidecar: %v", err)
	}
	head, err := store.Head(context.Background(), "ledger/rows/a.json")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if head.Metadata["zone"] != "Tank 1" || head.ContentType != "application/json" {
		t.Fatalf("metadata not persisted: %+v", head)
	}
}

func TestListReportsCorruptSidecar(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "broken"+metaSuffix), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.List(context.Background(), ""); err == nil {
		t.Fatalf("expected decode error for corrupt sidecar")
	}
	if _, err := store.List(context.Background(), "rows/"); err != nil {
		t.Fatalf("prefix outside corrupt sidecar should list: %v", err)
	}
}
