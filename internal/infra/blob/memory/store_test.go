package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"farmtwin/internal/blob/core"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("fail") }

func TestPutRejectsEmptyKeyAndReadErrors(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Put(ctx, " ", bytes.NewReader(nil), core.PutOptions{}); err == nil {
		t.Fatalf("expected empty key error")
	}
	if _, err := store.Put(ctx, "k", failingReader{}, core.PutOptions{}); err == nil {
		t.Fatalf("expected read error")
	}
	if _, err := store.Head(ctx, "k"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("failed put must not store an object")
	}
}

func TestGetReturnsIsolatedCopies(t *testing.T) {
	store := New()
	ctx := context.Background()
	if _, err := store.Put(ctx, "k", bytes.NewReader([]byte("v")), core.PutOptions{Metadata: map[string]string{"a": "1"}}); err != nil {
		t.Fatalf("put: %v", err)
	}
	info, rc, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	info.Metadata["a"] = "mutated"
	b, _ := io.ReadAll(rc)
	if string(b) != "v" {
		t.Fatalf("unexpected body %q", b)
	}
	head, _ := store.Head(ctx, "k")
	if head.Metadata["a"] != "1" {
		t.Fatalf("metadata leaked through returned info")
	}
	if store.Driver() != core.DriverMemory {
		t.Fatalf("expected memory driver")
	}
}
