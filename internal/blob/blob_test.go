package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		cfg  Config
		want Driver
	}{
		{"default", Config{FSRoot: t.TempDir()}, DriverFilesystem},
		{"fs", Config{Driver: DriverFilesystem, FSRoot: t.TempDir()}, DriverFilesystem},
		{"memory", Config{Driver: DriverMemory}, DriverMemory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(ctx, tc.cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if store.Driver() != tc.want {
				t.Fatalf("expected %s driver, got %s", tc.want, store.Driver())
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Config{Driver: "ftp"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
	if _, err := Open(ctx, Config{Driver: DriverS3}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

// exerciseStore runs the shared create-only contract against a backend.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Head(ctx, "rows/missing.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from head, got %v", err)
	}
	if _, _, err := store.Get(ctx, "rows/missing.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from get, got %v", err)
	}

	for _, key := range []string{"rows/b.json", "rows/a.json", "rows/c.json", "other/x.json"} {
		if _, err := store.Put(ctx, key, bytes.NewReader([]byte(`{"k":"`+key+`"}`)), PutOptions{ContentType: "application/json"}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	if _, err := store.Put(ctx, "rows/a.json", bytes.NewReader([]byte("x")), PutOptions{}); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	info, rc, err := store.Get(ctx, "rows/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != `{"k":"rows/a.json"}` {
		t.Fatalf("unexpected body %q", body)
	}
	if info.Key != "rows/a.json" || info.Size != int64(len(body)) {
		t.Fatalf("unexpected info %+v", info)
	}

	list, err := store.List(ctx, "rows/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	for i, want := range []string{"rows/a.json", "rows/b.json", "rows/c.json"} {
		if list[i].Key != want {
			t.Fatalf("list[%d]=%s, want %s", i, list[i].Key, want)
		}
	}
}

func TestStoreContract(t *testing.T) {
	fs, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("filesystem: %v", err)
	}
	backends := map[string]Store{
		"memory": NewMemory(),
		"fs":     fs,
		"s3mock": NewMockS3ForTests(),
	}
	for name, store := range backends {
		t.Run(name, func(t *testing.T) { exerciseStore(t, store) })
	}
}
