package sqlstore

import (
	"context"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"farmtwin/pkg/domain"
)

const testDDL = `CREATE TABLE IF NOT EXISTS ledger_rows (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at TEXT NOT NULL,
	zone TEXT NOT NULL,
	scope TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	hens TEXT NOT NULL,
	cocks TEXT NOT NULL,
	water TEXT NOT NULL,
	feed TEXT NOT NULL,
	task TEXT NOT NULL,
	notes TEXT NOT NULL
)`

func openStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	db.SetMaxOpenConns(1)
	store, err := New(context.Background(), db, testDDL)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndFetchRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		row := domain.LedgerRow{
			Timestamp: "2026-03-01 08:00:0" + strconv.Itoa(i),
			Zone:      "Tank 1",
			Scope:     "Scampi",
			EntityID:  "Tank 1_Scamp_" + strconv.Itoa(i),
			Hens:      "N/A",
			Cocks:     "N/A",
			Water:     "Optimum",
			Feed:      "50",
			Task:      "Vitals Check",
			Notes:     "row " + strconv.Itoa(i),
		}
		if err := store.Append(ctx, row); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	rows, err := store.FetchRecent(ctx, 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 2 || rows[0].Notes != "row 4" || rows[1].Notes != "row 3" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[0].Timestamp != "2026-03-01 08:00:04" || rows[0].Water != "Optimum" {
		t.Fatalf("columns not round-tripped: %+v", rows[0])
	}
	if n, err := store.Count(ctx); err != nil || n != 4 {
		t.Fatalf("count = %d, %v", n, err)
	}
}

func TestFetchRecentEmptyAndNonPositive(t *testing.T) {
	store := openStore(t)
	rows, err := store.FetchRecent(context.Background(), 50)
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty slice, got %#v %v", rows, err)
	}
	rows, err = store.FetchRecent(context.Background(), -1)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty slice for n<=0")
	}
}

func TestClosedDBErrors(t *testing.T) {
	store := openStore(t)
	_ = store.DB().Close()
	if err := store.Append(context.Background(), domain.LedgerRow{}); err == nil {
		t.Fatalf("expected append error on closed db")
	}
	if _, err := store.FetchRecent(context.Background(), 1); err == nil {
		t.Fatalf("expected fetch error on closed db")
	}
}
