package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"farmtwin/internal/infra/ledger/memory"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	entries []logEntry
}

func (l *captureLogger) log(level, msg string, args []any) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *captureLogger) Debug(msg string, args ...any) { l.log("debug", msg, args) }
func (l *captureLogger) Info(msg string, args ...any)  { l.log("info", msg, args) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.log("warn", msg, args) }
func (l *captureLogger) Error(msg string, args ...any) { l.log("error", msg, args) }

func (l *captureLogger) has(level, msg string) bool {
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

type metricsCall struct {
	op      string
	success bool
}

type captureMetricsRecorder struct {
	calls   []metricsCall
	reports []EconomicsReport
	stock   [][]InventoryItem
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetricsRecorder) ObserveEconomics(r EconomicsReport) {
	c.reports = append(c.reports, r)
}

func (c *captureMetricsRecorder) ObserveInventory(items []InventoryItem) {
	c.stock = append(c.stock, items)
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

type spanRecord struct {
	op  string
	err error
}

type captureTracer struct {
	ended []spanRecord
}

func (c *captureTracer) Start(ctx context.Context, op string) (context.Context, TraceSpan) {
	return ctx, &captureSpan{tracer: c, op: op}
}

type captureSpan struct {
	tracer *captureTracer
	op     string
}

func (s *captureSpan) End(err error) {
	s.tracer.ended = append(s.tracer.ended, spanRecord{op: s.op, err: err})
}

// flakyLedger fails every call while down is set.
type flakyLedger struct {
	*memory.Ledger
	down bool
}

var errLedgerDown = errors.New("ledger unreachable")

func (f *flakyLedger) Append(ctx context.Context, row LedgerRow) error {
	if f.down {
		return errLedgerDown
	}
	return f.Ledger.Append(ctx, row)
}

func (f *flakyLedger) FetchRecent(ctx context.Context, n int) ([]LedgerRow, error) {
	if f.down {
		return nil, errLedgerDown
	}
	return f.Ledger.FetchRecent(ctx, n)
}

var fixedTime = time.Date(2026, 3, 1, 9, 30, 15, 0, time.FixedZone("IST", 5*3600+1800))

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(opts...)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s
}

func mustQuantity(t *testing.T, s *Session, item string) float64 {
	t.Helper()
	q, err := s.Inventory().QuantityOf(item)
	if err != nil {
		t.Fatalf("quantity of %s: %v", item, err)
	}
	return q
}

func describe(rows []LedgerRow) string {
	return fmt.Sprintf("%d rows: %+v", len(rows), rows)
}
