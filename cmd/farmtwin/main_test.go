package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"farmtwin/internal/blob"
	"farmtwin/pkg/domain"
)

// useLedger points the command at a fresh sqlite file so runs share rows.
func useLedger(t *testing.T) {
	t.Helper()
	t.Setenv("FARMTWIN_LEDGER_DRIVER", "sqlite")
	t.Setenv("FARMTWIN_SQLITE_PATH", filepath.Join(t.TempDir(), "ledger.db"))
	t.Setenv("FARMTWIN_METRICS_BACKEND", "none")
	t.Setenv("FARMTWIN_LOG_LEVEL", "error")
}

func runJSON(t *testing.T, out any, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run %v: %v (stderr=%s)", args, err, stderr.String())
	}
	if out != nil {
		if err := json.Unmarshal(stdout.Bytes(), out); err != nil {
			t.Fatalf("decode %v output: %v\n%s", args, err, stdout.String())
		}
	}
	return stderr.String()
}

func TestRunRequiresKnownCommand(t *testing.T) {
	useLedger(t)
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), nil, &stdout, &stderr); err == nil {
		t.Fatalf("expected missing command error")
	}
	if !strings.Contains(stderr.String(), "usage: farmtwin") {
		t.Fatalf("expected usage, got %q", stderr.String())
	}
	if err := run(context.Background(), []string{"harvest"}, &stdout, &stderr); err == nil || !strings.Contains(err.Error(), "harvest") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	useLedger(t)
	t.Setenv("FARMTWIN_LEDGER_DRIVER", "tape")
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"eggs"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected config validation error")
	}
}

func TestReportDefaultSliders(t *testing.T) {
	useLedger(t)
	var got reportOutput
	runJSON(t, &got, "report")
	if got.Species != domain.SpeciesPoultry {
		t.Fatalf("species = %s", got.Species)
	}
	if got.AssetValue != 28250 {
		t.Fatalf("asset value = %v, want 28250", got.AssetValue)
	}
	if len(got.Census) == 0 {
		t.Fatalf("expected poultry census")
	}
	for _, c := range got.Census {
		if c.Species != domain.SpeciesPoultry {
			t.Fatalf("census leaked other species: %+v", c)
		}
	}
	if len(got.LowStock) != 2 {
		t.Fatalf("expected two low stock items, got %+v", got.LowStock)
	}
	if got.Inputs.LongevityMode {
		t.Fatalf("longevity must default off")
	}

	var longevity reportOutput
	runJSON(t, &longevity, "report", "-longevity")
	if !longevity.Inputs.LongevityMode {
		t.Fatalf("expected longevity flag to apply")
	}
}

func TestFluxEmitsFullSeries(t *testing.T) {
	useLedger(t)
	var samples []domain.FluxSample
	runJSON(t, &samples, "flux")
	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}
}

func TestCollectThenAudit(t *testing.T) {
	useLedger(t)
	var res syncOutput
	runJSON(t, &res, "collect", "-worker", "Arjun", "-qty", "12")
	if res.Status != domain.SyncConfirmed || res.Error != "" {
		t.Fatalf("unexpected collect result %+v", res)
	}

	var obs syncOutput
	runJSON(t, &obs, "observe", "-species", "Scampi", "-zone", "Probiotic Pulse Tank", "-id", "S-Pr-3", "-task", "Medical Check", "-notes", "gills clear", "-feed", "40")
	if obs.Status != domain.SyncConfirmed {
		t.Fatalf("unexpected observe result %+v", obs)
	}

	var rows []domain.LedgerRow
	runJSON(t, &rows, "audit", "-n", "5")
	if len(rows) != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", len(rows))
	}
	if rows[0].EntityID != "Probiotic Pulse Tank_Scamp_3" || rows[1].EntityID != "VAULT_Arjun" {
		t.Fatalf("expected newest first, got %+v", rows)
	}
}

func TestCollectRejectsUnknownWorker(t *testing.T) {
	useLedger(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"collect", "-worker", "Ghost", "-qty", "3"}, &stdout, &stderr)
	var verr domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "worker" {
		t.Fatalf("expected worker validation error, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("failed command must not print a result: %s", stdout.String())
	}
}

func TestAssignEchoesTasks(t *testing.T) {
	useLedger(t)
	var got domain.TaskAssignment
	runJSON(t, &got, "assign", "-worker", "Meena", "Tank Cleaning", "Vet Triage")
	if got.Worker != "Meena" || len(got.Tasks) != 2 || got.Tasks[0] != "Tank Cleaning" {
		t.Fatalf("unexpected assignment %+v", got)
	}
}

func TestCatalogCommands(t *testing.T) {
	useLedger(t)
	var eggs []map[string]any
	runJSON(t, &eggs, "eggs")
	if len(eggs) == 0 {
		t.Fatalf("expected egg catalog")
	}
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"eggs", "-name", "Nope"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected unknown product error")
	}

	var plan map[string]any
	runJSON(t, &plan, "fertilizer", "-acres", "2")
	if len(plan) == 0 {
		t.Fatalf("expected fertilizer plan")
	}
	if err := run(context.Background(), []string{"fertilizer", "-acres", "0"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected acreage validation error")
	}
}

func TestMetricsAndTraceOutput(t *testing.T) {
	useLedger(t)
	t.Setenv("FARMTWIN_LOG_LEVEL", "info")

	t.Setenv("FARMTWIN_METRICS_BACKEND", "expvar")
	logs := runJSON(t, nil, "-trace", "collect", "-worker", "Suresh", "-qty", "1")
	if !strings.Contains(logs, `"msg":"metrics"`) || !strings.Contains(logs, `"operation":"ledger_append"`) {
		t.Fatalf("expected expvar metrics and trace on stderr, got %s", logs)
	}

	t.Setenv("FARMTWIN_METRICS_BACKEND", "prometheus")
	logs = runJSON(t, nil, "report")
	if !strings.Contains(logs, "farmtwin_economics") {
		t.Fatalf("expected prometheus families on stderr, got %s", logs)
	}
}

func TestObserveFeedDefaultsToSlider(t *testing.T) {
	useLedger(t)
	t.Setenv("FARMTWIN_SLIDER_HIGH_PROT_FEED", "30")
	var res syncOutput
	runJSON(t, &res, "observe", "-species", "Fish", "-zone", "Reserve Tank", "-id", "F-Re-1", "-notes", "calm")
	if res.Status != domain.SyncConfirmed {
		t.Fatalf("unexpected observe result %+v", res)
	}
	var rows []domain.LedgerRow
	runJSON(t, &rows, "audit", "-n", "1")
	if len(rows) != 1 || rows[0].Feed != "30" || rows[0].Task != "Routine Log" {
		t.Fatalf("expected slider feed in row, got %+v", rows)
	}
}

func TestFailedCommandStillFlushesMetrics(t *testing.T) {
	root := t.TempDir()
	t.Setenv("FARMTWIN_LEDGER_DRIVER", "blob")
	t.Setenv("FARMTWIN_BLOB_DRIVER", "fs")
	t.Setenv("FARMTWIN_BLOB_FS_ROOT", root)
	t.Setenv("FARMTWIN_METRICS_BACKEND", "expvar")
	t.Setenv("FARMTWIN_LOG_LEVEL", "info")

	store, err := blob.NewFilesystem(root)
	if err != nil {
		t.Fatalf("filesystem: %v", err)
	}
	if _, err := store.Put(context.Background(), "ledger/rows/99999999999999999999-broken.json", strings.NewReader("{not json"), blob.PutOptions{}); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"audit", "-n", "5"}, &stdout, &stderr)
	var rerr domain.RemoteSyncError
	if !errors.As(err, &rerr) || rerr.Op != "fetch" {
		t.Fatalf("expected fetch failure, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("failed command must not print a result: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), `"msg":"metrics"`) || !strings.Contains(stderr.String(), `"ledger_fetch":{"error":1}`) {
		t.Fatalf("expected error counters logged, got %s", stderr.String())
	}
}
