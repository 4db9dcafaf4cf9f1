// Command farmtwin drives a farm session from the shell: it prints the
// operating report and circadian series, deposits egg collections, records
// unit observations and reads back the ledger.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"farmtwin/internal/config"
	"farmtwin/internal/core"
	"farmtwin/pkg/domain"
)

const defaultAuditRows = 50

var exitFunc = os.Exit

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "farmtwin: %v\n", err)
		exitFunc(1)
	}
}

type command struct {
	usage string
	exec  func(ctx context.Context, env *app, args []string) (any, error)
}

var commands = map[string]command{
	"report":     {"report [-longevity]", runReport},
	"flux":       {"flux [-longevity]", runFlux},
	"collect":    {"collect -worker NAME -qty N", runCollect},
	"observe":    {"observe -species S -zone Z -id ID -task T -notes TEXT [-feed N]", runObserve},
	"assign":     {"assign -worker NAME TASK...", runAssign},
	"audit":      {"audit [-n N]", runAudit},
	"eggs":       {"eggs [-name PRODUCT]", runEggs},
	"fertilizer": {"fertilizer -acres A", runFertilizer},
}

// app bundles what every subcommand needs.
type app struct {
	cfg     config.Config
	session *core.Session
	logger  *slog.Logger
	metrics core.MetricsRecorder
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: farmtwin [-trace] <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := newFlagSet("farmtwin")
	trace := global.Bool("trace", false, "write one JSON span per operation to stderr")
	if err := global.Parse(args); err != nil {
		usage(stderr)
		return err
	}
	args = global.Args()
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	ledger, closeLedger, err := core.OpenLedger(ctx, cfg.Ledger())
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer func() {
		if cerr := closeLedger(); cerr != nil {
			logger.Warn("close ledger", "error", cerr)
		}
	}()

	metrics := newMetrics(cfg.MetricsBackend)
	opts := []core.Option{core.WithLedger(ledger), core.WithLogger(logger)}
	if metrics != nil {
		opts = append(opts, core.WithMetricsRecorder(metrics))
	}
	if *trace {
		opts = append(opts, core.WithTracer(core.NewJSONTracer(stderr)))
	}
	session, err := core.NewSession(opts...)
	if err != nil {
		return err
	}
	env := &app{cfg: cfg, session: session, logger: logger, metrics: metrics}
	defer env.flushMetrics()

	out, err := cmd.exec(ctx, env, args[1:])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func newMetrics(backend string) core.MetricsRecorder {
	switch backend {
	case config.MetricsExpvar:
		return core.NewExpvarMetricsRecorder("")
	case config.MetricsPrometheus:
		return core.NewPrometheusRecorder()
	default:
		return nil
	}
}

// flushMetrics logs the recorder contents before the process exits, including
// after a failed command.
func (e *app) flushMetrics() {
	switch m := e.metrics.(type) {
	case *core.ExpvarMetricsRecorder:
		snap := m.Snapshot()
		e.logger.Info("metrics", "results", snap.Results, "durations_ms", snap.DurationsMS, "low_stock", snap.LowStock)
	case *core.PrometheusRecorder:
		families, err := m.Registry().Gather()
		if err != nil {
			e.logger.Warn("gather metrics", "error", err)
			return
		}
		for _, mf := range families {
			e.logger.Info("metrics", "family", mf.GetName(), "series", len(mf.GetMetric()))
		}
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (e *app) sliders(longevity bool) (domain.SliderInputs, error) {
	in := e.cfg.Sliders
	if longevity {
		in.LongevityMode = true
	}
	return in, in.Validate()
}

type reportOutput struct {
	Species    domain.Species          `json:"species"`
	Inputs     domain.SliderInputs     `json:"inputs"`
	Economics  domain.EconomicsReport  `json:"economics"`
	Census     []domain.ZoneCensus     `json:"census"`
	LowStock   []domain.InventoryItem  `json:"low_stock"`
	Inventory  []domain.InventoryItem  `json:"inventory"`
	AssetValue float64                 `json:"asset_value"`
	Tasks      []domain.TaskAssignment `json:"tasks"`
}

func runReport(_ context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("report")
	longevity := fs.Bool("longevity", false, "enable longevity mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	in, err := e.sliders(*longevity)
	if err != nil {
		return nil, err
	}
	species, err := e.cfg.Species()
	if err != nil {
		return nil, err
	}
	value, err := e.session.AssetValue()
	if err != nil {
		return nil, err
	}
	var census []domain.ZoneCensus
	for _, c := range e.session.Registry().Census() {
		if c.Species == species {
			census = append(census, c)
		}
	}
	return reportOutput{
		Species:    species,
		Inputs:     in,
		Economics:  e.session.Economics(in),
		Census:     census,
		LowStock:   e.session.Inventory().LowStock(),
		Inventory:  e.session.Inventory().Items(),
		AssetValue: value,
		Tasks:      e.session.Tasks().Assignments(),
	}, nil
}

func runFlux(_ context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("flux")
	longevity := fs.Bool("longevity", false, "enable longevity mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	in, err := e.sliders(*longevity)
	if err != nil {
		return nil, err
	}
	samples := make([]domain.FluxSample, 0, core.FluxSamples)
	for s := range e.session.Flux(in) {
		samples = append(samples, s)
	}
	return samples, nil
}

type syncOutput struct {
	Status  domain.SyncStatus `json:"status"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
}

func toSyncOutput(res domain.SyncResult) syncOutput {
	out := syncOutput{Status: res.Status, Message: res.Message}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func runCollect(ctx context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("collect")
	worker := fs.String("worker", "", "rostered worker name")
	qty := fs.Int("qty", 0, "eggs collected")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	res, err := e.session.CollectEggs(ctx, domain.Worker(*worker), *qty)
	if err != nil {
		return nil, err
	}
	return toSyncOutput(res), nil
}

func runObserve(ctx context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("observe")
	species := fs.String("species", "", "species of the unit")
	zone := fs.String("zone", "", "zone of the unit")
	id := fs.String("id", "", "unit id")
	task := fs.String("task", "Routine Log", "observation category")
	notes := fs.String("notes", "", "observation notes")
	feed := fs.Int("feed", e.cfg.Sliders.HighProtFeed, "feed amount; defaults to the high protein feed slider")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	sp, err := domain.ParseSpecies(*species)
	if err != nil {
		return nil, err
	}
	if _, err := e.session.OpenProfile(domain.UnitKey{Species: sp, Zone: *zone, ID: *id}); err != nil {
		return nil, err
	}
	res, err := e.session.SyncObservation(ctx, core.ObservationInput{
		Task:  domain.ObservationTask(*task),
		Notes: *notes,
		Feed:  *feed,
	})
	if err != nil {
		return nil, err
	}
	return toSyncOutput(res), nil
}

func runAssign(_ context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("assign")
	worker := fs.String("worker", "", "rostered worker name")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	tasks := make([]domain.TaskLabel, 0, fs.NArg())
	for _, t := range fs.Args() {
		tasks = append(tasks, domain.TaskLabel(t))
	}
	if err := e.session.AssignTasks(domain.Worker(*worker), tasks); err != nil {
		return nil, err
	}
	got, err := e.session.TasksFor(domain.Worker(*worker))
	if err != nil {
		return nil, err
	}
	return domain.TaskAssignment{Worker: domain.Worker(*worker), Tasks: got}, nil
}

func runAudit(ctx context.Context, e *app, args []string) (any, error) {
	fs := newFlagSet("audit")
	n := fs.Int("n", defaultAuditRows, "rows to read")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return e.session.RecentLedger(ctx, *n)
}

func runEggs(_ context.Context, _ *app, args []string) (any, error) {
	fs := newFlagSet("eggs")
	name := fs.String("name", "", "single product to show")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *name != "" {
		return core.EggProfileFor(*name)
	}
	return core.EggCatalog(), nil
}

func runFertilizer(_ context.Context, _ *app, args []string) (any, error) {
	fs := newFlagSet("fertilizer")
	acres := fs.Float64("acres", 1, "plot area in acres")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return core.FertilizerPlan(*acres)
}
