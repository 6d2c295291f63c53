// Package app implements the application layer for tsprops.
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/tsprops/internal/core/domain"
	"go.trai.ch/tsprops/internal/core/ports"
	"go.trai.ch/tsprops/internal/core/siltime"
	"go.trai.ch/tsprops/internal/core/textprops"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Fields used when writing runs through the data-access port.
const (
	PropsField    domain.FieldID = 1
	ModifiedField domain.FieldID = 2
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.DataAccess
	logger       ports.Logger
	telemetry    ports.Telemetry
	cache        *textprops.Cache
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.DataAccess,
	logger ports.Logger,
	telemetry ports.Telemetry,
	cache *textprops.Cache,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       logger,
		telemetry:    telemetry,
		cache:        cache,
		now:          time.Now,
	}
}

// WithClock sets the clock used to stamp stored runs.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// InternOptions configures a call to Intern.
type InternOptions struct {
	// Workers bounds the number of runs interned concurrently.
	// Zero means runtime.NumCPU().
	Workers int
}

// RunResult describes the canonical properties of one run.
type RunResult struct {
	Name        string
	Object      domain.ObjectID
	Props       *textprops.TextProps
	Fingerprint string
	// Group is the 1-based index of the first run sharing the same instance.
	Group   int
	Stamped time.Time
}

// Report is the outcome of Intern.
type Report struct {
	Runs     []RunResult
	Distinct int
	Stats    textprops.CacheStats
}

// Intern loads the run file at path, builds the canonical properties of every
// run and stores them through the data-access port.
func (a *App) Intern(ctx context.Context, path string, opts InternOptions) (*Report, error) {
	runs, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load run file")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]RunResult, len(runs))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, run := range runs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			res, err := a.internRun(groupCtx, domain.ObjectID(i+1), run)
			if err != nil {
				return zerr.With(err, "run", run.Name)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	groups := make(map[*textprops.TextProps]int, len(results))
	for i := range results {
		group, ok := groups[results[i].Props]
		if !ok {
			group = i + 1
			groups[results[i].Props] = group
		}
		results[i].Group = group
	}

	report := &Report{
		Runs:     results,
		Distinct: len(groups),
		Stats:    a.cache.Stats(),
	}
	a.logger.Info(fmt.Sprintf("interned %d runs into %d canonical property sets", len(results), report.Distinct))

	return report, nil
}

func (a *App) internRun(ctx context.Context, obj domain.ObjectID, run domain.RunSpec) (_ RunResult, err error) {
	_, vertex := a.telemetry.Record(ctx, run.Name)
	defer func() { vertex.Complete(err) }()

	props, loaded := a.cache.NewBuilder().Apply(run.Props).BuildLoaded()
	if loaded {
		vertex.Cached()
	}
	fingerprint := props.Fingerprint()
	_, _ = fmt.Fprintf(vertex.Stdout(), "%s %s\n", fingerprint, props)

	if err := textprops.Store(a.store, obj, PropsField, props); err != nil {
		return RunResult{}, err
	}
	if err := siltime.SetTimeProperty(a.store, obj, ModifiedField, a.now()); err != nil {
		return RunResult{}, err
	}

	stored, err := a.cache.Load(a.store, obj, PropsField)
	if err != nil {
		return RunResult{}, err
	}
	if stored != props {
		return RunResult{}, zerr.With(zerr.Wrap(domain.ErrIdentityMismatch, "failed to verify stored run"), "object", obj)
	}

	return RunResult{
		Name:        run.Name,
		Object:      obj,
		Props:       props,
		Fingerprint: fingerprint,
		Stamped:     siltime.GetTimeProperty(a.store, obj, ModifiedField),
	}, nil
}
