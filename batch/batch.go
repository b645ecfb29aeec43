// Package batch validates many independent values concurrently.
//
// The report is assembled exactly as validate.Slice would assemble it: each
// failing item at location.Index(position), passing items absent. Scheduling
// never changes the result.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/nsat/validatron/contexts"
	"github.com/nsat/validatron/errors"
	"github.com/nsat/validatron/logger"
	"github.com/nsat/validatron/utils"
	"github.com/nsat/validatron/validate"
	"github.com/nsat/validatron/validation"
	"go.uber.org/atomic"
)

type options struct {
	concurrency int
}

// Option configures a batch run.
type Option func(*options)

// WithConcurrency limits the number of items validated at the same time.
// Values below 1 mean one. The default is GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Validate validates every item on a worker pool owned by this call.
//
// The first return value is the validation report (nil when every item
// passed). The second collects infrastructure failures: items whose routine
// panicked (errors.ErrPanicRecovery) and items skipped because ctx was done.
// Those items are absent from the report.
func Validate[V validate.Validator](ctx context.Context, items []V, opts ...Option) (*validation.Error, error) {
	ctx = contexts.EnsureContext(ctx)

	cfg := options{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.concurrency = max(1, min(cfg.concurrency, len(items)))

	ctx = logger.With(ctx, "batch_id", uuid.NewString())

	if len(items) == 0 {
		return nil, nil
	}

	var (
		results = make([]*validation.Error, len(items))
		faults  = make([]error, len(items))
		failed  = atomic.NewInt64(0)
		skipped = atomic.NewInt64(0)
	)

	pool := pond.NewPool(cfg.concurrency)
	defer pool.StopAndWait()

	tasks := make([]pond.Task, len(items))

	for i, item := range items {
		tasks[i] = pool.Submit(func() {
			if !contexts.IsContextAlive(ctx) {
				skipped.Inc()

				faults[i] = fmt.Errorf("item %d not validated: %w", i, context.Cause(ctx))

				return
			}

			defer func() {
				if recovered := recover(); recovered != nil {
					faults[i] = fmt.Errorf("item %d: %w", i, utils.GetPanicRecoveryError(recovered, debug.Stack()))
				}
			}()

			results[i] = item.Validate()
			if results[i] != nil {
				failed.Inc()
			}
		})
	}

	var errs errors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	b := validation.Build()

	for i, report := range results {
		b.AtIndex(i, report)
	}

	for _, fault := range faults {
		errs.Add(fault)
	}

	logger.Get(ctx).Debug("Batch validation finished",
		"items", len(items),
		"concurrency", cfg.concurrency,
		"failed", failed.Load(),
		"skipped", skipped.Load(),
		"faults", errs.Len())

	return b.Finish(), errs.GetError()
}
