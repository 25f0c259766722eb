// Package orchestrator runs the per-file transform state machine over a batch of candidates.
package orchestrator

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls one batch run.
type Options struct {
	// Workers bounds concurrent files. Zero or less means runtime.NumCPU().
	Workers int
	// Timeout bounds each engine call. Zero disables the limit.
	Timeout time.Duration
	// EngineOptions is passed unchanged to every Transform call.
	EngineOptions domain.Options
	// NoCache disables cache-hit skipping. Completed files still refresh the cache.
	NoCache bool
	// Check reports files that would change without writing them or touching the cache.
	Check bool
}

// Orchestrator drives candidates through read, hash, transform and write-back.
type Orchestrator struct {
	hasher    ports.Hasher
	files     ports.SourceFiles
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Orchestrator.
func New(
	hasher ports.Hasher,
	files ports.SourceFiles,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Orchestrator {
	return &Orchestrator{
		hasher:    hasher,
		files:     files,
		logger:    logger,
		telemetry: telemetry,
	}
}

// WithTelemetry returns a copy of o that records file vertices to t.
func (o *Orchestrator) WithTelemetry(t ports.Telemetry) *Orchestrator {
	clone := *o
	clone.telemetry = t
	return &clone
}

// batch holds the collaborators shared by every file of one run.
type batch struct {
	cache  ports.FingerprintCache
	engine ports.TransformEngine
	codec  ports.TextCodec
	opts   Options
}

// Run processes candidates and returns the report of every file that started.
// A failing file never stops the batch. Cancelling ctx stops scheduling; files
// that never started are left out of the report.
func (o *Orchestrator) Run(
	ctx context.Context,
	candidates []domain.Candidate,
	cache ports.FingerprintCache,
	engine ports.TransformEngine,
	codec ports.TextCodec,
	opts Options,
) *domain.Report {
	started := time.Now()
	b := &batch{cache: cache, engine: engine, codec: codec, opts: opts}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]domain.FileResult, len(candidates))
	ran := make([]bool, len(candidates))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i] = o.process(ctx, c, b)
			ran[i] = true
			return nil
		})
	}
	_ = g.Wait()

	completed := make([]domain.FileResult, 0, len(candidates))
	for i, res := range results {
		if ran[i] {
			completed = append(completed, res)
		}
	}

	return domain.NewReport(started, time.Now(), completed)
}

// process runs the state machine for a single candidate.
func (o *Orchestrator) process(ctx context.Context, c domain.Candidate, b *batch) (res domain.FileResult) {
	start := time.Now()
	res.Candidate = c

	vctx, vertex := o.telemetry.Record(ctx, c.Key)
	defer func() {
		res.Duration = time.Since(start)
		vertex.Log(domain.LogLevelDebug, string(res.Reason))
		vertex.Complete(res.Err)
		o.report(res)
	}()

	// READ
	raw, err := o.files.Read(c.Path)
	if err != nil {
		return failed(res, domain.ReasonReadFailed, err)
	}
	text, err := b.codec.Decode(raw)
	if err != nil {
		return failed(res, domain.ReasonReadFailed, zerr.With(err, "path", c.Path))
	}

	// HASH_ORIGINAL
	originalHash := o.hasher.Fingerprint(raw)

	// CACHE_HIT_SKIP
	if !b.opts.NoCache {
		if cached, ok := b.cache.Get(c.Key); ok && cached == originalHash {
			vertex.Cached()
			return skipped(res, domain.ReasonCacheHit)
		}
	}

	// TRANSFORM
	out, reason, err := o.transform(vctx, text, b.engine, b.opts)
	if err != nil {
		return failed(res, reason, zerr.With(err, "path", c.Path))
	}

	// HASH_RESULT
	encoded, err := b.codec.Encode(out)
	if err != nil {
		return failed(res, domain.ReasonWriteFailed, zerr.With(err, "path", c.Path))
	}
	resultHash := o.hasher.Fingerprint(encoded)

	// NOOP_SKIP
	if resultHash == originalHash {
		if !b.opts.Check {
			b.cache.Set(c.Key, resultHash)
		}
		return skipped(res, domain.ReasonNoOp)
	}

	if b.opts.Check {
		return failed(res, domain.ReasonWouldChange, zerr.With(domain.ErrFilesNeedFormatting, "path", c.Path))
	}

	// WRITE_BACK
	if err := o.files.Write(c.Path, encoded); err != nil {
		return failed(res, domain.ReasonWriteFailed, err)
	}
	b.cache.Set(c.Key, resultHash)

	res.Outcome = domain.OutcomeSucceeded
	res.Reason = domain.ReasonWritten
	return res
}

// transform calls the engine under the per-file timeout.
func (o *Orchestrator) transform(
	ctx context.Context,
	text string,
	engine ports.TransformEngine,
	opts Options,
) (string, domain.Reason, error) {
	tctx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	out, err := engine.Transform(tctx, text, opts.EngineOptions)
	if err == nil {
		return out, "", nil
	}

	if ctx.Err() == nil && errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return "", domain.ReasonTransformTimeout,
			zerr.With(zerr.Wrap(err, domain.ErrTransformTimeout.Error()), "timeout", opts.Timeout.String())
	}
	return "", domain.ReasonTransformFailed, zerr.Wrap(err, domain.ErrTransformFailed.Error())
}

// report logs one line per file. User-facing progress is left to telemetry frontends.
func (o *Orchestrator) report(res domain.FileResult) {
	args := []any{"path", res.Candidate.Key, "outcome", res.Outcome.String(), "reason", string(res.Reason)}
	if res.Err != nil {
		args = append(args, "error", res.Err.Error())
	}
	o.logger.Debug("file processed", args...)
}

func failed(res domain.FileResult, reason domain.Reason, err error) domain.FileResult {
	res.Outcome = domain.OutcomeFailed
	res.Reason = reason
	res.Err = err
	return res
}

func skipped(res domain.FileResult, reason domain.Reason) domain.FileResult {
	res.Outcome = domain.OutcomeSkipped
	res.Reason = reason
	return res
}
