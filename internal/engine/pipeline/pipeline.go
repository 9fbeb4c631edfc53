package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// mtimeGranularity is the window in which a file modification may not be
// visible in its mtime yet. Files this close to the last check are rehashed.
const mtimeGranularity = 2 * time.Second

// Request asks for one stylesheet.
type Request struct {
	// URL is the stylesheet URL or path as referenced by the host.
	URL string
	// Handle keys the cache slot. The zero handle is derived from the source path.
	Handle domain.Handle
	// Force recompiles even if the fingerprint matches.
	Force bool
}

// Run is the outcome of one pipeline run.
type Run struct {
	Handle domain.Handle
	// State is the final state, StateDone or StateFailed.
	State domain.State
	// Trail lists every state the run entered, in order.
	Trail    []domain.State
	Artifact domain.Artifact
	Err      error
}

func (r *Run) enter(state domain.State) {
	r.State = state
	r.Trail = append(r.Trail, state)
}

func (r *Run) fail(err error) *Run {
	r.enter(domain.StateFailed)
	r.Err = err
	r.Artifact = domain.Artifact{}
	return r
}

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Store         ports.CacheStore
	Compiler      ports.Compiler
	Fingerprinter ports.Fingerprinter
	// StatSigner enables the mtime fast path when the configuration asks for it.
	StatSigner ports.StatSigner
	Telemetry  ports.Telemetry
	Logger     ports.Logger
	Registry   *Registry
	// VariableHook supplies per-handle overrides in addition to the configured ones.
	VariableHook ports.VariableHook
}

// Pipeline resolves stylesheet requests to compiled artifacts, recompiling
// only when the content fingerprint changed.
type Pipeline struct {
	cfg           *domain.Config
	resolver      *Resolver
	store         ports.CacheStore
	compiler      ports.Compiler
	fingerprinter ports.Fingerprinter
	signer        ports.StatSigner
	telemetry     ports.Telemetry
	logger        ports.Logger

	group singleflight.Group
	now   func() time.Time
}

// New creates a Pipeline for cfg.
func New(cfg *domain.Config, deps Deps) *Pipeline {
	hook := VariableHooks{ConfigVariables(cfg.HandleVariables)}
	if deps.VariableHook != nil {
		hook = append(hook, deps.VariableHook)
	}

	signer := deps.StatSigner
	if !cfg.FastPath {
		signer = nil
	}

	return &Pipeline{
		cfg:           cfg,
		resolver:      NewResolver(cfg, deps.Registry, hook),
		store:         deps.Store,
		compiler:      deps.Compiler,
		fingerprinter: deps.Fingerprinter,
		signer:        signer,
		telemetry:     deps.Telemetry,
		logger:        deps.Logger,
		now:           time.Now,
	}
}

// Resolve runs the pipeline for req and returns the artifact.
func (p *Pipeline) Resolve(ctx context.Context, req Request) (domain.Artifact, error) {
	run := p.Run(ctx, req)
	return run.Artifact, run.Err
}

// Run runs the pipeline for req. Concurrent runs for the same handle and URL
// within this process share one execution.
func (p *Pipeline) Run(ctx context.Context, req Request) *Run {
	key := req.Handle.String() + "\x00" + req.URL
	if req.Force {
		key += "\x00force"
	}

	v, _, _ := p.group.Do(key, func() (any, error) {
		return p.execute(ctx, req), nil
	})
	return v.(*Run) //nolint:forcetypeassert // execute always returns *Run
}

func (p *Pipeline) execute(ctx context.Context, req Request) *Run {
	run := &Run{Handle: req.Handle}
	ctx, vertex := p.telemetry.Record(ctx, req.URL)
	defer func() {
		if run.Err != nil {
			vertex.Log(domain.LogLevelError, run.Err.Error())
		}
		vertex.Complete(run.Err)
	}()

	return p.stages(ctx, req, run, vertex)
}

func (p *Pipeline) stages(ctx context.Context, req Request, run *Run, vertex ports.Vertex) *Run {
	enter := func(state domain.State) {
		run.enter(state)
		vertex.Log(domain.LogLevelDebug, string(state))
	}

	enter(domain.StateResolving)
	cc, err := p.resolver.Resolve(req.URL, req.Handle)
	if err != nil {
		return run.fail(err)
	}
	run.Handle = cc.Handle
	force := req.Force || p.cfg.Debug

	enter(domain.StateFingerprinting)
	// The check time and stat signature are taken before hashing, so a change
	// that races the hash is seen as newer than the recorded slot.
	checkedAt := p.now()
	slot, err := p.store.ReadSlot(cc.Handle)
	if err != nil {
		return run.fail(errors.Join(domain.ErrIO, err))
	}

	signature := p.signature(cc)
	var (
		current domain.Fingerprint
		source  []byte
	)
	if !force && p.unchanged(slot, signature) {
		p.logger.Debug("unchanged stat signature " + cc.Handle.String())
		current = slot.Fingerprint
	} else {
		current, source, err = p.fingerprinter.Compute(cc)
		if err != nil {
			return run.fail(classify(err, domain.ErrIO))
		}
	}

	enter(domain.StateDecidingReuse)
	var stored *domain.Fingerprint
	if slot != nil {
		stored = &slot.Fingerprint
	}
	reuse := !domain.ShouldRecompile(stored, current, force)
	p.logger.Debug(fmt.Sprintf("fingerprint %s %s", cc.Handle, current))

	if reuse {
		enter(domain.StateReusing)
		vertex.Cached()
		vertex.Log(domain.LogLevelInfo, "reused "+cc.Handle.String())
		p.logger.Info("reused " + cc.Handle.String())
	} else {
		enter(domain.StateCompiling)
		if err := p.compile(ctx, cc, source, current, signature.sum, checkedAt, vertex.Stdout()); err != nil {
			return run.fail(err)
		}
		vertex.Log(domain.LogLevelInfo, "compiled "+cc.Handle.String())
		p.logger.Info("compiled " + cc.Handle.String())
	}

	enter(domain.StatePublishing)
	artifact := p.store.OutputLocation(cc.Handle)
	artifact.Reused = reuse
	run.Artifact = artifact

	enter(domain.StateDone)
	return run
}

// compile runs the compiler and writes the output before the slot, so a
// failure at any step leaves the previous slot in place. A vetoed output
// leaves it in place too.
func (p *Pipeline) compile(
	ctx context.Context,
	cc *domain.CompilationContext,
	source []byte,
	current domain.Fingerprint,
	signature string,
	checkedAt time.Time,
	output io.Writer,
) error {
	css, err := p.compiler.Compile(ctx, ports.CompileRequest{
		Handle:      cc.Handle,
		Source:      source,
		SourcePath:  cc.SourceFile,
		ImportPaths: cc.SearchPaths(),
		Variables:   cc.Variables,
		Functions:   cc.EffectiveFunctions(),
		Output:      output,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return classify(err, domain.ErrCompileFailed)
	}

	path, err := p.store.WriteOutput(cc.Handle, css)
	if err != nil {
		return errors.Join(domain.ErrIO, err)
	}
	if path == "" {
		// Vetoed by a write hook. Without a local output the next request
		// has nothing to reuse, so no fingerprint is recorded.
		p.logger.Debug("output vetoed " + cc.Handle.String())
		return nil
	}

	err = p.store.WriteSlot(domain.CacheSlot{
		Handle:        cc.Handle,
		Fingerprint:   current,
		OutputPath:    path,
		CompiledAt:    checkedAt,
		StatSignature: signature,
	})
	if err != nil {
		return errors.Join(domain.ErrIO, err)
	}
	return nil
}

type statSignature struct {
	sum    string
	newest time.Time
}

// signature returns the zero signature when the fast path is off or stat fails.
func (p *Pipeline) signature(cc *domain.CompilationContext) statSignature {
	if p.signer == nil {
		return statSignature{}
	}
	sum, newest, err := p.signer.Signature(cc)
	if err != nil {
		return statSignature{}
	}
	return statSignature{sum: sum, newest: newest}
}

// unchanged reports whether the slot may be trusted without hashing: the stat
// signature matches and every file predates the last check by more than the
// mtime granularity. Anything else falls back to full hashing.
func (p *Pipeline) unchanged(slot *domain.CacheSlot, sig statSignature) bool {
	if slot == nil || sig.sum == "" || slot.StatSignature != sig.sum || slot.Fingerprint.Partial {
		return false
	}
	if slot.CompiledAt.IsZero() || slot.CompiledAt.After(p.now()) {
		return false
	}
	return sig.newest.Before(slot.CompiledAt.Add(-mtimeGranularity))
}

// classify joins err with sentinel unless it already carries it.
func classify(err, sentinel error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return errors.Join(sentinel, err)
}
