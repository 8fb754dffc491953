package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"field-lookup/internal/fieldtype"
	"field-lookup/internal/lookup"
	"field-lookup/internal/mapping"
	"field-lookup/internal/match"
)

// ErrStaleVersion is returned by Publish when the expected version is no
// longer current.
var ErrStaleVersion = errors.New("stale version")

// Version is one published lookup.
type Version struct {
	// ID identifies the version in logs and traces.
	ID uuid.UUID
	// Seq increases by one with every publication, starting at 0.
	Seq uint64
	// Lookup is the immutable snapshot of this version.
	Lookup *lookup.Lookup
	// CreatedAt is the publication time.
	CreatedAt time.Time
}

// Registry holds the current lookup. The zero value is not usable; call New.
type Registry struct {
	current atomic.Pointer[Version]

	// mu serializes writers; readers never take it.
	mu     sync.Mutex
	logger *slog.Logger
	obs    *observer
}

type options struct {
	logger         *slog.Logger
	initial        *lookup.Lookup
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithInitial sets the lookup of version 0. Defaults to an empty lookup.
func WithInitial(l *lookup.Lookup) Option {
	return func(o *options) {
		o.initial = l
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// New creates a registry whose current version is version 0.
func New(opts ...Option) *Registry {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	if o.initial == nil {
		o.initial = lookup.New()
	}

	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}

	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	r := &Registry{
		logger: o.logger,
		obs:    newObserver(o.tracerProvider, o.meterProvider, o.logger),
	}
	r.current.Store(newVersion(0, o.initial))

	return r
}

func newVersion(seq uint64, l *lookup.Lookup) *Version {
	return &Version{
		ID:        uuid.New(),
		Seq:       seq,
		Lookup:    l,
		CreatedAt: time.Now(),
	}
}

// Current returns the current version.
func (r *Registry) Current() *Version {
	return r.current.Load()
}

// lookupSize is the result size observed for a write.
func lookupSize(v *Version) int {
	if v == nil {
		return 0
	}

	return v.Lookup.Len()
}

// Merge adds the field types and aliases of one type group to the current
// lookup and publishes the result as a new version.
func (r *Registry) Merge(
	ctx context.Context,
	group string,
	fields []fieldtype.FieldType,
	aliases []fieldtype.Alias,
) (v *Version, err error) {
	ctx, span := r.obs.start(ctx, "Merge",
		attribute.String("registry.group", group),
		attribute.Int("registry.fields", len(fields)),
		attribute.Int("registry.aliases", len(aliases)),
	)
	start := time.Now()

	defer func() { r.obs.observe(ctx, span, "Merge", start, lookupSize(v), err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()

	next, err := cur.Lookup.WithAdded(group, fields, aliases)
	if err != nil {
		return nil, fmt.Errorf("merge group %q: %w", group, err)
	}

	return r.publishLocked(ctx, cur, next), nil
}

// Apply merges the groups in order and publishes the result once. If any
// group is rejected nothing is published.
func (r *Registry) Apply(ctx context.Context, groups []mapping.Group) (v *Version, err error) {
	ctx, span := r.obs.start(ctx, "Apply", attribute.Int("registry.groups", len(groups)))
	start := time.Now()

	defer func() { r.obs.observe(ctx, span, "Apply", start, lookupSize(v), err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()
	next := cur.Lookup

	for i := range groups {
		g := &groups[i]

		next, err = next.WithAdded(g.Name, g.Fields, g.Aliases)
		if err != nil {
			r.logger.Warn("mapping rejected",
				slog.String("group", g.Name),
				slog.Int("applied_groups", i),
				slog.String("error", err.Error()),
			)

			return nil, fmt.Errorf("apply group %q: %w", g.Name, err)
		}
	}

	return r.publishLocked(ctx, cur, next), nil
}

// Publish makes next the current lookup, provided expected is still the
// current version. It returns ErrStaleVersion otherwise, in which case the
// caller should rebuild next from the new current version.
func (r *Registry) Publish(ctx context.Context, expected *Version, next *lookup.Lookup) (v *Version, err error) {
	ctx, span := r.obs.start(ctx, "Publish")
	start := time.Now()

	defer func() { r.obs.observe(ctx, span, "Publish", start, lookupSize(v), err) }()

	if next == nil {
		return nil, fmt.Errorf("%w: nil lookup", lookup.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()
	if cur != expected {
		return nil, fmt.Errorf("%w: expected seq %d, current is %d", ErrStaleVersion, seqOf(expected), cur.Seq)
	}

	return r.publishLocked(ctx, cur, next), nil
}

func seqOf(v *Version) uint64 {
	if v == nil {
		return 0
	}

	return v.Seq
}

// publishLocked stores next as the successor of cur. r.mu must be held.
func (r *Registry) publishLocked(ctx context.Context, cur *Version, next *lookup.Lookup) *Version {
	v := newVersion(cur.Seq+1, next)
	r.current.Store(v)

	r.obs.published(ctx, next.Len())

	r.logger.Debug("lookup published",
		slog.String("version", v.ID.String()),
		slog.Uint64("seq", v.Seq),
		slog.Int("fields", next.Len()),
		slog.Int("aliases", next.AliasCount()),
		slog.Int("containers", next.ContainerCount()),
		slog.Int("max_container_depth", next.MaxContainerDepth()),
	)

	return v
}

// Get resolves name against the current lookup.
func (r *Registry) Get(ctx context.Context, name string) (fieldtype.FieldType, bool) {
	ctx, span := r.obs.start(ctx, "Get", attribute.String("registry.name", name))
	start := time.Now()

	ft, ok := r.Current().Lookup.Get(name)

	found := 0
	if ok {
		found = 1
	}

	r.obs.observe(ctx, span, "Get", start, found, nil)

	return ft, ok
}

// MatchNames returns the names in the current lookup matching any of the
// patterns.
func (r *Registry) MatchNames(ctx context.Context, patterns ...string) []string {
	ctx, span := r.obs.start(ctx, "MatchNames", attribute.StringSlice("registry.patterns", patterns))
	start := time.Now()

	names := r.Current().Lookup.MatchAnyNames(patterns)

	r.obs.matched(ctx, len(names))
	r.obs.observe(ctx, span, "MatchNames", start, len(names), nil)

	return names
}

// Suggest ranks the names of the current lookup by similarity to an unknown
// name and returns at most limit of them.
func (r *Registry) Suggest(ctx context.Context, name string, limit int) match.SuggestionList {
	ctx, span := r.obs.start(ctx, "Suggest", attribute.String("registry.name", name))
	start := time.Now()

	list := match.Suggest(name, r.Current().Lookup.Names(), limit)

	r.obs.observe(ctx, span, "Suggest", start, len(list), nil)

	return list
}
