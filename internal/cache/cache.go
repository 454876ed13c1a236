package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/iwvelando/fleet-forecast/internal/config"
	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/internal/metrics"
	"github.com/iwvelando/fleet-forecast/internal/tracing"
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is a forecast.Computer that answers from a Store when it can and
// otherwise runs the engine, collapsing concurrent identical requests into one
// computation. Store failures never fail a request.
type Cache struct {
	store    Store
	backend  string
	computer forecast.Computer
	logger   *zap.Logger
	tracer   trace.Tracer
	group    singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for store failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithComputer replaces the engine behind the cache.
func WithComputer(computer forecast.Computer) Option {
	return func(c *Cache) {
		if computer != nil {
			c.computer = computer
		}
	}
}

// WithBackendName sets the backend label reported in metrics.
func WithBackendName(name string) Option {
	return func(c *Cache) {
		c.backend = name
	}
}

// New returns a Cache over store. A nil store disables memoization but keeps
// request collapsing, metrics and tracing.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store:    store,
		backend:  "custom",
		computer: forecast.Engine{},
		logger:   zap.NewNop(),
		tracer:   tracing.Tracer("cache"),
	}
	if store == nil {
		c.backend = constants.CacheBackendNone
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds the Cache described by cfg. The returned close func
// releases backend connections.
func NewFromConfig(cfg config.CacheConfig, logger *zap.Logger) (*Cache, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	cfg = cfg.WithDefaults()
	ttl, err := cfg.TTLDuration()
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	switch cfg.Backend {
	case constants.CacheBackendMemory:
		return New(NewMemoryStore(cfg.MaxEntries, ttl), WithLogger(logger), WithBackendName(cfg.Backend)), noop, nil
	case constants.CacheBackendRedis:
		client := NewRedisClient(cfg.Redis)
		store := NewRedisStore(client, cfg.KeyPrefix, ttl)
		return New(store, WithLogger(logger), WithBackendName(cfg.Backend)), client.Close, nil
	case constants.CacheBackendNone:
		return New(nil, WithLogger(logger)), noop, nil
	}
	return nil, nil, fmt.Errorf("unsupported cache backend %s", cfg.Backend)
}

// Compute implements forecast.Computer.
func (c *Cache) Compute(ctx context.Context, params forecast.Parameters) (forecast.Result, error) {
	result, _, err := c.ComputeWithStatus(ctx, params)
	return result, err
}

// ComputeWithStatus is Compute that also reports whether the result came
// from the store.
func (c *Cache) ComputeWithStatus(ctx context.Context, params forecast.Parameters) (forecast.Result, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Compute", trace.WithAttributes(
		attribute.Int("fleet.unit_count", params.UnitCount),
		attribute.Float64("fleet.unit_value", params.UnitValue),
		attribute.Float64("loan.annual_rate_percent", params.AnnualInterestRatePercent),
		attribute.Int("loan.term_periods", params.TermPeriods),
		attribute.String("depreciation.model", params.DepreciationModel.String()),
		attribute.Float64("depreciation.rate_percent", params.DepreciationRatePercent),
		attribute.String("cache.backend", c.backend),
	))
	defer span.End()

	if err := params.Validate(); err != nil {
		c.recordFailure(span, params, err)
		return forecast.Result{}, false, err
	}

	key := Key(params)

	if c.store != nil {
		cached, ok, err := c.store.Get(ctx, key)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues(c.backend, metrics.StatusError).Inc()
			c.logger.Warn("schedule cache lookup failed, computing instead",
				zap.String("op", "cache.Compute"),
				zap.String("key", key),
				zap.Error(err),
			)
		case ok && cached.Parameters == params:
			metrics.CacheLookups.WithLabelValues(c.backend, metrics.ResultHit).Inc()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, true, nil
		case ok:
			// Same key, different tuple: a hash collision or a stale entry.
			metrics.CacheLookups.WithLabelValues(c.backend, metrics.ResultMiss).Inc()
			c.logger.Warn("cached schedule belongs to other parameters, recomputing",
				zap.String("op", "cache.Compute"),
				zap.String("key", key),
			)
		default:
			metrics.CacheLookups.WithLabelValues(c.backend, metrics.ResultMiss).Inc()
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	value, err, shared := c.group.Do(key, func() (interface{}, error) {
		start := time.Now()
		result, err := c.computer.Compute(ctx, params)
		metrics.ComputeDuration.WithLabelValues(params.DepreciationModel.String()).Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, err
		}
		metrics.SchedulesComputed.WithLabelValues(params.DepreciationModel.String(), metrics.StatusSuccess).Inc()

		if c.store != nil {
			if err := c.store.Set(ctx, key, result); err != nil {
				c.logger.Warn("failed to store computed schedule",
					zap.String("op", "cache.Compute"),
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}
		return result, nil
	})
	if err != nil {
		c.recordFailure(span, params, err)
		return forecast.Result{}, false, err
	}
	span.SetAttributes(attribute.Bool("cache.shared", shared))

	result := value.(forecast.Result)
	if result.Parameters != params {
		// A colliding tuple shared the in-flight computation.
		result, err = c.computer.Compute(ctx, params)
		if err != nil {
			c.recordFailure(span, params, err)
			return forecast.Result{}, false, err
		}
	}
	return result.Clone(), false, nil
}

func (c *Cache) recordFailure(span trace.Span, params forecast.Parameters, err error) {
	metrics.SchedulesComputed.WithLabelValues(params.DepreciationModel.String(), metrics.StatusError).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
