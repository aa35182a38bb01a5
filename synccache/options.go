package synccache

import (
	"log/slog"

	"github.com/karupanerura/pocketcache"
	"github.com/prometheus/client_golang/prometheus"
)

// Option is the interface for the options of Cache.
type Option[T pocketcache.ValueConstraint] interface {
	apply(*options[T])
}

type optionFunc[T pocketcache.ValueConstraint] func(*options[T])

func (f optionFunc[T]) apply(o *options[T]) {
	f(o)
}

// WithClock sets the clock used to stamp and check entries.
// The default clock is pocketcache.SystemClock.
func WithClock[T pocketcache.ValueConstraint](clock pocketcache.Clock) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.cacheOptions = append(o.cacheOptions, pocketcache.WithClock[T](clock))
	})
}

// WithCloner sets the value cloner.
// It is also used to copy a loaded value for each GetOrLoad caller sharing the load.
// The default value cloner is pocketcache.DefaultValueCloner.
func WithCloner[T pocketcache.ValueConstraint](cloner pocketcache.ValueCloner[T]) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.cloner = cloner
		o.cacheOptions = append(o.cacheOptions, pocketcache.WithCloner[T](cloner))
	})
}

// WithMetrics registers the metrics of the cache to the registerer.
// The name is attached to every metric as the "cache" label, so that multiple caches
// can be registered to the same registerer.
// It panics if metrics with the same name are already registered.
func WithMetrics[T pocketcache.ValueConstraint](reg prometheus.Registerer, name string) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.registerer = reg
		o.name = name
	})
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger[T pocketcache.ValueConstraint](logger *slog.Logger) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.logger = logger
	})
}

type options[T pocketcache.ValueConstraint] struct {
	cacheOptions []pocketcache.Option[T]
	cloner       pocketcache.ValueCloner[T]
	registerer   prometheus.Registerer
	name         string
	logger       *slog.Logger
}

func defaultOptions[T pocketcache.ValueConstraint]() options[T] {
	return options[T]{
		cloner: pocketcache.DefaultValueCloner[T](),
		logger: slog.New(slog.DiscardHandler),
	}
}
