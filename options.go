package pocketcache

// Option is the interface for the options of Cache.
type Option[T ValueConstraint] interface {
	apply(*options[T])
}

type optionFunc[T ValueConstraint] func(*options[T])

func (f optionFunc[T]) apply(o *options[T]) {
	f(o)
}

// WithClock sets the clock used to stamp and check entries.
// The default clock is SystemClock.
func WithClock[T ValueConstraint](clock Clock) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.clock = clock
	})
}

// WithCloner sets the value cloner.
// The default value cloner is DefaultValueCloner.
func WithCloner[T ValueConstraint](cloner ValueCloner[T]) Option[T] {
	return optionFunc[T](func(o *options[T]) {
		o.cloner = cloner
	})
}

type options[T ValueConstraint] struct {
	clock  Clock
	cloner ValueCloner[T]
}

func defaultOptions[T ValueConstraint]() options[T] {
	return options[T]{
		clock:  SystemClock,
		cloner: DefaultValueCloner[T](),
	}
}
