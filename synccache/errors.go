package synccache

import "errors"

// ErrLoaderPanicked is returned by GetOrLoad when the loader panics.
// The returned error also wraps a *panics.ErrRecovered holding the panic value.
var ErrLoaderPanicked = errors.New("cache loader panicked")
