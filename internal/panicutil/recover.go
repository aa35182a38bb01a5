package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Call runs f and recovers from its panic.
// If f returns normally, it returns the error value returned from f.
// If f panics, it returns the recovered panic value as an error as *panics.ErrRecovered.
func Call(f func() error) (err error) {
	var catcher panics.Catcher
	catcher.Try(func() {
		err = f()
	})
	if recovered := catcher.Recovered(); recovered != nil {
		return recovered.AsError()
	}
	return err
}
