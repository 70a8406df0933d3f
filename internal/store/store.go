// Package store provides full-collection accessors for the flat data sets the
// application works with. Each collection is read and written whole; there is
// no partial-update primitive and no locking across processes, so concurrent
// writers resolve as last-writer-wins.
package store

import "context"

// Collection is the accessor contract for one named data set.
//
// Get returns the current contents; a read failure is logged and degrades to
// an empty slice rather than an error. Replace overwrites the whole
// collection and reports success; callers that have nothing useful to do on
// failure may ignore the flag.
type Collection[T any] interface {
	Get(ctx context.Context) []T
	Replace(ctx context.Context, items []T) bool
}
