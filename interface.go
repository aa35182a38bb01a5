package pocketcache

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// Store is the set of operations shared by Cache and its locked variant in the synccache package.
type Store[T ValueConstraint] interface {
	// Set stores the value under the key, replacing any previous entry and its insertion time.
	Set(key string, value T)

	// Get returns the value stored under the key.
	// The second result is false if the key is absent or its entry has expired.
	Get(key string) (T, bool)

	// Delete removes the entry for the key. It is a no-op if the key is absent.
	Delete(key string)

	// Clear removes all entries.
	Clear()

	// Len returns the number of stored entries, including expired entries that have not been read yet.
	Len() int
}
