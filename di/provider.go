package di

import "context"

// Provider supplies instances of T.
type Provider[T any] interface {
	Get() T
}

// Producer supplies instances of T asynchronously; production may fail.
type Producer[T any] interface {
	Get(ctx context.Context) (T, error)
}

// Lazy computes its value on the first Get and returns the same value afterwards.
type Lazy[T any] interface {
	Get() T
}

// MembersInjector populates the injectable members of an existing instance.
type MembersInjector[T any] interface {
	InjectMembers(instance T)
}
