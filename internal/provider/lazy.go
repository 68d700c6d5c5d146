package provider

import "sync"

// lazy is a compute-once cell. Concurrent first readers serialize on the
// sync.Once: exactly one of them runs build, the rest block until the value
// is published, and later reads are plain loads with no locking.
type lazy[T any] struct {
	once sync.Once
	v    T
}

func (l *lazy[T]) value(build func() T) T {
	l.once.Do(func() {
		l.v = build()
	})
	return l.v
}
