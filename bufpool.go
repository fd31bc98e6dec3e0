package termui

import "sync"

// pool is a generic wrapper around a sync.Pool, used to recycle the
// fixed-size scratch buffers RxFill needs on every readiness callback
// without allocating one per call.
type pool[T any] struct {
	pool sync.Pool
}

func newPool[T any](fn func() T) pool[T] {
	return pool[T]{
		pool: sync.Pool{New: func() interface{} { return fn() }},
	}
}

func (p *pool[T]) Get() T { return p.pool.Get().(T) }

func (p *pool[T]) Put(x T) { p.pool.Put(x) }

var rxScratchPool = newPool(func() []byte { return make([]byte, rxCapacity) })
