package reconcile

import (
	"context"
	"sync"
)

// Locker serializes work per key. Lock blocks until the key is free or ctx
// ends; the returned function releases the key and is safe to call once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// KeyedMutex is an in-process Locker. Entries are reference counted so the
// map only holds keys that are locked or awaited.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]*slot)}
}

// Lock acquires key.
func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	s, ok := k.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		k.slots[key] = s
	}
	s.refs++
	k.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			k.release(key, s)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.slots)
}

func (k *KeyedMutex) release(key string, s *slot) {
	k.mu.Lock()
	s.refs--
	if s.refs == 0 {
		delete(k.slots, key)
	}
	k.mu.Unlock()
}
