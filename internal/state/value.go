// Package state implements the durable keyed value: an in-memory value bound
// to one backing-store key, loaded once at creation and written through on
// every change. The in-memory value is the source of truth for the running
// session; durability is best-effort.
package state

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/allersafe/backend/internal/kvstore"
)

const storeTimeout = 5 * time.Second

// Value holds one T under one storage key. Two Values bound to the same key
// are independent in-memory copies; the last writer to the store wins.
type Value[T any] struct {
	mu    sync.Mutex
	store kvstore.Store
	key   string
	cur   T
}

// New loads the stored record under key. An absent record, a read error or a
// record that fails to decode all yield fallback(), which is evaluated at most
// once and only when needed. A nil store degrades to pure in-memory state.
func New[T any](store kvstore.Store, key string, fallback func() T) *Value[T] {
	v := &Value[T]{store: store, key: key}
	v.cur = v.load(fallback)
	return v
}

// NewWithDefault is New with a literal initial value.
func NewWithDefault[T any](store kvstore.Store, key string, def T) *Value[T] {
	return New(store, key, func() T { return def })
}

func (v *Value[T]) load(fallback func() T) T {
	if v.store == nil {
		return fallback()
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, ok, err := v.store.Get(ctx, v.key)
	if err != nil {
		log.Printf("state: failed to read key %q: %v", v.key, err)
		return fallback()
	}
	if !ok {
		return fallback()
	}

	var val T
	if err := json.Unmarshal([]byte(raw), &val); err != nil {
		log.Printf("state: failed to parse key %q: %v", v.key, err)
		return fallback()
	}
	return val
}

// Key returns the storage key this value is bound to.
func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Replace installs next as the current value and writes it through.
func (v *Value[T]) Replace(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = next
	v.persistLocked()
}

// Update applies fn to the current value and installs the result atomically
// with respect to this value's readers, then writes it through. fn must be
// pure; it runs under the value's lock.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = fn(v.cur)
	v.persistLocked()
	return v.cur
}

// persistLocked writes the current value to the store. Failures are logged
// and swallowed; the in-memory value is never rolled back.
func (v *Value[T]) persistLocked() {
	if v.store == nil {
		return
	}

	data, err := json.Marshal(v.cur)
	if err != nil {
		log.Printf("state: failed to serialize key %q: %v", v.key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := v.store.Set(ctx, v.key, string(data)); err != nil {
		log.Printf("state: failed to write key %q: %v", v.key, err)
	}
}
