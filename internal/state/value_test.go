package state

import (
	"context"
	"errors"
	"testing"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counts struct {
	Hits int `json:"hits"`
}

func TestLoadsStoredValueOverDefault(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), "counts", `{"hits":7}`))

	v := NewWithDefault(store, "counts", counts{Hits: 99})
	assert.Equal(t, 7, v.Get().Hits)
}

func TestAbsentRecordYieldsDefault(t *testing.T) {
	v := NewWithDefault(kvstore.NewMemory(), "counts", counts{Hits: 3})
	assert.Equal(t, 3, v.Get().Hits)
}

func TestCorruptRecordYieldsDefault(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), "counts", `{not json`))

	v := NewWithDefault(store, "counts", counts{Hits: 3})
	assert.Equal(t, 3, v.Get().Hits)
}

func TestFallbackEvaluatedLazily(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), "counts", `{"hits":1}`))

	called := 0
	New(store, "counts", func() counts {
		called++
		return counts{}
	})
	assert.Equal(t, 0, called, "fallback must not run when a record decodes")
}

func TestReplaceWritesThrough(t *testing.T) {
	store := kvstore.NewMemory()
	v := NewWithDefault(store, "counts", counts{})
	v.Replace(counts{Hits: 5})

	raw, ok, err := store.Get(context.Background(), "counts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"hits":5}`, raw)
}

func TestRoundTripIgnoresNewDefault(t *testing.T) {
	store := kvstore.NewMemory()

	v1 := NewWithDefault(store, "counts", counts{})
	v1.Replace(counts{Hits: 42})

	v2 := NewWithDefault(store, "counts", counts{Hits: -1})
	assert.Equal(t, 42, v2.Get().Hits, "stored value wins over a different default")
}

func TestUpdateAppliesFunction(t *testing.T) {
	v := NewWithDefault(kvstore.NewMemory(), "counts", counts{Hits: 1})
	got := v.Update(func(c counts) counts {
		c.Hits++
		return c
	})
	assert.Equal(t, 2, got.Hits)
	assert.Equal(t, 2, v.Get().Hits)
}

func TestNilStoreIsMemoryOnly(t *testing.T) {
	v := NewWithDefault[counts](nil, "counts", counts{Hits: 1})
	v.Replace(counts{Hits: 2})
	assert.Equal(t, 2, v.Get().Hits)
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("quota exceeded")
}

func TestWriteFailureKeepsInMemoryValue(t *testing.T) {
	v := NewWithDefault[counts](failingStore{}, "counts", counts{Hits: 1})
	v.Replace(counts{Hits: 9})
	assert.Equal(t, 9, v.Get().Hits, "write failure must not roll back memory")
}

func TestSameKeyInstancesAreIndependent(t *testing.T) {
	store := kvstore.NewMemory()
	a := NewWithDefault(store, "counts", counts{})
	b := NewWithDefault(store, "counts", counts{})

	a.Replace(counts{Hits: 1})
	assert.Equal(t, 0, b.Get().Hits, "no cross-instance coordination")

	b.Replace(counts{Hits: 2})
	raw, _, err := store.Get(context.Background(), "counts")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hits":2}`, raw, "last writer wins")
}
