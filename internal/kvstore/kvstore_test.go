package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/allersafe/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestFileStore(t *testing.T) {
	s, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "allersafe:meals")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "allersafe:meals", `[{"id":"m1"}]`))

	got, ok, err := s.Get(ctx, "allersafe:meals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"m1"}]`, got)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "k", "durable"))

	s2, err := NewFile(dir)
	require.NoError(t, err)
	got, ok, err := s2.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "durable", got)
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func TestDBStore(t *testing.T) {
	s, err := NewDB(setupTestDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2")) // upsert, not duplicate

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)

	var count int64
	s.db.Model(&Record{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOpenNoneDriver(t *testing.T) {
	s, err := Open(&config.Config{StoreDriver: "none"})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpenFileDriver(t *testing.T) {
	s, err := Open(&config.Config{
		StoreDriver: "file",
		StorePath:   filepath.Join(t.TempDir(), "data"),
	})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{StoreDriver: "carrier-pigeon"})
	assert.Error(t, err)
}
