package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("date,platform\n2024-01-01,X\n"))
	b := Fingerprint([]byte("date,platform\n2024-01-01,X\n"))
	c := Fingerprint([]byte("date,platform\n2024-01-02,X\n"))

	assert.Equal(t, a, b, "identical bytes must share a fingerprint")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCleanStore(t *testing.T) {
	store := NewCleanStore(nil)
	dataset := sampleDataset()
	fp := Fingerprint([]byte("upload-one"))

	cached := store.Put(fp, dataset)
	require.NotNil(t, cached)
	assert.NotEmpty(t, cached.ID)
	assert.Equal(t, fp, cached.Fingerprint)
	assert.Equal(t, dataset, cached.Dataset)

	t.Run("lookup by id", func(t *testing.T) {
		got, ok := store.GetByID(cached.ID)
		require.True(t, ok)
		assert.Same(t, cached, got)
	})

	t.Run("lookup by fingerprint", func(t *testing.T) {
		got, ok := store.GetByFingerprint(fp)
		require.True(t, ok)
		assert.Same(t, cached, got)
	})

	t.Run("repeated put reuses the handle", func(t *testing.T) {
		again := store.Put(fp, dataset)
		assert.Equal(t, cached.ID, again.ID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("new content gets a new handle", func(t *testing.T) {
		other := store.Put(Fingerprint([]byte("upload-two")), dataset)
		assert.NotEqual(t, cached.ID, other.ID)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("unknown id misses", func(t *testing.T) {
		_, ok := store.GetByID("no-such-id")
		assert.False(t, ok)
	})
}
