package pkgindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("indexes a descriptor once", func(t *testing.T) {
		idx := New()
		require.NoError(t, idx.Add(Descriptor{Name: "zlib"}))

		err := idx.Add(Descriptor{Name: "zlib"})
		assert.ErrorContains(t, err, "package already indexed: zlib")
	})

	t.Run("rejects an unnamed descriptor", func(t *testing.T) {
		idx := New()
		assert.ErrorContains(t, idx.Add(Descriptor{}), "must not be empty")
	})
}

func TestWasResolved(t *testing.T) {
	idx := New()
	assert.False(t, idx.WasResolved("zlib"))

	// An empty descriptor still counts as resolved.
	require.NoError(t, idx.Add(Descriptor{Name: "zlib"}))
	assert.True(t, idx.WasResolved("zlib"))
}

func TestModernHandle(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Add(Descriptor{Name: "zlib", Handle: "ZLIB::ZLIB"}))
	require.NoError(t, idx.Add(Descriptor{Name: "legacy", Meta: Metadata{Libraries: []string{"liblegacy.a"}}}))

	h, ok := idx.ModernHandle("zlib")
	assert.True(t, ok)
	assert.Equal(t, "ZLIB::ZLIB", h)

	_, ok = idx.ModernHandle("legacy")
	assert.False(t, ok)

	_, ok = idx.ModernHandle("dne")
	assert.False(t, ok)
}

func TestLegacyMetadata(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Add(Descriptor{
		Name: "png",
		Meta: Metadata{
			IncludeDirs: []string{"/usr/include/png"},
			Libraries:   []string{"png", "z"},
		},
	}))

	meta := idx.LegacyMetadata("png")
	assert.Equal(t, []string{"/usr/include/png"}, meta.IncludeDirs)
	assert.Equal(t, []string{"png", "z"}, meta.Libraries)
	assert.Empty(t, meta.LibraryDirs)
	assert.Empty(t, meta.Definitions)

	// The returned metadata is a copy.
	meta.Libraries[0] = "mutated"
	assert.Equal(t, []string{"png", "z"}, idx.LegacyMetadata("png").Libraries)

	assert.True(t, idx.LegacyMetadata("dne").Empty())
}

func TestMetadataEmpty(t *testing.T) {
	assert.True(t, Metadata{}.Empty())
	assert.False(t, Metadata{Definitions: []string{"NDEBUG"}}.Empty())
}
