package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rain.png"), payload, 0o644))

	s := NewStore(dir)

	data, err := s.Load(IconRain)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestStoreLoadMissingIsAssetUnavailable(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Load(IconWindy)
	require.Error(t, err)

	var assetErr *AssetUnavailableError
	require.True(t, errors.As(err, &assetErr))
	assert.Equal(t, IconWindy, assetErr.Icon)
}
