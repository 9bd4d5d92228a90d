// SPDX-License-Identifier: EPL-2.0

package cipher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audstego/cipher"
)

func TestKeyFile_CreatesThenReuses(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "aes_key.bin")
	kf := cipher.KeyFile{Path: path}

	first, err := kf.LoadOrCreate()
	require.NoError(t, err)
	assert.Len(t, first, cipher.KeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := kf.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second, "key must not rotate once persisted")
}

func TestKeyFile_WrongSize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aes_key.bin")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := cipher.KeyFile{Path: path}.LoadOrCreate()
	assert.ErrorIs(t, err, cipher.ErrInvalidKeyFile)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data, "existing file must be left alone")
}

func TestKeyFile_EncryptAcrossLoads(t *testing.T) {
	t.Parallel()

	kf := cipher.KeyFile{Path: filepath.Join(t.TempDir(), "k.bin")}

	key, err := kf.LoadOrCreate()
	require.NoError(t, err)
	c1, err := cipher.New(key)
	require.NoError(t, err)

	blob, err := c1.EncryptString("survives restarts")
	require.NoError(t, err)

	key, err = kf.LoadOrCreate()
	require.NoError(t, err)
	c2, err := cipher.New(key)
	require.NoError(t, err)

	got, err := c2.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "survives restarts", got)
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a, err := cipher.GenerateKey()
	require.NoError(t, err)
	b, err := cipher.GenerateKey()
	require.NoError(t, err)

	assert.Len(t, a, cipher.KeySize)
	assert.NotEqual(t, a, b)
}
