// SPDX-License-Identifier: EPL-2.0

package cipher

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// KeyFile provisions the persisted secret. The file holds exactly KeySize
// raw bytes.
type KeyFile struct {
	Path string
}

// LoadOrCreate returns the key stored at Path. When the file does not exist
// a new random key is written there first. A file of the wrong size is an
// error; it is never overwritten, because blobs made with it would become
// unreadable.
func (k KeyFile) LoadOrCreate() ([]byte, error) {
	key, err := os.ReadFile(k.Path)
	switch {
	case err == nil:
		if len(key) != KeySize {
			return nil, fmt.Errorf("%s: %w (%d bytes)", k.Path, ErrInvalidKeyFile, len(key))
		}
		return key, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w", err)
	}

	key, err = GenerateKey()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(k.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// O_EXCL: another process may have created it in the meantime
	f, err := os.OpenFile(k.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return k.LoadOrCreate()
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if _, err := f.Write(key); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing key: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return key, nil
}

// GenerateKey returns KeySize bytes from crypto/rand.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return key, nil
}
