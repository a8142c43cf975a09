package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// AssetUnavailableError reports an icon whose bytes could not be loaded.
// Callers may log it and send the notification without that image; it never
// aborts the run.
type AssetUnavailableError struct {
	Icon IconID
	Err  error
}

func (e *AssetUnavailableError) Error() string {
	return fmt.Sprintf("icon asset %q unavailable: %v", e.Icon, e.Err)
}

func (e *AssetUnavailableError) Unwrap() error { return e.Err }

// Store loads icon bytes from a directory of PNG files named by icon id.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the PNG for the given icon.
func (s *Store) Load(icon IconID) ([]byte, error) {
	path := filepath.Join(s.dir, string(icon)+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetUnavailableError{Icon: icon, Err: err}
	}
	return data, nil
}
