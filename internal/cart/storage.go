package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// StorageKey is the fixed key the cart is persisted under, matching the
// single-cart-per-profile model of browser local storage.
const StorageKey = "cart"

// Store is the persistence port for a cart.
type Store interface {
	Load() (Cart, error)
	Save(Cart) error
}

// FileStore keeps the cart as a JSON file inside a directory, one file per
// storage key. Loading a missing or corrupt file yields an empty cart, the
// same recovery a browser client gets from bad local storage.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.Dir, StorageKey+".json")
}

func (s *FileStore) Load() (Cart, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Cart{}, nil
		}
		return Cart{}, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, nil
	}
	return c, nil
}

func (s *FileStore) Save(c Cart) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}
