// Package store persists the library as an indented JSON array in a single
// document on disk. The document is read and written wholesale; there are no
// incremental updates and no locking, so concurrent writers can overwrite
// each other. That matches the single-user contract of the tool.
package store

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"github.com/dmoreno/shelfkeeper/internal/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store reads and writes the library document at a fixed path. All disk
// access goes through an afero filesystem so tests can run against an
// in-memory one.
type Store struct {
	fs   afero.Fs
	path string
}

func New(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the library document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document and parses it into a library. A missing
// document is not an error: it yields an empty library, the state of a
// catalog nobody has written to yet. A document that exists but does not
// parse as a JSON array of books fails with a *CorruptStoreError; any other
// read failure surfaces as a *StorageError.
//
// Parsing is structural only: unknown fields are ignored and absent fields
// take their zero values, as the original document format never carried a
// schema version to check against.
func (s *Store) Load() (library.Library, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return library.Library{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	var lib library.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return lib, nil
}

// Save serializes the whole library and replaces the persisted document.
// The write goes to a temporary file first and is moved into place with a
// rename, so a crash mid-write leaves the previous document intact.
func (s *Store) Save(lib library.Library) error {
	if lib == nil {
		lib = library.Library{}
	}
	data, err := json.MarshalIndent(lib, "", "    ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return &StorageError{Op: "write", Path: tmp, Err: err}
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return &StorageError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}
