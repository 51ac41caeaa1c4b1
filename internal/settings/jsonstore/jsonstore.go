// Package jsonstore implements settings.Store backed by a single JSON file.
//
// The file is a top-level object whose values are objects: service names map
// to item/value pairs. It is written pretty-printed with 4-space indentation;
// json.Marshal on maps produces alphabetical key ordering, making the output
// deterministic and diff-friendly.
//
// Loading is fail-safe: a missing file yields an empty store, and a file that
// is invalid JSON or not an object-of-objects is discarded wholesale to an
// empty store rather than surfacing an error. Writes are the opposite: every
// mutation persists immediately and any I/O failure is returned to the
// caller. The store assumes a single writer per path; concurrent processes
// race with last-writer-wins, bounded by atomic renames.
package jsonstore

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dworshak-config/internal/settings"
)

// Store implements settings.Store using a JSON file on disk.
type Store struct {
	path  string
	data  map[string]map[string]any
	state settings.LoadState
}

// New creates a Store that reads from and writes to path. If the file exists
// and parses as an object-of-objects it is adopted; if it does not exist, or
// exists but is corrupted, the store starts empty. Only a file that exists
// but cannot be read (e.g. permissions) is an error.
func New(path string) (*Store, error) {
	s := &Store{
		path:  path,
		data:  make(map[string]map[string]any),
		state: settings.LoadedOK,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = settings.LoadedEmpty
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	doc, ok := decodeDocument(raw)
	if !ok {
		s.state = settings.LoadedCorrupt
		return s, nil
	}
	s.data = doc
	return s, nil
}

// decodeDocument parses raw as a service → item → value mapping. Returns
// false if the bytes are not valid JSON or the shape is not an
// object-of-objects.
func decodeDocument(raw []byte) (map[string]map[string]any, bool) {
	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, false
	}
	doc := make(map[string]map[string]any, len(top))
	for service, v := range top {
		items, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		doc[service] = items
	}
	return doc, true
}

// Get returns the value for service/item and whether it was found.
func (s *Store) Get(service, item string) (any, bool) {
	items, ok := s.data[service]
	if !ok {
		return nil, false
	}
	v, ok := items[item]
	return v, ok
}

// Set stores a value at service/item and persists to disk. With
// opts.SkipIfExists, an existing entry is left untouched and nothing is
// written.
func (s *Store) Set(service, item string, value any, opts settings.SetOptions) error {
	if err := validateKeys(service, item); err != nil {
		return err
	}
	// Reject unserializable values before mutating anything.
	if _, err := json.Marshal(value); err != nil {
		return fmt.Errorf("value for %s/%s is not JSON-serializable: %w", service, item, err)
	}

	if opts.SkipIfExists {
		if _, exists := s.Get(service, item); exists {
			return nil
		}
	}

	if s.data[service] == nil {
		s.data[service] = make(map[string]any)
	}
	s.data[service][item] = value
	return s.persist()
}

// Unset removes service/item and persists to disk. Empty service mappings
// are pruned. Returns false without touching the file when the entry does
// not exist.
func (s *Store) Unset(service, item string) (bool, error) {
	if err := validateKeys(service, item); err != nil {
		return false, err
	}
	items, ok := s.data[service]
	if !ok {
		return false, nil
	}
	if _, ok := items[item]; !ok {
		return false, nil
	}
	delete(items, item)
	if len(items) == 0 {
		delete(s.data, service)
	}
	if err := s.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// List returns all entries sorted by service, then item.
func (s *Store) List() []settings.Entry {
	var entries []settings.Entry
	for service, items := range s.data {
		for item, value := range items {
			entries = append(entries, settings.Entry{Service: service, Item: item, Value: value})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Service != entries[j].Service {
			return entries[i].Service < entries[j].Service
		}
		return entries[i].Item < entries[j].Item
	})
	return entries
}

// All returns a copy of the full nested document.
func (s *Store) All() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.data))
	for service, items := range s.data {
		dst := make(map[string]any, len(items))
		for item, value := range items {
			dst[item] = value
		}
		out[service] = dst
	}
	return out
}

// Replace merges data into the store and persists once at the end. With
// opts.SkipIfExists, entries that already hold a value are left untouched.
func (s *Store) Replace(data map[string]map[string]any, opts settings.SetOptions) error {
	for service, items := range data {
		for item, value := range items {
			if err := validateKeys(service, item); err != nil {
				return err
			}
			if _, err := json.Marshal(value); err != nil {
				return fmt.Errorf("value for %s/%s is not JSON-serializable: %w", service, item, err)
			}
		}
	}

	for service, items := range data {
		for item, value := range items {
			if opts.SkipIfExists {
				if _, exists := s.Get(service, item); exists {
					continue
				}
			}
			if s.data[service] == nil {
				s.data[service] = make(map[string]any)
			}
			s.data[service][item] = value
		}
	}
	return s.persist()
}

// Save persists the current document to disk.
func (s *Store) Save() error {
	return s.persist()
}

// Path returns the resolved location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// State reports how the document was loaded at construction.
func (s *Store) State() settings.LoadState {
	return s.state
}

// persist writes the document as pretty-printed JSON, creating missing
// parent directories and replacing the target atomically.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	raw, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return atomicWrite(s.path, append(raw, '\n'))
}

// validateKeys checks that both keys are non-empty.
func validateKeys(service, item string) error {
	if service == "" || item == "" {
		return fmt.Errorf("%s/%s: %w", service, item, settings.ErrEmptyKey)
	}
	return nil
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

// Compile-time check that Store implements settings.Store.
var _ settings.Store = (*Store)(nil)
