// Package settings defines the interface for the two-level settings store.
// Values are addressed by a service name (e.g. "aws") and an item key within
// that service (e.g. "region"), and persist as a nested JSON document.
package settings

// Store provides service/item access to persisted settings.
type Store interface {
	// Get returns the value for service/item and whether it was found.
	// Missing keys are never an error.
	Get(service, item string) (any, bool)

	// Set stores a value at service/item, creating the service mapping if
	// absent, and persists to disk. If opts.SkipIfExists is true and the
	// entry already holds a value, the call is a no-op.
	Set(service, item string, value any, opts SetOptions) error

	// Unset removes service/item and persists to disk. Returns whether an
	// entry was actually removed. A missing entry is not an error.
	Unset(service, item string) (bool, error)

	// List returns all entries sorted by service, then item.
	List() []Entry

	// All returns a copy of the full nested document.
	All() map[string]map[string]any

	// Replace merges an entire document into the store and persists once.
	// opts.SkipIfExists applies per entry.
	Replace(data map[string]map[string]any, opts SetOptions) error

	// Save persists the current document to disk. Saving twice with no
	// intervening mutation produces byte-identical files.
	Save() error

	// Path returns the resolved location of the backing file.
	Path() string

	// State reports how the document was loaded at construction.
	State() LoadState
}

// SetOptions controls Set behavior. The zero value overwrites.
type SetOptions struct {
	// SkipIfExists causes Set to leave an existing value untouched
	// instead of overwriting it.
	SkipIfExists bool
}

// Entry is one service/item row of the document.
type Entry struct {
	Service string `json:"service"`
	Item    string `json:"item"`
	Value   any    `json:"value"`
}

// LoadState distinguishes how a store came up. The get/set surface behaves
// identically in every state; this exists for diagnostics only.
type LoadState int

const (
	// LoadedOK means the backing file existed and parsed cleanly.
	LoadedOK LoadState = iota

	// LoadedEmpty means the backing file did not exist.
	LoadedEmpty

	// LoadedCorrupt means the backing file existed but was invalid JSON or
	// not an object-of-objects, and the store started empty.
	LoadedCorrupt
)

// String returns a short label for the load state.
func (s LoadState) String() string {
	switch s {
	case LoadedOK:
		return "ok"
	case LoadedEmpty:
		return "empty"
	case LoadedCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}
