package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-formatter/pkg/format"
)

// Store holds named entries and the formatters compiled from them. It is
// safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	origins  map[string]string
	compiled map[string]*format.Formatter
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries:  make(map[string]Entry),
		origins:  make(map[string]string),
		compiled: make(map[string]*format.Formatter),
	}
}

// Add registers an entry. origin names where it came from and is reported
// in duplicate errors.
func (s *Store) Add(name string, entry Entry, origin string) error {
	if name == "" {
		return errors.New("catalog: formatter name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.origins[name]; ok {
		return fmt.Errorf("%w: %q in %s, already defined in %s", ErrDuplicate, name, origin, prev)
	}
	s.entries[name] = entry
	s.origins[name] = origin
	return nil
}

// Names returns every catalog name, sorted. Presets are not included.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entry returns the entry registered under name.
func (s *Store) Entry(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[name]
	return entry, ok
}

// Origin returns the file that defined name.
func (s *Store) Origin(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.origins[name]
}

// Formatter compiles and caches the formatter registered under name. Names
// absent from the catalog resolve to the preset of the same name.
func (s *Store) Formatter(name string) (*format.Formatter, error) {
	s.mu.RLock()
	f, ok := s.compiled[name]
	entry, known := s.entries[name]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	var err error
	switch {
	case known:
		f, err = entry.Compile()
	default:
		if _, perr := format.Preset(name); perr != nil {
			return nil, s.unknown(name)
		}
		f, err = format.New(name)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: compile %q: %w", name, err)
	}

	s.mu.Lock()
	s.compiled[name] = f
	s.mu.Unlock()
	return f, nil
}

func (s *Store) unknown(name string) error {
	candidates := append(s.Names(), format.PresetNames()...)
	if hint := suggest(name, candidates); hint != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownFormatter, name, hint)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
}

// suggest returns the candidate closest to name, or "" when none is close
// enough to be a likely typo.
func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// LoadFS reads every catalog file under root in fsys, in lexical order.
// Files with other extensions are skipped.
func LoadFS(fsys fs.FS, root string) (*Store, error) {
	store := New()
	err := fs.WalkDir(fsys, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !Supported(name) {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", name, err)
		}
		return store.addFile(name, data)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load reads a catalog file, or every catalog file in a directory tree.
func Load(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path), ".")
	}
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func (s *Store) addFile(name string, data []byte) error {
	file, err := Decode(name, data)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(file.Formatters))
	for key := range file.Formatters {
		names = append(names, key)
	}
	sort.Strings(names)
	for _, key := range names {
		if err := s.Add(key, file.Formatters[key], name); err != nil {
			return err
		}
	}
	return nil
}
