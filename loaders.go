package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Loader retrieves a dictionary used to seed or extend a Translator.
type Loader interface {
	Load() (Dictionary, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() (Dictionary, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Dictionary, error) {
	return fn()
}

var (
	_ Loader = (*FileLoader)(nil)
	_ Loader = (*FSLoader)(nil)
	_ Loader = (LoaderFunc)(nil)
)

// FileLoader reads dictionary files from disk. JSON, YAML, and TOML are
// decoded by extension. A document whose every top level value is a map is
// read as a language keyed dictionary; anything else is one language's flat
// table, with the language taken from the file name stem ("es.yaml" feeds
// "es"). Files merge in the order given, later files winning per key.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Dictionary, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoPaths
	}

	dict := make(Dictionary)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("translate: read %s: %w", path, err)
		}

		src, err := decodeDictionary(path, data)
		if err != nil {
			return nil, fmt.Errorf("translate: decode %s: %w", path, err)
		}
		mergeDictionary(dict, src)
	}
	return dict, nil
}

// FSLoader reads dictionary files matching glob patterns from an fs.FS,
// which makes embedded locale directories loadable. Matched files decode
// exactly like FileLoader paths and merge in lexical path order.
type FSLoader struct {
	fsys     fs.FS
	patterns []string
}

// NewFSLoader builds a loader over fsys. Without explicit patterns it
// matches *.json, *.yaml, *.yml, and *.toml at the root of fsys.
func NewFSLoader(fsys fs.FS, patterns ...string) *FSLoader {
	return &FSLoader{fsys: fsys, patterns: append([]string(nil), patterns...)}
}

func (l *FSLoader) Load() (Dictionary, error) {
	if l == nil || l.fsys == nil {
		return nil, ErrNoPaths
	}

	patterns := l.patterns
	if len(patterns) == 0 {
		patterns = []string{"*.json", "*.yaml", "*.yml", "*.toml"}
	}

	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(l.fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("translate: glob %s: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}
	sort.Strings(paths)

	dict := make(Dictionary)
	for _, path := range paths {
		data, err := fs.ReadFile(l.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("translate: read %s: %w", path, err)
		}

		src, err := decodeDictionary(path, data)
		if err != nil {
			return nil, fmt.Errorf("translate: decode %s: %w", path, err)
		}
		mergeDictionary(dict, src)
	}
	return dict, nil
}

func decodeDictionary(path string, data []byte) (Dictionary, error) {
	var nested map[string]Table
	if err := unmarshalAs(path, data, &nested); err == nil {
		return Dictionary(nested), nil
	} else if errors.Is(err, ErrUnsupportedFormat) {
		return nil, err
	}

	var flat Table
	if err := unmarshalAs(path, data, &flat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	return Dictionary{languageFromPath(path): flat}, nil
}

func unmarshalAs(path string, data []byte, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// languageFromPath derives the language code for flat documents from the
// file name stem.
func languageFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mergeDictionary overlays src's language tables onto dst, key by key.
func mergeDictionary(dst, src Dictionary) {
	for code, table := range src {
		existing, ok := dst[code]
		if !ok {
			existing = make(Table, len(table))
			dst[code] = existing
		}
		for key, value := range table {
			existing[key] = value
		}
	}
}
