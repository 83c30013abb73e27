package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
)

var (
	// ErrDuplicateValue is returned when two catalog items share a value
	ErrDuplicateValue = errors.New("duplicate item value")
	// ErrMissingValue is returned for items without a value key
	ErrMissingValue = errors.New("item has no value")
	// ErrUnsupportedFormat is returned for files that are not YAML or TOML
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// maxDepth bounds directory walks
const maxDepth = 3

// file is the on-disk catalog layout shared by YAML and TOML
type file struct {
	Items []domain.Item `yaml:"items" toml:"items"`
}

// Loader reads item catalogs from YAML or TOML files
type Loader struct {
	bus eventbus.EventBus
	log *zap.Logger
}

// NewLoader creates a new catalog loader
func NewLoader(bus eventbus.EventBus) *Loader {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Loader{
		bus: bus,
		log: logging.Named("catalog"),
	}
}

// Load reads a catalog file, or every catalog file below a directory.
// Items keep file order; directories are read in lexical order.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	var items []domain.Item
	if info.IsDir() {
		items, err = l.loadDir(ctx, path)
	} else {
		items, err = ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(items); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	l.log.Info("Catalog loaded", zap.String("path", path), zap.Int("items", len(items)))
	l.bus.Publish(eventbus.CatalogLoadedEvent{Source: path, Count: len(items)})

	return items, nil
}

// loadDir walks root collecting items from every catalog file
func (l *Loader) loadDir(ctx context.Context, root string) ([]domain.Item, error) {
	var items []domain.Item

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			l.log.Warn("Error walking path", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			relPath, _ := filepath.Rel(root, path)
			depth := strings.Count(relPath, string(filepath.Separator))
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			// Skip hidden directories
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsCatalogFile(path) {
			return nil
		}

		fileItems, err := ReadFile(path)
		if err != nil {
			return err
		}
		items = append(items, fileItems...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog directory %s: %w", root, err)
	}

	return items, nil
}

// IsCatalogFile reports whether path has a YAML or TOML extension
func IsCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

// ReadFile decodes a single catalog file
func ReadFile(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return f.Items, nil
}

// WriteFile encodes items to path, choosing the format from the extension
func WriteFile(path string, items []domain.Item) error {
	f := file{Items: items}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	case ".toml":
		data, err = toml.Marshal(f)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// Validate checks that every item has a value and values are unique
func Validate(items []domain.Item) error {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.Value == "" {
			return fmt.Errorf("%w: entry %d (%q)", ErrMissingValue, i, item.Name)
		}
		if seen[item.Value] {
			return fmt.Errorf("%w: %q", ErrDuplicateValue, item.Value)
		}
		seen[item.Value] = true
	}
	return nil
}
