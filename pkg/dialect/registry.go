package dialect

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
)

var (
	mu       sync.RWMutex
	dialects = make(map[string]*Dialect)
)

// Get returns a registered dialect by name (case-insensitive).
func Get(name string) (*Dialect, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// List returns every registered dialect name, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds d to the registry unconditionally, keyed by its
// lower-cased name, warning instead of failing when a name is already
// taken. Intended for use from a builtin's init() function, where there
// is no caller to hand an error back to.
func Register(d *Dialect) {
	mu.Lock()
	defer mu.Unlock()
	key := strings.ToLower(d.Name)
	if _, exists := dialects[key]; exists {
		slog.Warn("dialect re-registered, overwriting prior registration", "dialect", d.Name)
	}
	dialects[key] = d
}

// RegisterDialect is the plugin-contract entry point: it rejects d if
// its MinEngineVersion constraint is not satisfied by EngineVersion,
// covering the extensibility contract a third-party dialect plugin must
// honor before it can register itself into a running engine.
func RegisterDialect(d *Dialect) error {
	if d.Name == "" {
		return fmt.Errorf("dialect: name is required")
	}
	if d.MinEngineVersion != "" {
		constraint, err := semver.NewConstraint(d.MinEngineVersion)
		if err != nil {
			return fmt.Errorf("dialect %s: invalid MinEngineVersion %q: %w", d.Name, d.MinEngineVersion, err)
		}
		engine, err := semver.NewVersion(EngineVersion)
		if err != nil {
			return fmt.Errorf("dialect %s: invalid engine version %q: %w", d.Name, EngineVersion, err)
		}
		if !constraint.Check(engine) {
			return fmt.Errorf("dialect %s requires engine %s, running %s", d.Name, d.MinEngineVersion, EngineVersion)
		}
	}
	Register(d)
	return nil
}
