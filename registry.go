package w8r

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry holds named wait profiles. Reads go through an atomic
// pointer so probe call sites never contend with a harness that is
// still loading configuration.
//
// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe
// lazy init; explicit registries can be created for testing or for
// suites with independent configs.
type Registry struct {
	profiles atomic.Pointer[map[string]ProfileConfig]
	mu       sync.Mutex
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := map[string]ProfileConfig{}
	r.profiles.Store(&empty)

	return r
}

// DefaultRegistry returns the package-level global registry, creating
// it on first call.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// SetProfile adds or replaces a named profile. It is safe for
// concurrent use but intended for initialization only.
func (r *Registry) SetProfile(name string, pc ProfileConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.profiles.Load()
	// Copy-on-write so concurrent readers never observe a map being
	// mutated.
	updated := make(map[string]ProfileConfig, len(old)+1)
	for k, v := range old {
		updated[k] = v
	}

	updated[name] = pc
	r.profiles.Store(&updated)
}

// replace swaps the whole profile set, used by LoadConfig.
func (r *Registry) replace(profiles map[string]ProfileConfig) {
	if profiles == nil {
		profiles = map[string]ProfileConfig{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles.Store(&profiles)
}

// Profile returns the named profile and whether it exists.
func (r *Registry) Profile(name string) (ProfileConfig, bool) {
	pc, ok := (*r.profiles.Load())[name]

	return pc, ok
}

// Names returns the registered profile names in sorted order.
func (r *Registry) Names() []string {
	m := *r.profiles.Load()

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Options builds the wait options for the named profile.
func (r *Registry) Options(name string) ([]Option, error) {
	pc, ok := r.Profile(name)
	if !ok {
		return nil, fmt.Errorf("w8r: unknown profile %q", name)
	}

	return BuildOptions(&pc)
}
