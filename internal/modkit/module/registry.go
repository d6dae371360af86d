package module

import (
	"slices"
	"sync"
)

// process wide index of port bundles, filled while the API is mounted
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the bundle of the module called name, replacing any earlier one
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the bundle registered under name when it is a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists registered modules, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reset empties the registry; tests call it between mounts
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
