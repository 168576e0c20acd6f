package module

import (
	"slices"
	"sync"
)

// process wide port registry, filled once during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under a module name; a later call for the same name wins
func Register(name string, ports any) {
	if name == "" {
		panic("module: Register needs a name")
	}
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the ports registered under name asserted to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists the registered module names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Reset clears the registry; tests only
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
