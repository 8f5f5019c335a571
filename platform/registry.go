package platform

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps function names to handlers. Filled at startup, read per request.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]Function
}

func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]Function)}
}

// Register fails on an empty or already used name.
func (r *Registry) Register(fns ...Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fn := range fns {
		if fn.Name == "" || fn.invoke == nil {
			return fmt.Errorf("function must have a name and a handler")
		}
		if _, exists := r.functions[fn.Name]; exists {
			return fmt.Errorf("function %q already registered", fn.Name)
		}
		r.functions[fn.Name] = fn
	}
	return nil
}

func (r *Registry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.functions[name]
	return fn, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
