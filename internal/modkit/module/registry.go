package module

import "sync"

// the registry holds every mounted module's ports by name for the life of the process
var registry sync.Map

// Register records ports under a module name, replacing any earlier entry
func Register(name string, ports any) { registry.Store(name, ports) }

// PortsAs returns the ports registered under name as T
func PortsAs[T any](name string) (T, bool) {
	var zero T
	v, ok := registry.Load(name)
	if !ok {
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset forgets every registration
func Reset() { registry.Clear() }
