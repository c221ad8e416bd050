package engine

// System is an auxiliary subsystem updated once per turn (farm growth,
// quest timers, and similar host-owned state).
type System interface {
	Update()
}

// Registry is a named lookup of auxiliary systems. The host owns its
// lifecycle: built once at startup, passed explicitly into each turn, and
// torn down at shutdown. There is no ambient global registry.
type Registry struct {
	names   []string
	systems map[string]System
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{systems: make(map[string]System)}
}

// Register adds a system under a name. Re-registering a name replaces the
// system but keeps its original update position.
func (r *Registry) Register(name string, s System) {
	if _, ok := r.systems[name]; !ok {
		r.names = append(r.names, name)
	}
	r.systems[name] = s
}

// System returns the system registered under the name.
func (r *Registry) System(name string) (System, bool) {
	s, ok := r.systems[name]
	return s, ok
}

// Update runs every system once, in registration order.
func (r *Registry) Update() {
	for _, name := range r.names {
		r.systems[name].Update()
	}
}
