package host

import "sync"

// Project is the active-project layer registry. Loaded layers are
// registered here in load order.
type Project struct {
	mu     sync.Mutex
	layers []*Layer
}

// NewProject creates an empty project.
func NewProject() *Project {
	return &Project{}
}

// AddLayer registers a layer with the project.
func (p *Project) AddLayer(l *Layer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layers = append(p.layers, l)
}

// Layers returns the registered layers in registration order.
func (p *Project) Layers() []*Layer {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Layer, len(p.layers))
	copy(out, p.layers)
	return out
}

// Count returns the number of registered layers.
func (p *Project) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.layers)
}
