package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen   Screen
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing onto screen
func NewOrchestrator(screen Screen) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all visible layers, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()
	canvas := NewCanvas(o.screen)
	canvas.Fill(StyleDefault)

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, canvas)
	}

	o.screen.Show()
}

// LayerCount returns the number of registered layers
func (o *Orchestrator) LayerCount() int {
	return len(o.layers)
}
