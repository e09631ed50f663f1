package render

import "github.com/gdamore/tcell/v2"

// RenderPriority orders layers, lower draws first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PrioritySky
	PrioritySea
	PriorityEntities
	PriorityParticle
	PriorityUI
	PriorityOverlay
	PriorityDebug
)

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a layer switch itself off at runtime
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard layer stack
func NewDefaultOrchestrator(screen tcell.Screen, debug *DebugRenderer) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(NewSkyRenderer(), PrioritySky)
	o.Register(NewSeaRenderer(), PrioritySea)
	o.Register(NewEntityRenderer(), PriorityEntities)
	o.Register(NewParticleRenderer(), PriorityParticle)
	o.Register(NewHUDRenderer(), PriorityUI)
	o.Register(NewOverlayRenderer(), PriorityOverlay)
	if debug != nil {
		o.Register(debug, PriorityDebug)
	}
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Size returns the buffer dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Width(), o.buffer.Height()
}

// Buffer exposes the composited frame for inspection
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear(RGBBlack)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
