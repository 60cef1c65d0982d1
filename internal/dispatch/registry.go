package dispatch

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/questline/internal/engine"
	"github.com/abhisek/questline/internal/lesson"
)

// Hooks carries the two capability callbacks handed uniformly to every
// rendered block. Variant-specific behavior lives in each block's renderer,
// never here.
type Hooks struct {
	// Progress submits an advance event for the current stage.
	Progress func(ev engine.Event)

	// Complete tears the session down (registered by the surrounding app).
	Complete func()
}

// Renderer displays one resolved content block.
type Renderer interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Renderer, tea.Cmd)
	View(width int) string
}

// Factory builds a renderer for a block of the kind it was registered under.
type Factory func(b lesson.Block, hooks Hooks) Renderer

// Registry is a fixed mapping from block kind to renderer factory.
type Registry struct {
	factories map[lesson.BlockKind]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[lesson.BlockKind]Factory)}
}

// Register binds a factory to a block kind, replacing any previous binding.
func (r *Registry) Register(kind lesson.BlockKind, f Factory) {
	r.factories[kind] = f
}

// Resolve looks up the factory for a block kind.
func (r *Registry) Resolve(kind lesson.BlockKind) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}
