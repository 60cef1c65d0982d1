// Package dispatch translates a stage's ordered block list into renderer
// invocations, so the progression engine never has to know about
// presentation types.
package dispatch

import (
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/lesson"
)

// UnknownBlockWarning records a block whose type tag no renderer claims.
// Unknown blocks are skipped; the rest of the stage still renders.
type UnknownBlockWarning struct {
	StageNumber int
	TypeTag     string
}

// Dispatcher resolves blocks against a registry and builds their renderers.
type Dispatcher struct {
	registry *Registry
	log      *zap.Logger

	// summarize supplies a fresh stats snapshot for victory blocks, so the
	// displayed numbers are current at render time rather than whatever was
	// baked in at generation time.
	summarize func() lesson.StatsSnapshot
}

// New creates a dispatcher. log may be nil; summarize may be nil when no
// victory overlay is wanted (tests).
func New(registry *Registry, log *zap.Logger, summarize func() lesson.StatsSnapshot) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{registry: registry, log: log, summarize: summarize}
}

// Render resolves every block of the stage in order. Unknown block kinds
// are collected as warnings and logged, never raised.
func (d *Dispatcher) Render(stage *lesson.Stage, hooks Hooks) ([]Renderer, []UnknownBlockWarning) {
	var renderers []Renderer
	var warnings []UnknownBlockWarning

	for _, b := range stage.Blocks {
		f, ok := d.registry.Resolve(b.Kind)
		if !ok {
			tag := b.RawKind
			if tag == "" {
				tag = string(b.Kind)
			}
			warnings = append(warnings, UnknownBlockWarning{StageNumber: stage.Number, TypeTag: tag})
			d.log.Warn("skipping unknown content block",
				zap.Int("stage", stage.Number),
				zap.String("type", tag),
			)
			continue
		}

		renderers = append(renderers, f(d.overlay(b), hooks))
	}

	return renderers, warnings
}

// overlay returns the block to hand to the factory. Victory blocks get a
// copy carrying the freshly computed stats snapshot; everything else passes
// through untouched. The session-owned block is never mutated.
func (d *Dispatcher) overlay(b lesson.Block) lesson.Block {
	if b.Kind != lesson.KindVictory || b.Victory == nil || d.summarize == nil {
		return b
	}
	v := *b.Victory
	snap := d.summarize()
	v.Stats = &snap
	return lesson.Block{Kind: lesson.KindVictory, Victory: &v}
}
