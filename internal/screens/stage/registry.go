package stage

import (
	"github.com/abhisek/questline/internal/dispatch"
	"github.com/abhisek/questline/internal/lesson"
)

// newRegistry binds every recognized block kind to its renderer factory.
// Unknown kinds stay unbound on purpose; the dispatcher skips them.
func newRegistry() *dispatch.Registry {
	r := dispatch.NewRegistry()
	r.Register(lesson.KindExplainer, newExplainer)
	r.Register(lesson.KindBossBattle, newBossBattle)
	r.Register(lesson.KindLevelMap, newLevelMap)
	r.Register(lesson.KindVictory, newVictory)
	return r
}
