package stage

import (
	"github.com/abhisek/questline/internal/service"
)

// progressResultMsg is sent when a progress submission round-trips through
// the session service.
type progressResultMsg struct {
	Out *service.ProgressOutcome
	Err error
}
