package application

import (
	"time"

	"github.com/bnema/studio-autostop/internal/domain"
)

type Report struct {
	RunID       string
	CheckedAt   time.Time
	Identity    domain.Identity
	Policy      domain.Policy
	Idle        bool
	Signals     []domain.SignalResult
	Sessions    int
	Terminals   int
	Contents    int
	Terminated  bool
	Termination *domain.TerminationResult
}
