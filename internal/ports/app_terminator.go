package ports

import (
	"context"

	"github.com/bnema/studio-autostop/internal/domain"
)

type AppTerminator interface {
	Terminate(ctx context.Context, identity domain.Identity, region string) (domain.TerminationResult, error)
}
