package ports

import (
	"context"

	"github.com/bnema/studio-autostop/internal/domain"
)

type IdentityReader interface {
	Read(ctx context.Context) (domain.Identity, error)
}
