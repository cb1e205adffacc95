package ports

import (
	"context"

	"github.com/bnema/studio-autostop/internal/domain"
)

type SessionInspector interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	ListTerminals(ctx context.Context) ([]domain.Terminal, error)
	ListContents(ctx context.Context) ([]domain.FileRecord, error)
}
