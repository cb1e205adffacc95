package ports

import (
	"context"

	"github.com/bnema/studio-autostop/internal/domain"
)

// FileScanner visits files under a root until visit returns false.
type FileScanner interface {
	Scan(ctx context.Context, visit func(domain.FileRecord) bool) error
}
