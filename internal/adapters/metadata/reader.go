package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/ports"
)

const DefaultPath = "/opt/ml/metadata/resource-metadata.json"

type Reader struct {
	path string
}

var _ ports.IdentityReader = (*Reader)(nil)

func NewReader(path string) *Reader {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &Reader{path: filepath.Clean(path)}
}

func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) Read(ctx context.Context) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Identity{}, fmt.Errorf("%w: metadata file %s not found", domain.ErrIdentityUnavailable, r.path)
		}
		return domain.Identity{}, fmt.Errorf("%w: read metadata file: %w", domain.ErrIdentityUnavailable, err)
	}

	var file resourceMetadata
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode metadata file %s: %w", domain.ErrIdentityUnavailable, r.path, err)
	}

	identity := file.toDomain()
	if err := identity.Validate(); err != nil {
		return domain.Identity{}, fmt.Errorf("metadata file %s: %w", r.path, err)
	}

	return identity, nil
}
