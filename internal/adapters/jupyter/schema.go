package jupyter

import (
	"encoding/json"

	"github.com/bnema/studio-autostop/internal/domain"
)

type sessionPayload struct {
	ID     string         `json:"id"`
	Path   string         `json:"path"`
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Kernel *kernelPayload `json:"kernel"`
}

type kernelPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastActivity   string `json:"last_activity"`
	ExecutionState string `json:"execution_state"`
	Connections    int    `json:"connections"`
}

type terminalPayload struct {
	Name         string `json:"name"`
	LastActivity string `json:"last_activity"`
}

type contentsPayload struct {
	Name         string          `json:"name"`
	Path         string          `json:"path"`
	Type         string          `json:"type"`
	LastModified string          `json:"last_modified"`
	Content      json.RawMessage `json:"content"`
}

// A session without a kernel keeps an empty execution state, which the
// evaluator treats as not idle.
func (p sessionPayload) toDomain() domain.Session {
	session := domain.Session{ID: p.ID, Path: p.Path}
	if p.Kernel == nil {
		return session
	}

	session.Kernel = domain.Kernel{
		ID:             p.Kernel.ID,
		Name:           p.Kernel.Name,
		ExecutionState: p.Kernel.ExecutionState,
		Connections:    p.Kernel.Connections,
		LastActivity:   domain.ActivityStamp(p.Kernel.LastActivity),
	}
	return session
}

func (p contentsPayload) toDomain() domain.FileRecord {
	record := domain.FileRecord{Path: p.Path, Type: p.Type}
	if modified, err := domain.ActivityStamp(p.LastModified).Time(); err == nil {
		record.ModTime = modified
	}
	return record
}
