package domain

import (
	"fmt"
	"strings"
)

type Identity struct {
	DomainID  string
	SpaceName string
	AppType   string
	AppName   string
}

func (i Identity) Validate() error {
	missing := make([]string, 0, 4)
	for _, field := range []struct {
		name  string
		value string
	}{
		{"DomainId", i.DomainID},
		{"SpaceName", i.SpaceName},
		{"AppType", i.AppType},
		{"ResourceName", i.AppName},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIdentityUnavailable, strings.Join(missing, ", "))
	}

	return nil
}

type TerminationResult struct {
	RequestID string
	Identity  Identity
	Region    string
}
