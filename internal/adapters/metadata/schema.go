package metadata

import "github.com/bnema/studio-autostop/internal/domain"

// resourceMetadata mirrors the fields of resource-metadata.json this tool
// needs. The file carries more (ResourceArn, ExecutionRoleArn, ...).
type resourceMetadata struct {
	DomainID     string `json:"DomainId"`
	SpaceName    string `json:"SpaceName"`
	AppType      string `json:"AppType"`
	ResourceName string `json:"ResourceName"`
	ResourceArn  string `json:"ResourceArn,omitempty"`
	UserProfile  string `json:"UserProfileName,omitempty"`
}

func (m resourceMetadata) toDomain() domain.Identity {
	return domain.Identity{
		DomainID:  m.DomainID,
		SpaceName: m.SpaceName,
		AppType:   m.AppType,
		AppName:   m.ResourceName,
	}
}
