package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetadata(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resource-metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderReadsIdentity(t *testing.T) {
	path := writeMetadata(t, `{
		"AppType": "JupyterLab",
		"DomainId": "d-abc123",
		"SpaceName": "data-science",
		"UserProfileName": "",
		"ExecutionRoleArn": "arn:aws:iam::111122223333:role/studio",
		"ResourceArn": "arn:aws:sagemaker:us-east-1:111122223333:app/d-abc123/data-science/jupyterlab/default",
		"ResourceName": "default",
		"AppImageVersion": ""
	}`)

	identity, err := NewReader(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{
		DomainID:  "d-abc123",
		SpaceName: "data-science",
		AppType:   "JupyterLab",
		AppName:   "default",
	}, identity)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.json")).Read(context.Background())
	require.ErrorIs(t, err, domain.ErrIdentityUnavailable)
	assert.ErrorContains(t, err, "not found")
}

func TestReaderMalformedJSON(t *testing.T) {
	path := writeMetadata(t, `{"DomainId":`)

	_, err := NewReader(path).Read(context.Background())
	require.ErrorIs(t, err, domain.ErrIdentityUnavailable)
	assert.ErrorContains(t, err, "decode metadata file")
}

func TestReaderMissingFields(t *testing.T) {
	path := writeMetadata(t, `{"DomainId":"d-abc123","AppType":"JupyterLab"}`)

	_, err := NewReader(path).Read(context.Background())
	require.ErrorIs(t, err, domain.ErrIdentityUnavailable)
	assert.ErrorContains(t, err, "missing SpaceName, ResourceName")
}

func TestReaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(writeMetadata(t, `{}`)).Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewReaderDefaultsPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewReader(" ").Path())
}
