package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/ports/mocks"
	"github.com/bnema/studio-autostop/internal/version"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cliNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

var testIdentity = domain.Identity{
	DomainID:  "d-abc123",
	SpaceName: "research",
	AppType:   "JupyterLab",
	AppName:   "default",
}

type jupyterFixture struct {
	sessions  string
	terminals string
}

func idleKernelFixture() jupyterFixture {
	return jupyterFixture{
		sessions: fmt.Sprintf(`[{"id":"s-1","path":"train.ipynb","kernel":{"id":"k-1","name":"python3","execution_state":"idle","connections":0,"last_activity":%q}}]`,
			domain.StampFromTime(cliNow.Add(-2*time.Hour))),
		terminals: `[]`,
	}
}

func busyKernelFixture() jupyterFixture {
	return jupyterFixture{
		sessions: fmt.Sprintf(`[{"id":"s-1","path":"train.ipynb","kernel":{"id":"k-1","name":"python3","execution_state":"busy","connections":1,"last_activity":%q}}]`,
			domain.StampFromTime(cliNow.Add(-time.Minute))),
		terminals: `[]`,
	}
}

// setupSpace points every adapter at test fixtures through the environment.
func setupSpace(t *testing.T, fixture jupyterFixture) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/jupyterlab/default/api/sessions":
			_, _ = fmt.Fprint(w, fixture.sessions)
		case "/jupyterlab/default/api/terminals":
			_, _ = fmt.Fprint(w, fixture.terminals)
		case "/jupyterlab/default/api/contents":
			_, _ = fmt.Fprint(w, `{"name":"","path":"","type":"directory","content":[{"name":"train.ipynb","path":"train.ipynb","type":"notebook"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	metadataPath := filepath.Join(dir, "resource-metadata.json")
	require.NoError(t, os.WriteFile(metadataPath, []byte(`{"DomainId":"d-abc123","SpaceName":"research","AppType":"JupyterLab","ResourceName":"default"}`), 0o644))

	workspace := filepath.Join(dir, "workspace")
	require.NoError(t, os.MkdirAll(workspace, 0o755))

	isolateConfig(t, dir)
	t.Setenv("AUTOSTOP_JUPYTER_URL", server.URL+"/jupyterlab/default")
	t.Setenv("AUTOSTOP_METADATA_PATH", metadataPath)
	t.Setenv("AUTOSTOP_ACTIVITY_ROOT", workspace)
}

func isolateConfig(t *testing.T, dir string) {
	t.Helper()

	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("AUTOSTOP_CONFIG", "")
	t.Setenv("AUTOSTOP_LOG_FORMAT", "json")
	t.Chdir(dir)
}

func testWiring(terminator *mocks.MockAppTerminator) wiring {
	mockClock := clock.NewMock()
	mockClock.Set(cliNow)

	return wiring{
		terminator: terminator,
		clock:      mockClock,
		runIDs:     func() string { return "run-test" },
	}
}

func executeCLI(t *testing.T, w wiring, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmdWith(w)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMissingThresholdExitsWithCode2(t *testing.T) {
	isolateConfig(t, t.TempDir())

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingThreshold)
	assert.Contains(t, err.Error(), "set -t or --time")
	assert.Equal(t, 2, ExitCode(err))
}

func TestZeroThresholdIsMissing(t *testing.T) {
	isolateConfig(t, t.TempDir())

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "--time", "0")
	assert.Equal(t, 2, ExitCode(err))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	isolateConfig(t, t.TempDir())

	_, stderr, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "--bogus")
	require.Error(t, err)

	var usageErr *usageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Contains(t, stderr, "Usage:")
	assert.Equal(t, 1, ExitCode(err))
}

func TestNonNumericTimeIsUsageError(t *testing.T) {
	isolateConfig(t, t.TempDir())

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "-t", "soon")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestHelpExitsZero(t *testing.T) {
	isolateConfig(t, t.TempDir())

	stdout, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "-h")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--ignore-connections")
	assert.Contains(t, stdout, "--time")
	assert.Equal(t, 0, ExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t, t.TempDir())

	stdout, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestRootTerminatesIdleSpace(t *testing.T) {
	setupSpace(t, idleKernelFixture())

	terminator := mocks.NewMockAppTerminator(t)
	terminator.EXPECT().
		Terminate(mock.Anything, testIdentity, "eu-west-1").
		Return(domain.TerminationResult{RequestID: "req-42", Identity: testIdentity, Region: "eu-west-1"}, nil).
		Once()

	_, stderr, err := executeCLI(t, testWiring(terminator), "--time", "3600", "--region", "eu-west-1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "initiating shutdown")
	assert.Contains(t, stderr, `"request_id":"req-42"`)
	assert.Contains(t, stderr, `"run_id":"run-test"`)
}

func TestRootLeavesBusySpaceRunning(t *testing.T) {
	setupSpace(t, busyKernelFixture())

	terminator := mocks.NewMockAppTerminator(t)

	_, stderr, err := executeCLI(t, testWiring(terminator), "-t", "3600")
	require.NoError(t, err)
	assert.Contains(t, stderr, "space not idle, pass")
	terminator.AssertNotCalled(t, "Terminate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRootIgnoreConnectionsStillRespectsBusyKernel(t *testing.T) {
	setupSpace(t, busyKernelFixture())

	terminator := mocks.NewMockAppTerminator(t)

	_, _, err := executeCLI(t, testWiring(terminator), "-t", "3600", "-c")
	require.NoError(t, err)
	terminator.AssertNotCalled(t, "Terminate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRootTerminationFailureExitsWithCode1(t *testing.T) {
	setupSpace(t, idleKernelFixture())

	terminator := mocks.NewMockAppTerminator(t)
	terminator.EXPECT().
		Terminate(mock.Anything, testIdentity, "").
		Return(domain.TerminationResult{}, errors.New("access denied")).
		Once()

	_, stderr, err := executeCLI(t, testWiring(terminator), "-t", "3600")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTerminationFailed)
	assert.Contains(t, stderr, "shutdown failed")
	assert.Equal(t, 1, ExitCode(err))
}

func TestRootMissingMetadataAbortsBeforeEvaluation(t *testing.T) {
	setupSpace(t, idleKernelFixture())
	t.Setenv("AUTOSTOP_METADATA_PATH", filepath.Join(t.TempDir(), "missing.json"))

	terminator := mocks.NewMockAppTerminator(t)

	_, _, err := executeCLI(t, testWiring(terminator), "-t", "3600")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIdentityUnavailable)
	assert.Equal(t, 1, ExitCode(err))
}

func TestRootJupyterUnavailable(t *testing.T) {
	setupSpace(t, idleKernelFixture())
	t.Setenv("AUTOSTOP_JUPYTER_URL", "http://127.0.0.1:1/jupyterlab/default")

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "-t", "3600")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInspectorUnavailable)
}

func TestStatusJSONNeverTerminates(t *testing.T) {
	setupSpace(t, idleKernelFixture())

	terminator := mocks.NewMockAppTerminator(t)

	stdout, _, err := executeCLI(t, testWiring(terminator), "status", "-t", "3600", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, true, doc["idle"])
	assert.Equal(t, false, doc["terminated"])
	assert.Equal(t, "run-test", doc["run_id"])
	assert.Equal(t, float64(1), doc["sessions"])
	assert.Equal(t, float64(1), doc["contents"])
	terminator.AssertNotCalled(t, "Terminate", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatusTOMLReportsDecidingSource(t *testing.T) {
	setupSpace(t, busyKernelFixture())

	stdout, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "status", "-t", "3600", "-f", "toml")
	require.NoError(t, err)

	var doc struct {
		Idle      bool   `toml:"idle"`
		DecidedBy string `toml:"decided_by"`
		Identity  struct {
			SpaceName string `toml:"space_name"`
		} `toml:"identity"`
	}
	require.NoError(t, toml.Unmarshal([]byte(stdout), &doc))
	assert.False(t, doc.Idle)
	assert.Equal(t, "kernels", doc.DecidedBy)
	assert.Equal(t, "research", doc.Identity.SpaceName)
}

func TestStatusTextReport(t *testing.T) {
	setupSpace(t, busyKernelFixture())

	stdout, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "status", "--time", "3600")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Space idleness check")
	assert.Contains(t, stdout, "verdict: NOT IDLE")
}

func TestStatusRejectsUnknownFormat(t *testing.T) {
	isolateConfig(t, t.TempDir())

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)), "status", "-t", "60", "--format", "yaml")
	require.Error(t, err)

	var usageErr *usageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Equal(t, 1, ExitCode(err))
}

func TestConfigFileSuppliesThreshold(t *testing.T) {
	setupSpace(t, busyKernelFixture())
	require.NoError(t, os.WriteFile("autostop.toml", []byte("time = 3600\n"), 0o644))

	_, _, err := executeCLI(t, testWiring(mocks.NewMockAppTerminator(t)))
	require.NoError(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("wrap: %w", domain.ErrMissingThreshold)))
	assert.Equal(t, 1, ExitCode(context.Canceled))
}
