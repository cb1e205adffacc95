package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/studio-autostop/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckProgressKeepsResultAndQuits(t *testing.T) {
	checkErr := errors.New("jupyter server unavailable")
	progress := newCheckProgress(context.Background(), func(context.Context) (application.Report, error) {
		return application.Report{RunID: "run-7"}, checkErr
	})
	assert.Contains(t, progress.View(), "Checking space activity")

	msg := progress.run()
	next, cmd := progress.Update(msg)
	require.NotNil(t, cmd)

	final, ok := next.(checkProgress)
	require.True(t, ok)
	assert.True(t, final.done)
	assert.Empty(t, final.View())
	assert.Equal(t, "run-7", final.result.report.RunID)
	assert.ErrorIs(t, final.result.err, checkErr)
}
