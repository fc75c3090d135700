package testutil

import (
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/app"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/stretchr/testify/require"
)

// RequireValid fails the test unless the run committed an ability.
func RequireValid(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NoError(t, result.Err, "report:\n%s", result.Output)
	require.NotNil(t, result.App.Ability())
}

// RequireCodes fails the test unless the run was rejected by validation
// with exactly the given diagnostic codes, in order.
func RequireCodes(t *testing.T, result *HarnessResult, want ...diag.Code) {
	t.Helper()
	require.ErrorIs(t, result.Err, app.ErrInvalidAbility)
	rep := result.App.Report()
	require.NotNil(t, rep)

	got := make([]diag.Code, 0, len(rep.Diagnostics))
	for _, d := range rep.Diagnostics {
		got = append(got, diag.Code(d.Code))
	}
	require.Equal(t, want, got, "report:\n%s", result.Output)
}
