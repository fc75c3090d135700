// Package testutil provides the harness used by end-to-end tests: it writes
// ability files to a temporary directory and runs the full application over
// them.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/app"
	"github.com/specialistvlad/abilitygraph/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest writes files (relative path to content) under a fresh
// temporary directory and runs the app over it with a background context.
func RunIntegrationTest(t *testing.T, files map[string]string, reportFormat string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, reportFormat)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, reportFormat string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig, err := app.NewConfig(app.Config{
		Paths:        []string{tmpDir},
		LogLevel:     "debug",
		LogFormat:    "text",
		ReportFormat: reportFormat,
	})
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp := app.NewApp(out, logs, appConfig, hcl_adapter.NewLoader())
	runErr := testApp.Run(ctx)

	if os.Getenv("ABILITYGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}

// RunHCLAbilityTest runs a single ability file through the app and returns
// the text report.
func RunHCLAbilityTest(t *testing.T, abilityHCL string) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"ability/main.hcl": abilityHCL}, "text")
}
