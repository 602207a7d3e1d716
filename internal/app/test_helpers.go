package app

import (
	"os"
	"testing"

	hclconfig "github.com/specialistvlad/pkgopts/internal/hcl"
	"github.com/specialistvlad/pkgopts/internal/overrides"
	"github.com/specialistvlad/pkgopts/internal/testutil"
	"github.com/stretchr/testify/require"
)

// SetupAppTest creates an App wired with the real HCL loader and override
// reader. It returns the App, its rendered output and its log output.
func SetupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, appConfig, hclconfig.NewLoader(), overrides.NewReader())

	t.Cleanup(func() {
		if os.Getenv("PKGOPTS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
