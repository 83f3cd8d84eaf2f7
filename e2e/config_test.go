//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListSizeChangeIsSaved(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	configPath, err := tf.StartWithCatalog("one", "two")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	require.NoError(t, tf.SendKeys(KeyF2))
	require.True(t, tf.WaitForStatusMessage("Saved", 3*time.Second), "Should report the save")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(2*time.Second))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err, "Should be able to read config file")
	require.Contains(t, string(content), "suggestion_list_size = 4")
	require.Contains(t, string(content), "suggestion_delay = 50", "Other settings should be preserved")
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-config", workspace+"/missing.toml")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	// The built-in catalog holds the standard library packages
	require.NoError(t, tf.Type("strc"))
	require.True(t, tf.SeePlain("strconv"), "Should suggest from the built-in catalog")
}
