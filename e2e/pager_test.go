//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithCatalog("alpha")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	require.NoError(t, tf.SendKeys(KeyF1))
	require.True(t, tf.SeePlain("Suggestions appear 50ms after you stop typing"), "Should show help in the pager")

	// Quit pager and ensure TUI again
	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyQuit))
	require.True(t, tf.SeePlain("autosuggest"), "Should return to main TUI after closing pager")
}
