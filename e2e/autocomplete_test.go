//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSuggestionsAppearAfterTyping(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithCatalog("apple", "apricot", "banana")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	tf.Reset()
	require.NoError(t, tf.Type("ap"))

	require.True(t, tf.SeePlain("apricot"), "Should suggest apricot")
	require.True(t, tf.SeePlain("apple"), "Should suggest apple")
	require.False(t, strings.Contains(tf.SnapshotPlain(), "banana"), "banana does not match")
}

func TestAcceptSuggestionWithKeyboard(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithCatalog("apple", "apricot", "banana")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	require.NoError(t, tf.Type("ba"))
	require.True(t, tf.SeePlain("banana"), "Should suggest banana")

	require.NoError(t, tf.Down())
	require.NoError(t, tf.SendEnter())

	require.True(t, tf.WaitForStatusMessage("Selected banana", 3*time.Second), "Should report the selection")
}

func TestDownOpensSuggestionsImmediately(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.StartWithCatalog("cherry", "chestnut")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should show the title")

	require.NoError(t, tf.Type("ch"))
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("chestnut"), "Should show suggestions")
}
