//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPages = []string{
	"# Alpha\n\nfirst card",
	"# Bravo\n\nsecond card",
	"# Charlie\n\nthird card",
}

func startDeck(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	deckPath, err := tf.CreateWorkspace(testPages...)
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(deckPath), "Failed to start app")
	require.True(t, tf.SeePlain("page 1/3"), "Should show the first page")
	return tf
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		t.Logf("'q' did not exit cleanly (%v), using Ctrl+C", err)
		require.NoError(t, tf.SendCtrlC())
		require.NoError(t, tf.WaitExit(1500*time.Millisecond))
	}
}

func TestKeyboardPagingWraps(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	tf.Clear()
	require.NoError(t, tf.Next())
	assert.True(t, tf.SeePlain("page 2/3"), "Right arrow pages forward")

	tf.Clear()
	require.NoError(t, tf.Prev())
	require.NoError(t, tf.Prev())
	assert.True(t, tf.SeePlain("page 3/3"), "Backward from the first page wraps to the last")
	assert.True(t, tf.SeePlain("offset -1"))
}

func TestMouseSwipeAndClick(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	tf.Clear()
	require.NoError(t, tf.Swipe(70, 20, 8))
	assert.True(t, tf.SeePlain("page 2/3"), "A long drag to the left pages forward")

	tf.Clear()
	require.NoError(t, tf.Click(50, 8))
	assert.True(t, tf.SeePlain("selected 2"), "A click without travel selects the page")
}

func TestHistoryJournal(t *testing.T) {
	t.Parallel()
	tf := startDeck(t)

	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("page 2/3"))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))

	info, err := os.Stat(tf.HistoryPath())
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
