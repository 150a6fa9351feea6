package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qispark/chatpick/internal/adapters/driven/storage/file"
)

func TestSeedCmd_Use(t *testing.T) {
	assert.Equal(t, "seed [path]", seedCmd.Use)
}

func TestSeedCmd_WritesSnapshot(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")

	out, err := executeCommand("seed", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote demo snapshot to "+path)

	snap, err := file.ReadSnapshot(path)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Reports)
	assert.NotEmpty(t, snap.Details)
	assert.NotEmpty(t, snap.Policies)
	assert.NotEmpty(t, snap.IOUs)
}

func TestSeedCmd_RefusesToOverwrite(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	_, err := executeCommand("seed", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSeedCmd_ForceOverwrites(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	_, err := executeCommand("seed", path, "--force")

	require.NoError(t, err)

	snap, err := file.ReadSnapshot(path)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Reports)
}

func TestDemoSnapshot_ExercisesPickerFeatures(t *testing.T) {
	snap := demoSnapshot()

	var pinned, unread, room, iou bool
	for _, report := range snap.Reports {
		pinned = pinned || report.IsPinned
		unread = unread || report.IsUnread
		room = room || report.ChatType != ""
		iou = iou || report.HasOutstandingIOU
	}

	assert.True(t, pinned)
	assert.True(t, unread)
	assert.True(t, room)
	assert.True(t, iou)
	assert.NotEmpty(t, snap.Actions)
}
