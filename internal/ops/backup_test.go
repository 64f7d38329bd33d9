package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/model"
	"tempo/internal/snapshot"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	restoreDir := t.TempDir()
	backupPath := filepath.Join(t.TempDir(), "backups", "tempo.json")

	st := model.AppState{
		Tasks:       []model.Task{{ID: "t1", Title: "ship it"}},
		TimeBlocks:  []model.TimeBlock{},
		ChatHistory: []model.ChatMessage{},
	}
	require.NoError(t, snapshot.Open(dataDir).Save(st))

	require.NoError(t, Backup(dataDir, backupPath))
	require.NoError(t, Restore(backupPath, restoreDir))

	loaded := snapshot.Open(restoreDir).Load()
	require.Len(t, loaded.Tasks, 1)
	assert.Equal(t, model.TaskID("t1"), loaded.Tasks[0].ID)
}

func TestBackupMissingSnapshot(t *testing.T) {
	err := Backup(t.TempDir(), filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, err)
}

func TestBackupRejectsCorruptSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, SnapshotFile), []byte("{nope"), 0o644))

	err := Backup(dataDir, filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, err)
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))

	err := Restore(bad, t.TempDir())
	assert.Error(t, err)
}
