// Package ops holds operator tooling for the snapshot document.
package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tempo/internal/model"
)

// SnapshotFile is the name of the state document inside the data dir.
const SnapshotFile = "appstate"

// Backup copies the snapshot document out of dataDir after verifying it is a
// parseable AppState, so a corrupt file is caught at backup time rather than
// on the next restore.
func Backup(dataDir, outPath string) error {
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	outPath = filepath.Clean(strings.TrimSpace(outPath))
	if dataDir == "" || outPath == "" {
		return fmt.Errorf("dataDir and outPath are required")
	}

	src := filepath.Join(dataDir, SnapshotFile)
	b, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if err := verify(b); err != nil {
		return fmt.Errorf("snapshot at %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, b, 0o644)
}

// Restore validates a backup and installs it as the snapshot document.
func Restore(backupPath, dataDir string) error {
	backupPath = filepath.Clean(strings.TrimSpace(backupPath))
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	if backupPath == "" || dataDir == "" {
		return fmt.Errorf("backupPath and dataDir are required")
	}

	b, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := verify(b); err != nil {
		return fmt.Errorf("backup at %s: %w", backupPath, err)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, SnapshotFile), b, 0o644)
}

func verify(b []byte) error {
	var st model.AppState
	if err := json.Unmarshal(b, &st); err != nil {
		return fmt.Errorf("not a valid state document: %w", err)
	}
	return nil
}
