package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// Settings blobs live under the settings subdirectory, matching the store's
// own default for an empty dir.
func TestSettingsDirUsesSettingsSubdirectory(t *testing.T) {
	dir := settingsDir()
	want := filepath.Join(".lander", "settings")
	if !strings.HasSuffix(dir, want) {
		t.Errorf("settingsDir() = %q, want suffix %q", dir, want)
	}
}
