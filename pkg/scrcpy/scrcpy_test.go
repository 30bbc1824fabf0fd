package scrcpy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		serial   string
		opts     Options
		expected []string
	}{
		{
			name:     "defaults",
			serial:   "emulator-5554",
			opts:     Options{},
			expected: []string{"-s", "emulator-5554", "--window-title", "element-crawler"},
		},
		{
			name:   "custom title and extra args",
			serial: "ABC",
			opts: Options{
				WindowTitle: "Mirror",
				ExtraArgs:   []string{"--max-fps", "30"},
			},
			expected: []string{"-s", "ABC", "--window-title", "Mirror", "--max-fps", "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgs(tt.serial, tt.opts)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStart_EmptySerial(t *testing.T) {
	m := NewManagerWithStateDir(t.TempDir())
	if err := m.Start("", Options{}); err == nil {
		t.Error("expected error for empty serial")
	}
}

func TestStop_NotRunning(t *testing.T) {
	m := NewManagerWithStateDir(t.TempDir())
	if err := m.Stop("nope"); err != nil {
		t.Errorf("stop on untracked serial should be a no-op, got %v", err)
	}
	if m.IsRunning("nope") {
		t.Error("expected IsRunning false")
	}
}

func TestStop_StalePidFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerWithStateDir(dir)

	// A pid that cannot exist: max pid on Linux is well below this.
	pidPath := filepath.Join(dir, "crawler-scrcpy-ABC.pid")
	if err := os.WriteFile(pidPath, []byte("99999999"), 0644); err != nil {
		t.Fatalf("write pid file: %v", err)
	}

	if err := m.Stop("ABC"); err != nil {
		t.Errorf("stop with stale pid file should be a no-op, got %v", err)
	}
	if _, err := os.Stat(pidPath); !os.IsNotExist(err) {
		t.Error("expected stale pid file to be removed")
	}
}

func TestIsRunning_BadPidFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerWithStateDir(dir)

	pidPath := filepath.Join(dir, "crawler-scrcpy-XYZ.pid")
	if err := os.WriteFile(pidPath, []byte("not-a-pid"), 0644); err != nil {
		t.Fatalf("write pid file: %v", err)
	}

	if m.IsRunning("XYZ") {
		t.Error("expected IsRunning false for unparsable pid file")
	}
}
