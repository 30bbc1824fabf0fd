// Package scrcpy manages screen-mirroring processes, one per device serial.
// The mirror is an opaque external process; there is no protocol interface
// to it beyond start and stop. Started mirrors are recorded in per-serial
// pid files so a later invocation can stop them.
package scrcpy

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/logger"
)

const defaultWindowTitle = "element-crawler"

// Options configures how a mirror process is launched.
type Options struct {
	Path        string   // scrcpy binary (default: "scrcpy" from PATH)
	WindowTitle string   // window title (default: element-crawler)
	ExtraArgs   []string // passed through verbatim
}

// Instance tracks one running mirror process.
type Instance struct {
	Serial  string
	Process *exec.Cmd
	Started time.Time
}

// Manager tracks mirror processes started by this client.
type Manager struct {
	stateDir string
	started  sync.Map // serial -> *Instance
}

// NewManager creates a manager that records pid files in the system temp
// directory.
func NewManager() *Manager {
	return &Manager{stateDir: os.TempDir()}
}

// NewManagerWithStateDir creates a manager with an explicit pid file directory.
func NewManagerWithStateDir(dir string) *Manager {
	return &Manager{stateDir: dir}
}

func (m *Manager) pidFile(serial string) string {
	return filepath.Join(m.stateDir, "crawler-scrcpy-"+serial+".pid")
}

// buildArgs assembles the scrcpy command line for a serial.
func buildArgs(serial string, opts Options) []string {
	title := opts.WindowTitle
	if title == "" {
		title = defaultWindowTitle
	}
	args := []string{"-s", serial, "--window-title", title}
	return append(args, opts.ExtraArgs...)
}

// Start launches a mirror for the given serial and tracks it. Starting a
// serial that is already mirrored is an error; stop it first.
func (m *Manager) Start(serial string, opts Options) error {
	if serial == "" {
		return fmt.Errorf("no device serial given")
	}
	if _, running := m.started.Load(serial); running {
		return fmt.Errorf("mirror already running for %s", serial)
	}
	if pid, err := m.readPid(serial); err == nil && processAlive(pid) {
		return fmt.Errorf("mirror already running for %s (pid %d)", serial, pid)
	}

	path := opts.Path
	if path == "" {
		path = "scrcpy"
	}

	cmd := exec.Command(path, buildArgs(serial, opts)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start scrcpy for %s: %w", serial, err)
	}

	pid := cmd.Process.Pid
	if err := os.WriteFile(m.pidFile(serial), []byte(strconv.Itoa(pid)), 0644); err != nil {
		logger.Warn("could not record mirror pid for %s: %v", serial, err)
	}

	m.started.Store(serial, &Instance{
		Serial:  serial,
		Process: cmd,
		Started: time.Now(),
	})
	logger.Info("mirror started for %s (pid %d)", serial, pid)

	// Reap the process when it exits on its own (window closed).
	go func() {
		cmd.Wait()
		m.started.Delete(serial)
		os.Remove(m.pidFile(serial))
	}()

	return nil
}

// Stop terminates the mirror for the given serial, whether it was started
// by this manager or recorded in a pid file by an earlier invocation.
// Stopping a serial with no running mirror is a no-op.
func (m *Manager) Stop(serial string) error {
	if v, ok := m.started.LoadAndDelete(serial); ok {
		inst := v.(*Instance)
		os.Remove(m.pidFile(serial))
		if inst.Process.Process != nil {
			if err := inst.Process.Process.Kill(); err != nil && processAlive(inst.Process.Process.Pid) {
				return fmt.Errorf("stop scrcpy for %s: %w", serial, err)
			}
		}
		logger.Info("mirror stopped for %s", serial)
		return nil
	}

	pid, err := m.readPid(serial)
	if err != nil {
		return nil // nothing recorded
	}
	os.Remove(m.pidFile(serial))

	proc, err := os.FindProcess(pid)
	if err != nil {
		return nil
	}
	if err := proc.Kill(); err != nil {
		// Already exited; the stale pid file is cleaned up above.
		logger.Debug("mirror for %s was not running (pid %d): %v", serial, pid, err)
		return nil
	}
	logger.Info("mirror stopped for %s (pid %d)", serial, pid)
	return nil
}

// StopAll terminates every tracked mirror.
func (m *Manager) StopAll() {
	m.started.Range(func(key, _ interface{}) bool {
		m.Stop(key.(string))
		return true
	})
}

// IsRunning reports whether a mirror is tracked or recorded for the serial.
func (m *Manager) IsRunning(serial string) bool {
	if _, ok := m.started.Load(serial); ok {
		return true
	}
	pid, err := m.readPid(serial)
	return err == nil && processAlive(pid)
}

func (m *Manager) readPid(serial string) (int, error) {
	data, err := os.ReadFile(m.pidFile(serial))
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("bad pid file for %s", serial)
	}
	return pid, nil
}

// processAlive reports whether a pid refers to a live process.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 checks for existence without touching the process.
	return proc.Signal(syscall.Signal(0)) == nil
}
