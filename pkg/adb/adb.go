// Package adb wraps the Android device bridge used to discover devices and
// forward the agent's TCP port to the host.
package adb

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// AgentPort is the port the on-device agent listens on.
const AgentPort = 16688

// commandTimeout bounds every adb invocation.
const commandTimeout = 30 * time.Second

// Bridge runs adb commands against one device. An empty serial targets the
// default device.
type Bridge struct {
	serial  string
	adbPath string
}

// New creates a Bridge for the given serial, locating the adb binary in PATH.
func New(serial string) (*Bridge, error) {
	adbPath, err := exec.LookPath("adb")
	if err != nil {
		return nil, fmt.Errorf("adb not found in PATH; ensure Android platform tools are installed")
	}
	return &Bridge{serial: serial, adbPath: adbPath}, nil
}

// Serial returns the device serial this bridge targets.
func (b *Bridge) Serial() string {
	return b.serial
}

// ListDevices returns the serials of attached devices in the "device" state.
func (b *Bridge) ListDevices() ([]string, error) {
	out, err := b.run("devices")
	if err != nil {
		return nil, err
	}
	return parseDevices(out), nil
}

// parseDevices extracts device serials from `adb devices` output.
func parseDevices(out string) []string {
	var devices []string
	lines := strings.Split(out, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 && parts[1] == "device" {
			devices = append(devices, parts[0])
		}
	}
	return devices
}

// DeviceAddress returns the device's network address, parsed from the
// device-side routing table. Falls back to loopback, which implies the
// caller should connect through a forwarded port instead.
func (b *Bridge) DeviceAddress() string {
	out, err := b.run("shell", "ip", "route")
	if err != nil {
		return "127.0.0.1"
	}
	return parseRouteAddress(out)
}

// parseRouteAddress finds the `src` address in `ip route` output.
func parseRouteAddress(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "src") {
			continue
		}
		parts := strings.Fields(line)
		for i, part := range parts {
			if part == "src" && i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return "127.0.0.1"
}

// ForwardPort forwards a host TCP port to the agent port on the device.
func (b *Bridge) ForwardPort(localPort int) error {
	_, err := b.run("forward", fmt.Sprintf("tcp:%d", localPort), fmt.Sprintf("tcp:%d", AgentPort))
	return err
}

// ReversePort forwards the agent port on the device back to a host port.
func (b *Bridge) ReversePort(port int) error {
	_, err := b.run("reverse", fmt.Sprintf("tcp:%d", port), fmt.Sprintf("tcp:%d", AgentPort))
	return err
}

// RemoveForward removes a host port forward.
func (b *Bridge) RemoveForward(localPort int) error {
	_, err := b.run("forward", "--remove", fmt.Sprintf("tcp:%d", localPort))
	return err
}

// Shell executes a shell command on the device.
func (b *Bridge) Shell(cmd string) (string, error) {
	return b.run("shell", cmd)
}

// run executes an adb command with the bridge's serial.
func (b *Bridge) run(args ...string) (string, error) {
	cmdArgs := make([]string, 0, len(args)+2)
	if b.serial != "" {
		cmdArgs = append(cmdArgs, "-s", b.serial)
	}
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.Command(b.adbPath, cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("adb %s: %w", strings.Join(args, " "), err)
	}
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			errMsg := strings.TrimSpace(stderr.String())
			if errMsg == "" {
				errMsg = strings.TrimSpace(stdout.String())
			}
			return "", fmt.Errorf("adb %s: %w: %s", strings.Join(args, " "), err, errMsg)
		}
		return stdout.String(), nil
	case <-time.After(commandTimeout):
		cmd.Process.Kill()
		<-done
		return "", fmt.Errorf("adb %s: timed out after %v", strings.Join(args, " "), commandTimeout)
	}
}
