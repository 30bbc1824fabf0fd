package adb

import (
	"reflect"
	"testing"
)

func TestParseDevices(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name: "single device",
			output: `List of devices attached
emulator-5554	device
`,
			expected: []string{"emulator-5554"},
		},
		{
			name: "multiple devices mixed states",
			output: `List of devices attached
emulator-5554	device
0123456789ABCDEF	device
ZY22DFG	unauthorized
ABCD	offline
`,
			expected: []string{"emulator-5554", "0123456789ABCDEF"},
		},
		{
			name: "no devices",
			output: `List of devices attached

`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDevices(tt.output)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseRouteAddress(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "wlan route",
			output:   "192.168.1.0/24 dev wlan0 proto kernel scope link src 192.168.1.42\n",
			expected: "192.168.1.42",
		},
		{
			name: "multiple routes picks first src",
			output: `default via 10.0.2.2 dev eth0
10.0.2.0/24 dev eth0 proto kernel scope link src 10.0.2.15
192.168.232.0/21 dev radio0 proto kernel scope link src 192.168.232.2
`,
			expected: "10.0.2.15",
		},
		{
			name:     "no src entry",
			output:   "default via 10.0.2.2 dev eth0\n",
			expected: "127.0.0.1",
		},
		{
			name:     "trailing src without address",
			output:   "192.168.1.0/24 dev wlan0 proto kernel scope link src",
			expected: "127.0.0.1",
		},
		{
			name:     "empty output",
			output:   "",
			expected: "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRouteAddress(tt.output); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
