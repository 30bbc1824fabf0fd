package agent

import (
	"net"
	"time"
)

// NewTestClient creates a connected client over the given transport.
// This should only be used in tests.
func NewTestClient(conn net.Conn) *Client {
	return &Client{
		conn:        conn,
		connected:   true,
		dialTimeout: time.Second,
		readTimeout: time.Second,
	}
}

// SetConnected overrides the session state for testing purposes.
// This should only be used in tests.
func (c *Client) SetConnected(connected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = connected
}
