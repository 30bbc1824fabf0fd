// Package agent provides the TCP client for the on-device accessibility agent.
//
// The protocol is a single in-order request/response channel: newline-terminated
// command lines, responses read as one chunk and compared after trimming. There
// is no pipelining, authentication, or encryption.
package agent

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/core"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/element"
	"github.com/yuzhenhan994520-spec/element-crawler/pkg/logger"
)

const (
	// DefaultPort is the TCP port the agent listens on.
	DefaultPort = 16688

	// maxResponseSize bounds a single response read. The protocol defines no
	// delimiter or length prefix; the agent is expected to answer in one chunk.
	maxResponseSize = 65536

	defaultDialTimeout = 5 * time.Second
	defaultReadTimeout = 10 * time.Second
)

// Client owns exactly one TCP session to the agent. Commands are strictly
// serialized: one in flight at a time. A Client is safe for concurrent use.
type Client struct {
	cmdMu sync.Mutex // serializes command/response exchanges
	mu    sync.Mutex // guards conn and connected

	conn      net.Conn
	connected bool

	dialTimeout   time.Duration
	readTimeout   time.Duration
	drainInterval time.Duration
}

// New creates a disconnected client with default timeouts.
func New() *Client {
	return &Client{
		dialTimeout: defaultDialTimeout,
		readTimeout: defaultReadTimeout,
	}
}

// SetDialTimeout overrides the connect timeout.
func (c *Client) SetDialTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialTimeout = d
}

// SetReadTimeout overrides the per-command response timeout.
func (c *Client) SetReadTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readTimeout = d
}

// SetDrainInterval enables the hardened read mode: after the first chunk,
// keep reading until the connection stays quiet for the given interval,
// concatenating chunks. Zero (the default) preserves the original
// single-read framing.
func (c *Client) SetDrainInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drainInterval = d
}

// Connect opens the TCP session. It does not retry; on failure the client
// stays closed. Reconnecting an open client is an error — disconnect first.
func (c *Client) Connect(host string, port int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return core.ErrAlreadyConnected
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	conn, err := net.DialTimeout("tcp", addr, c.dialTimeout)
	if err != nil {
		logger.Error("connect %s failed: %v", addr, err)
		return core.ErrConnectFailed.WithCause(err)
	}

	c.conn = conn
	c.connected = true
	logger.Info("connected to agent at %s", addr)
	return nil
}

// Connected reports whether the session is open.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Disconnect closes the transport if open and marks the session closed.
// Idempotent. Closing the transport is also the only way to abort an
// in-flight read, so Disconnect doubles as the cancel affordance.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.conn != nil {
		err = c.conn.Close()
		c.conn = nil
	}
	c.connected = false
	return err
}

// SendCommand writes one newline-terminated command and reads one response,
// returned with trailing whitespace trimmed. On a closed session it returns
// core.ErrNotConnected without touching any socket. Transport failures are
// converted to typed errors and never panic; a fatal (non-timeout) I/O error
// additionally closes the session.
func (c *Client) SendCommand(command string) (string, error) {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	c.mu.Lock()
	conn := c.conn
	open := c.connected
	readTimeout := c.readTimeout
	drainInterval := c.drainInterval
	c.mu.Unlock()

	if !open || conn == nil {
		return "", core.ErrNotConnected
	}

	start := time.Now()

	// The protocol defines no separate write budget; writes share the
	// command response timeout.
	if err := conn.SetWriteDeadline(time.Now().Add(readTimeout)); err != nil {
		return "", core.ErrWriteFailed.WithCause(err)
	}
	if _, err := conn.Write([]byte(command + "\n")); err != nil {
		c.closeOnFatal(err)
		logger.Error("command %q write failed: %v", verbOf(command), err)
		return "", core.ErrWriteFailed.WithCause(err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		return "", core.ErrReadFailed.WithCause(err)
	}

	buf := make([]byte, maxResponseSize)
	n, err := conn.Read(buf)
	if err != nil {
		c.closeOnFatal(err)
		logger.Error("command %q read failed after %v: %v", verbOf(command), time.Since(start), err)
		if isTimeout(err) {
			return "", core.ErrReadTimeout.WithCause(err)
		}
		return "", core.ErrReadFailed.WithCause(err)
	}

	resp := buf[:n]
	if drainInterval > 0 {
		resp = drain(conn, resp, drainInterval)
	}

	logger.Debug("command %q [%v] %d bytes", verbOf(command), time.Since(start), len(resp))
	return strings.TrimSpace(string(resp)), nil
}

// drain keeps reading until the connection stays quiet for the given
// interval or the response buffer is full. Used only in hardened read mode.
func drain(conn net.Conn, resp []byte, interval time.Duration) []byte {
	for len(resp) < maxResponseSize {
		if err := conn.SetReadDeadline(time.Now().Add(interval)); err != nil {
			break
		}
		chunk := make([]byte, maxResponseSize-len(resp))
		n, err := conn.Read(chunk)
		if n > 0 {
			resp = append(resp, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return resp
}

// closeOnFatal tears the session down after a non-timeout I/O error.
// Timeouts keep the session open: the agent may simply be slow, and the
// caller decides whether to retry the command or disconnect.
func (c *Client) closeOnFatal(err error) {
	if isTimeout(err) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connected = false
}

func isTimeout(err error) bool {
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// verbOf returns the command verb without its payload, for logging.
func verbOf(command string) string {
	if idx := strings.IndexByte(command, ':'); idx >= 0 {
		return command[:idx]
	}
	return command
}

// GetElements requests a snapshot of the UI tree. Any transport or parse
// failure degrades to an empty slice: snapshot failure means "no elements",
// never a crash.
func (c *Client) GetElements() []element.Element {
	resp, err := c.SendCommand(CmdGetElements)
	if err != nil {
		return nil
	}

	elements, err := element.Decode([]byte(resp))
	if err != nil {
		logger.Warn("snapshot parse failed: %v", err)
		return nil
	}
	return elements
}

// ok reports whether a command succeeded: the trimmed response must be
// exactly the literal "OK". Anything else, including error responses,
// is failure with no further detail.
func (c *Client) ok(command string) bool {
	resp, err := c.SendCommand(command)
	if err != nil {
		return false
	}
	return resp == responseOK
}

// ClickByCoords taps the screen at device pixel coordinates.
func (c *Client) ClickByCoords(x, y int) bool {
	return c.ok(fmt.Sprintf("%s:%d,%d", CmdClickByCoords, x, y))
}

// ClickByID clicks the element with the given resource identifier.
func (c *Client) ClickByID(id string) bool {
	return c.ok(CmdClickByID + ":" + id)
}

// ClickByText clicks the element with the given visible text.
func (c *Client) ClickByText(text string) bool {
	return c.ok(CmdClickByText + ":" + text)
}

// ClickByContentDesc clicks the element with the given content description.
func (c *Client) ClickByContentDesc(desc string) bool {
	return c.ok(CmdClickByContentDesc + ":" + desc)
}

// InputText types text into the focused element.
func (c *Client) InputText(text string) bool {
	return c.ok(CmdInputText + ":" + text)
}

// ScrollUp scrolls the current view up.
func (c *Client) ScrollUp() bool {
	return c.ok(CmdScrollUp)
}

// ScrollDown scrolls the current view down.
func (c *Client) ScrollDown() bool {
	return c.ok(CmdScrollDown)
}

// ClickElement attempts to click an element by its identifying attributes in
// locator priority order: resource ID, then text, then content description,
// stopping at the first click the agent accepts. Coordinates do not
// participate in this chain. Returns the locator kind that succeeded.
func (c *Client) ClickElement(e element.Element) (element.LocatorKind, bool) {
	if e.HasResourceID() && c.ClickByID(e.ResourceID) {
		return element.LocatorResourceID, true
	}
	if e.HasText() && c.ClickByText(e.Text) {
		return element.LocatorText, true
	}
	if e.HasContentDesc() && c.ClickByContentDesc(e.ContentDesc) {
		return element.LocatorContentDesc, true
	}
	return "", false
}
