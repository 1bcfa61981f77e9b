// Package stream provides a websocket client for the preview server's
// pose stream.
package stream

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lumaworks/go-skinview/internal/log"
	"github.com/lumaworks/go-skinview/pkg/player"
)

// Client consumes pose frames from a running preview server.
type Client struct {
	url string

	ws      *websocket.Conn
	wsMutex sync.Mutex

	frames chan player.Frame
	closed bool
}

// NewClient creates a client for the given server host:port.
func NewClient(addr string) *Client {
	return &Client{
		url:    fmt.Sprintf("ws://%s/ws/pose", addr),
		frames: make(chan player.Frame, 64),
	}
}

// Connect dials the pose stream and starts the read loop.
func (c *Client) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	var err error
	c.ws, _, err = dialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("pose stream connect failed: %w", err)
	}

	go c.readLoop()
	return nil
}

// Frames returns the channel of decoded frames. It is closed when the
// connection drops or Close is called.
func (c *Client) Frames() <-chan player.Frame {
	return c.frames
}

// readLoop decodes incoming frames until the connection closes.
func (c *Client) readLoop() {
	defer close(c.frames)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.wsMutex.Lock()
			closed := c.closed
			c.wsMutex.Unlock()
			if !closed {
				log.Warn("pose stream read failed", "err", err)
			}
			return
		}

		var frame player.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Warn("bad pose frame", "err", err)
			continue
		}

		select {
		case c.frames <- frame:
		default:
			// Consumer too slow - drop the frame, a newer one follows.
		}
	}
}

// Close shuts down the connection.
func (c *Client) Close() error {
	c.wsMutex.Lock()
	defer c.wsMutex.Unlock()
	if c.closed || c.ws == nil {
		return nil
	}
	c.closed = true
	return c.ws.Close()
}
