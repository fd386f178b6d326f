package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// RegisterReader fetches a contiguous block of input registers from a
// given unit. Implementations must serialize access to the underlying
// transport; the ISG does not tolerate concurrent exchanges.
type RegisterReader interface {
	ReadInputRegisters(unitID uint8, address, quantity uint16) ([]uint16, error)
}

// ClientConfig is the transport configuration for the ISG link.
type ClientConfig struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// Client is the Modbus/TCP link to the ISG. All register reads go through
// a single handler guarded by a mutex because the handler mutates shared
// connection state (including the slave id) per request.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// NewClient creates a connected Modbus/TCP client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("modbus client: host required")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("modbus client: port required")
	}

	handler := modbus.NewTCPClientHandler(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
	handler.Timeout = cfg.Timeout

	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("modbus client: connect %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	return &Client{
		handler: handler,
		client:  modbus.NewClient(handler),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ReadInputRegisters reads quantity input registers starting at address
// from the given unit and returns them as 16-bit words in address order.
func (c *Client) ReadInputRegisters(unitID uint8, address, quantity uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	payload, err := c.client.ReadInputRegisters(address, quantity)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(quantity)*2 {
		return nil, fmt.Errorf("modbus client: short register payload: got %d bytes, want %d",
			len(payload), int(quantity)*2)
	}

	return unpackRegisters(payload), nil
}

// unpackRegisters converts a big-endian register payload into words.
func unpackRegisters(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
