// Package monitor speaks the EC debug monitor protocol: single-register
// reads and writes over a serial link, framed with a sync byte and a
// CRC-16. The Client side implements core.RegisterIO so the whole
// driver stack can run on a host against live hardware; Serve is the
// EC/stub side of the same protocol.
//
// Frame layout, all multi-byte fields little-endian:
//
//	request:  a5 | op | addr[4] | value[4] | crc[2]
//	response: a5 | status | value[4] | crc[2]
//
// The CRC covers everything between the sync byte and the CRC itself
// (CRC-16/CCITT-FALSE).
package monitor

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/sigurn/crc16"
)

const (
	syncByte = 0xa5

	opRead32  = 0x01
	opWrite32 = 0x02

	statusOK  = 0x80 // or'ed with the opcode
	statusErr = 0xff

	reqLen  = 12
	respLen = 8
)

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// Client is a core.RegisterIO that forwards every access to a remote
// monitor. The RegisterIO contract has no error returns, mirroring
// hardware that cannot fault, so link failures latch into a sticky
// error: after the first failure all accesses become no-ops (reads
// return zero) until Err is checked and Reset is called.
type Client struct {
	mu   sync.Mutex
	port io.ReadWriteCloser
	err  error
}

// NewClient wraps an open monitor link.
func NewClient(port io.ReadWriteCloser) *Client {
	return &Client{port: port}
}

// Err returns the sticky link error, nil while the link is healthy.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Reset clears the sticky error, e.g. after reopening the link.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
}

// Close closes the underlying link.
func (c *Client) Close() error {
	return c.port.Close()
}

// transact sends one request and decodes the response. Callers hold mu.
func (c *Client) transact(op byte, addr uintptr, value uint32) uint32 {
	if c.err != nil {
		return 0
	}

	var req [reqLen]byte
	req[0] = syncByte
	req[1] = op
	binary.LittleEndian.PutUint32(req[2:6], uint32(addr))
	binary.LittleEndian.PutUint32(req[6:10], value)
	binary.LittleEndian.PutUint16(req[10:12], crc16.Checksum(req[1:10], crcTable))

	if _, err := c.port.Write(req[:]); err != nil {
		c.err = fmt.Errorf("monitor write: %w", err)
		return 0
	}

	// Scan to the sync byte; the monitor may emit boot noise.
	var b [1]byte
	for {
		if _, err := io.ReadFull(c.port, b[:]); err != nil {
			c.err = fmt.Errorf("monitor read: %w", err)
			return 0
		}
		if b[0] == syncByte {
			break
		}
	}

	var resp [respLen - 1]byte
	if _, err := io.ReadFull(c.port, resp[:]); err != nil {
		c.err = fmt.Errorf("monitor read: %w", err)
		return 0
	}

	crc := binary.LittleEndian.Uint16(resp[5:7])
	if crc != crc16.Checksum(resp[:5], crcTable) {
		c.err = fmt.Errorf("monitor response CRC mismatch")
		return 0
	}
	if resp[0] != statusOK|op {
		c.err = fmt.Errorf("monitor rejected op %#02x (status %#02x)", op, resp[0])
		return 0
	}

	return binary.LittleEndian.Uint32(resp[1:5])
}

// Read32 implements core.RegisterIO.
func (c *Client) Read32(addr uintptr) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transact(opRead32, addr, 0)
}

// Write32 implements core.RegisterIO.
func (c *Client) Write32(addr uintptr, value uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transact(opWrite32, addr, value)
}

// Modify32 implements core.RegisterIO as a read and a write. The
// monitor link is single-master, so the pair is atomic enough.
func (c *Client) Modify32(addr uintptr, mask, value uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.transact(opRead32, addr, 0)
	c.transact(opWrite32, addr, (old&^mask)|(value&mask))
}

// Barrier implements core.RegisterIO. The link is ordered and the
// monitor executes each request to completion before answering, so
// ordering is already guaranteed.
func (c *Client) Barrier() {}
