package monitor

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/sigurn/crc16"

	"xecgpio/core"
)

// Serve runs the EC side of the monitor protocol against a register
// backend, answering requests until the link reports EOF. It is the
// reference for the firmware stub and doubles as the far end in
// loopback tests, where the backend is a simulated bank.
func Serve(port io.ReadWriter, regio core.RegisterIO) error {
	var b [1]byte
	for {
		// Hunt for the sync byte.
		if _, err := io.ReadFull(port, b[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		}
		if b[0] != syncByte {
			continue
		}

		var req [reqLen - 1]byte
		if _, err := io.ReadFull(port, req[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		}

		op := req[0]
		addr := uintptr(binary.LittleEndian.Uint32(req[1:5]))
		value := binary.LittleEndian.Uint32(req[5:9])
		crc := binary.LittleEndian.Uint16(req[9:11])

		status := byte(statusErr)
		var result uint32
		if crc == crc16.Checksum(req[:9], crcTable) {
			switch op {
			case opRead32:
				result = regio.Read32(addr)
				status = statusOK | op
			case opWrite32:
				regio.Write32(addr, value)
				status = statusOK | op
			}
		}

		var resp [respLen]byte
		resp[0] = syncByte
		resp[1] = status
		binary.LittleEndian.PutUint32(resp[2:6], result)
		binary.LittleEndian.PutUint16(resp[6:8], crc16.Checksum(resp[1:6], crcTable))
		if _, err := port.Write(resp[:]); err != nil {
			return err
		}
	}
}
