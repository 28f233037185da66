package lift

import (
	"encoding/binary"

	"github.com/wippyai/linera-bridge/errors"
)

// ByteMemory is guest memory held in a byte slice, such as a dump taken
// from a running guest.
type ByteMemory []byte

func (m ByteMemory) Size() uint32 {
	return uint32(len(m))
}

func (m ByteMemory) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(m)) {
		return nil, errors.OutOfBounds(nil, offset, length)
	}
	return m[offset:end], nil
}

func (m ByteMemory) ReadU8(offset uint32) (uint8, error) {
	b, err := m.Read(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m ByteMemory) ReadU16(offset uint32) (uint16, error) {
	b, err := m.Read(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (m ByteMemory) ReadU32(offset uint32) (uint32, error) {
	b, err := m.Read(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (m ByteMemory) ReadU64(offset uint32) (uint64, error) {
	b, err := m.Read(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
