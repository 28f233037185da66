package guest

import (
	"bytes"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/linera-bridge/errors"
)

// Memory adapts wazero memory to linerabridge.Memory. Out of range reads
// return lift-phase out_of_bounds errors.
type Memory struct {
	mem api.Memory
}

func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(nil, offset, length)
	}
	return data, nil
}

func (m *Memory) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.mem.ReadByte(offset)
	if !ok {
		return 0, errors.OutOfBounds(nil, offset, 1)
	}
	return v, nil
}

func (m *Memory) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(nil, offset, 2)
	}
	return v, nil
}

func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(nil, offset, 4)
	}
	return v, nil
}

func (m *Memory) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(nil, offset, 8)
	}
	return v, nil
}

// Snapshot copies the whole memory, for saving as a dump.
func (m *Memory) Snapshot() []byte {
	data, _ := m.mem.Read(0, m.mem.Size())
	return bytes.Clone(data)
}
