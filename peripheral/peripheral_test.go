package peripheral

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOEnqueueDequeue(t *testing.T) {
	p := New()
	p.Enqueue('A')
	p.Enqueue('B')

	assert.Equal(t, byte('A'), p.ReadAt(Start+offPortAData))
	assert.Equal(t, byte('B'), p.ReadAt(Start+offPortAData))
	assert.Equal(t, byte(0), p.ReadAt(Start+offPortAData))
}

func TestFIFOCountClampedToCapacity(t *testing.T) {
	p := New()
	for i := 0; i < FIFOCapacity+10; i++ {
		p.Enqueue(byte(i))
	}
	require.Equal(t, FIFOCapacity, p.Count())

	for i := 0; i < 5; i++ {
		p.Dequeue()
	}
	assert.Equal(t, FIFOCapacity-5, p.Count())
}

func TestControlRegisterFlags(t *testing.T) {
	p := New()
	ctrl := p.ReadAt(Start + offPortAControl)
	assert.Zero(t, ctrl&ctrlDataAvailable)

	p.Enqueue('x')
	ctrl = p.ReadAt(Start + offPortAControl)
	assert.NotZero(t, ctrl&ctrlDataAvailable)

	p.Dequeue()
	ctrl = p.ReadAt(Start + offPortAControl)
	assert.Zero(t, ctrl&ctrlDataAvailable)
}

func TestControlRegisterPreservesInterruptEnableOnWrite(t *testing.T) {
	p := New()
	p.WriteAt(Start+offPortAControl, ctrlInterruptEn)
	p.Enqueue('k')

	ctrl := p.ReadAt(Start + offPortAControl)
	assert.NotZero(t, ctrl&ctrlInterruptEn)
	assert.NotZero(t, ctrl&ctrlDataAvailable)
	assert.NotZero(t, ctrl&ctrlInterruptFlag)
}

func TestControlRegisterPreservesUpperBits(t *testing.T) {
	p := New()
	p.WriteAt(Start+offPortAControl, ctrlInterruptEn|0x80)

	p.Enqueue('z')
	ctrl := p.ReadAt(Start + offPortAControl)
	assert.NotZero(t, ctrl&0x80, "bit7 should survive a control-flag refresh")
	assert.NotZero(t, ctrl&ctrlInterruptEn)

	p.Dequeue()
	ctrl = p.ReadAt(Start + offPortAControl)
	assert.NotZero(t, ctrl&0x80, "bit7 should survive after the FIFO drains")
}

func TestDequeueLogsKeyboardReads(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	p.Logger = log.New(&buf, "", 0)

	p.Dequeue()
	assert.Contains(t, buf.String(), "no data available")

	buf.Reset()
	p.Enqueue('Q')
	p.Dequeue()
	assert.Contains(t, buf.String(), "'Q'")
	assert.Contains(t, buf.String(), "0x51")
}

func TestBufferFullFlag(t *testing.T) {
	p := New()
	for i := 0; i < FIFOCapacity; i++ {
		p.Enqueue(byte(i))
	}
	ctrl := p.ReadAt(Start + offPortAControl)
	assert.NotZero(t, ctrl&ctrlBufferFull)
}

func TestFileAddressRegisters(t *testing.T) {
	p := New()
	p.WriteAt(Start+offFileAddrLo, 0x34)
	p.WriteAt(Start+offFileAddrHi, 0x12)
	assert.Equal(t, byte(0x34), p.ReadAt(Start+offFileAddrLo))
	assert.Equal(t, byte(0x12), p.ReadAt(Start+offFileAddrHi))
}

func TestFilenameBufferWriteOnlyReadsZero(t *testing.T) {
	p := New()
	name := "HELLO.BIN"
	for i, c := range []byte(name) {
		p.WriteAt(Start+offFilenameLo+uint16(i), c)
	}
	assert.Equal(t, name, p.Filename())
	assert.Equal(t, byte(0), p.ReadAt(Start+offFilenameLo))
}

func TestFileCommandTransitionsToInProgress(t *testing.T) {
	p := New()
	p.WriteAt(Start+offFileCommand, FileCommandLoad)
	assert.Equal(t, byte(FileStatusInProgress), p.ReadAt(Start+offFileStatus))
	assert.True(t, p.HasPendingFileOp())
}

type fakeMemory struct {
	ram [65536]byte
}

func (m *fakeMemory) Read(addr uint16) byte     { return m.ram[addr] }
func (m *fakeMemory) Write(addr uint16, v byte) { m.ram[addr] = v }

type fakeFile struct {
	*bytes.Buffer
}

func (f fakeFile) Close() error { return nil }

type fakeHost struct {
	files map[string][]byte
	saved map[string][]byte
	err   error
}

func (h *fakeHost) Open(name string) (io.ReadCloser, error) {
	if h.err != nil {
		return nil, h.err
	}
	data, ok := h.files[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return fakeFile{bytes.NewBuffer(data)}, nil
}

func (h *fakeHost) Create(name string) (io.WriteCloser, error) {
	if h.err != nil {
		return nil, h.err
	}
	buf := &bytes.Buffer{}
	h.saved = map[string][]byte{name: nil}
	return &savingBuffer{Buffer: buf, host: h, name: name}, nil
}

type savingBuffer struct {
	*bytes.Buffer
	host *fakeHost
	name string
}

func (s *savingBuffer) Close() error {
	s.host.saved[s.name] = s.Bytes()
	return nil
}

func TestPumpFileOpsLoad(t *testing.T) {
	p := New()
	mem := &fakeMemory{}
	host := &fakeHost{files: map[string][]byte{"GAME.BIN": {0x01, 0x02, 0x03}}}

	writeName(p, "GAME.BIN")
	p.WriteAt(Start+offFileAddrLo, 0x00)
	p.WriteAt(Start+offFileAddrHi, 0x02)
	p.WriteAt(Start+offFileCommand, FileCommandLoad)

	p.PumpFileOps(mem, host)

	assert.Equal(t, byte(FileStatusSuccess), p.ReadAt(Start+offFileStatus))
	assert.Equal(t, byte(0x01), mem.Read(0x0200))
	assert.Equal(t, byte(0x02), mem.Read(0x0201))
	assert.Equal(t, byte(0x03), mem.Read(0x0202))
	assert.False(t, p.HasPendingFileOp())
}

func TestPumpFileOpsLoadMissingFileIsError(t *testing.T) {
	p := New()
	mem := &fakeMemory{}
	host := &fakeHost{files: map[string][]byte{}}

	writeName(p, "MISSING.BIN")
	p.WriteAt(Start+offFileCommand, FileCommandLoad)
	p.PumpFileOps(mem, host)

	assert.Equal(t, byte(FileStatusError), p.ReadAt(Start+offFileStatus))
}

func TestPumpFileOpsSave(t *testing.T) {
	p := New()
	mem := &fakeMemory{}
	mem.Write(0x0300, 0xAA)
	mem.Write(0x0301, 0xBB)
	mem.Write(0x0302, 0xCC)

	host := &fakeHost{files: map[string][]byte{}}

	writeName(p, "OUT.BIN")
	p.WriteAt(Start+offFileAddrLo, 0x00)
	p.WriteAt(Start+offFileAddrHi, 0x03)
	p.WriteAt(Start+offFileEndLo, 0x02)
	p.WriteAt(Start+offFileEndHi, 0x03)
	p.WriteAt(Start+offFileCommand, FileCommandSave)

	p.PumpFileOps(mem, host)

	assert.Equal(t, byte(FileStatusSuccess), p.ReadAt(Start+offFileStatus))
	require.Contains(t, host.saved, "OUT.BIN")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, host.saved["OUT.BIN"])
}

func TestPumpFileOpsNoopWhenIdle(t *testing.T) {
	p := New()
	mem := &fakeMemory{}
	host := &fakeHost{}
	p.PumpFileOps(mem, host)
	assert.Equal(t, byte(FileStatusIdle), p.ReadAt(Start+offFileStatus))
}

func writeName(p *Peripheral, name string) {
	for i, c := range []byte(name) {
		p.WriteAt(Start+offFilenameLo+uint16(i), c)
	}
}
