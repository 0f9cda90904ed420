package peripheral

import "io"

// FileHost is supplied by the embedding application. PumpFileOps opens or
// creates the named file through it; the peripheral itself never touches
// the filesystem. The host chooses what "name" means -- a path on disk,
// an entry the user picked from a dialog, anything with Open/Create
// semantics.
type FileHost interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
}

// Filename returns the 12-byte filename buffer as a string, stopping at
// the first NUL (or the full 12 bytes if none is present).
func (p *Peripheral) Filename() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, b := range p.filename {
		if b == 0 {
			return string(p.filename[:i])
		}
	}
	return string(p.filename[:])
}

// PumpFileOps performs one pending load or save command, if any, against
// mem and host, and transitions the file-status register to success or
// error. It is a no-op when no command is in progress, and must not
// suspend the caller -- host must already have the data available.
func (p *Peripheral) PumpFileOps(mem Memory, host FileHost) {
	p.mu.Lock()
	command := p.fileCommand
	pending := p.hasPendingFileOpLocked()
	addr := p.fileAddr
	end := p.fileEndAddr
	name := p.filenameLocked()
	p.mu.Unlock()

	if !pending || host == nil {
		return
	}

	var ok bool
	switch command {
	case FileCommandLoad:
		ok = p.load(mem, host, name, addr)
	case FileCommandSave:
		ok = p.save(mem, host, name, addr, end)
	}

	p.mu.Lock()
	if ok {
		p.fileStatus = FileStatusSuccess
	} else {
		p.fileStatus = FileStatusError
	}
	p.fileCommand = FileCommandNone
	p.mu.Unlock()
}

func (p *Peripheral) filenameLocked() string {
	for i, b := range p.filename {
		if b == 0 {
			return string(p.filename[:i])
		}
	}
	return string(p.filename[:])
}

func (p *Peripheral) load(mem Memory, host FileHost, name string, addr uint16) bool {
	r, err := host.Open(name)
	if err != nil {
		return false
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return false
	}

	for i, b := range data {
		mem.Write(addr+uint16(i), b)
	}
	return true
}

func (p *Peripheral) save(mem Memory, host FileHost, name string, addr, end uint16) bool {
	if end < addr {
		return false
	}

	w, err := host.Create(name)
	if err != nil {
		return false
	}
	defer w.Close()

	n := int(end-addr) + 1
	data := make([]byte, n)
	for i := 0; i < n; i++ {
		data[i] = mem.Read(addr + uint16(i))
	}

	_, err = w.Write(data)
	return err == nil
}
