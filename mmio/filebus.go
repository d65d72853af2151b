//go:build linux

package mmio

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FileBus is a Bus backed by an mmap'd file: /dev/mem on SoCs that expose
// the register file that way, or an ordinary file holding a register image
// shared with another process. All accesses go through sync/atomic so each
// one is an ordered, non-elidable load or store.
type FileBus struct {
	base  uint32
	mem   []byte
	words []uint32
}

// OpenFileBus maps length bytes of path starting at physical/file offset
// base. Addresses passed to Read32/Write32 are absolute; base is
// subtracted before indexing the mapping.
func OpenFileBus(path string, base uint32, length int) (*FileBus, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// FD can be closed once the mapping exists.
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, int64(base), length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	words := unsafe.Slice((*uint32)(unsafe.Pointer(&mem[0])), len(mem)/4)
	return &FileBus{base: base, mem: mem, words: words}, nil
}

func (b *FileBus) Read32(addr uint32) uint32 {
	return atomic.LoadUint32(&b.words[(addr-b.base)/4])
}

func (b *FileBus) Write32(addr uint32, v uint32) {
	atomic.StoreUint32(&b.words[(addr-b.base)/4], v)
}

// Close unmaps the register file.
func (b *FileBus) Close() error {
	b.words = nil
	return unix.Munmap(b.mem)
}
