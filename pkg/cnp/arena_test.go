package cnp

import (
	"bytes"
	"sort"
)

// arena simulates native memory with addressable Go buffers.
type arena struct {
	next   uintptr
	blocks map[uintptr][]byte
}

func newArena() *arena {
	return &arena{next: 0x10000, blocks: make(map[uintptr][]byte)}
}

func (a *arena) Alloc(n int) (uintptr, []byte, error) {
	if n <= 0 {
		n = 1
	}
	addr := a.next
	b := make([]byte, n)
	a.blocks[addr] = b
	a.next += uintptr(n+15) &^ 15
	return addr, b, nil
}

func (a *arena) block(addr uintptr) ([]byte, int) {
	starts := make([]uintptr, 0, len(a.blocks))
	for s := range a.blocks {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] <= addr {
			b := a.blocks[starts[i]]
			off := int(addr - starts[i])
			if off < len(b) {
				return b, off
			}
			return nil, 0
		}
	}
	return nil, 0
}

func (a *arena) View(addr uintptr, n int) []byte {
	b, off := a.block(addr)
	if b == nil || off+n > len(b) {
		panic("arena: view out of range")
	}
	return b[off : off+n]
}

func (a *arena) CString(addr uintptr) []byte {
	b, off := a.block(addr)
	if b == nil {
		return nil
	}
	b = b[off:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return append([]byte(nil), b...)
}

// putString stores a NUL terminated string and returns its address.
func (a *arena) putString(s string) uintptr {
	addr, b, _ := a.Alloc(len(s) + 1)
	copy(b, s)
	return addr
}
