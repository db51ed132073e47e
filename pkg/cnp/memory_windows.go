//go:build windows

package cnp

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// localMemory hands out LocalAlloc buffers that live until Free.
type localMemory struct {
	allocs []windows.Handle
}

func (m *localMemory) Alloc(n int) (uintptr, []byte, error) {
	if n <= 0 {
		n = 1
	}
	p, err := windows.LocalAlloc(windows.LPTR, uint32(n))
	if err != nil {
		return 0, nil, err
	}
	m.allocs = append(m.allocs, windows.Handle(p))
	return p, unsafe.Slice((*byte)(unsafe.Pointer(p)), n), nil
}

func (m *localMemory) View(addr uintptr, n int) []byte {
	if addr == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

func (m *localMemory) CString(addr uintptr) []byte {
	if addr == 0 {
		return nil
	}
	return []byte(windows.BytePtrToString((*byte)(unsafe.Pointer(addr))))
}

// Free releases every buffer handed out by Alloc.
func (m *localMemory) Free() {
	for _, h := range m.allocs {
		windows.LocalFree(h)
	}
	m.allocs = nil
}
