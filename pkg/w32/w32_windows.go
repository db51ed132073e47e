// Package w32 finds and terminates Windows processes.
package w32

import (
	"fmt"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	WAIT_OBJECT_0    = 0x00000000
	WAIT_TIMEOUT     = 0x00000102
	WAIT_FAILED      = 0xFFFFFFFF
	INFINITE_TIMEOUT = 0xFFFFFFFF
)

// Process is a process found in the system snapshot.
type Process struct {
	PID  uint32
	Name string
}

// FindProcesses lists the running processes whose executable name
// matches one of names, ignoring case.
func FindProcesses(names ...string) ([]Process, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("CreateToolhelp32Snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snap, &entry); err != nil {
		return nil, fmt.Errorf("Process32First: %w", err)
	}

	var found []Process
	for {
		exe := windows.UTF16ToString(entry.ExeFile[:])
		for _, n := range names {
			if strings.EqualFold(exe, n) {
				found = append(found, Process{PID: entry.ProcessID, Name: exe})
				break
			}
		}
		if err := windows.Process32Next(snap, &entry); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				return found, nil
			}
			return found, fmt.Errorf("Process32Next: %w", err)
		}
	}
}

// TerminateProcess kills pid and waits up to timeout for it to exit.
func TerminateProcess(pid uint32, timeout time.Duration) error {
	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE|windows.SYNCHRONIZE, false, pid)
	if err != nil {
		return fmt.Errorf("OpenProcess %d: %w", pid, err)
	}
	defer CloseHandle(syscall.Handle(h))

	if err := windows.TerminateProcess(h, 1); err != nil {
		return fmt.Errorf("TerminateProcess %d: %w", pid, err)
	}
	ms := uint32(INFINITE_TIMEOUT)
	if timeout >= 0 {
		ms = uint32(timeout.Milliseconds())
	}
	_, err = WaitForSingleObject(syscall.Handle(h), ms)
	return err
}

// WaitForSingleObject(waitHandle, timeoutMs)
// timeoutMs can be INFINITE_TIMEOUT
func WaitForSingleObject(h syscall.Handle, timeoutMs uint32) (uint32, error) {
	ret, err := windows.WaitForSingleObject(windows.Handle(h), timeoutMs)
	switch ret {
	case WAIT_OBJECT_0:
		return ret, nil
	case WAIT_TIMEOUT:
		return ret, syscall.ETIMEDOUT
	case WAIT_FAILED:
		if err != nil {
			return ret, err
		}
		return ret, syscall.EINVAL
	default:
		// abandoned mutex, not expected for processes
		return ret, fmt.Errorf("WaitForSingleObject unexpected result 0x%08X", ret)
	}
}

// CloseHandle closes an open object handle.
func CloseHandle(h syscall.Handle) error {
	if err := windows.CloseHandle(windows.Handle(h)); err != nil {
		return err
	}
	return nil
}
