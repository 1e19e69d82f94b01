//go:build windows

package singleinstance

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procCreateSemaphoreW = kernel32.NewProc("CreateSemaphoreW")
)

type semaphore struct {
	handle windows.Handle
}

func (s *semaphore) Close() error {
	return windows.CloseHandle(s.handle)
}

type semaphores struct {
	namespace string
}

// NewTokenService returns named semaphores with a count of one.
func NewTokenService(opts TokenOptions) TokenService {
	return semaphores{namespace: opts.Namespace}
}

// Create opens the semaphore. When it already exists the call still succeeds
// and GetLastError is ERROR_ALREADY_EXISTS.
// https://docs.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-createsemaphorew
func (s semaphores) Create(name string) (Token, bool, error) {
	if s.namespace != "" {
		name = s.namespace + `\` + name
	}
	if n := len(utf16.Encode([]rune(name))); n > windows.MAX_PATH {
		return nil, false, fmt.Errorf("semaphore name %q has %d characters, limit %d", name, n, windows.MAX_PATH)
	}
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, false, err
	}

	h, _, err := procCreateSemaphoreW.Call(0, 1, 1, uintptr(unsafe.Pointer(n)))
	if h == 0 {
		return nil, false, err
	}
	log.Tracef("CreateSemaphoreW %s returned %d", name, h)
	return &semaphore{handle: windows.Handle(h)}, errors.Is(err, windows.ERROR_ALREADY_EXISTS), nil
}
