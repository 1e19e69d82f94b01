//go:build windows

package desktop

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetPropW           = user32.NewProc("GetPropW")
	procSetPropW           = user32.NewProc("SetPropW")
	procRemovePropW        = user32.NewProc("RemovePropW")
	procGetLastActivePopup = user32.NewProc("GetLastActivePopup")

	ForegroundRefusedError = errors.New("SetForegroundWindow refused")
)

// maxWindows bounds the GW_HWNDNEXT walk in case the z-order is rearranged
// underneath it.
const maxWindows = 1 << 16

// Win32 is the interactive desktop of the current session.
type Win32 struct{}

func Current() Desktop {
	return Win32{}
}

// Windows walks the children of the desktop window in z-order.
// https://docs.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-getwindow
func (Win32) Windows() ([]Window, error) {
	var ws []Window
	h := win.GetWindow(win.GetDesktopWindow(), win.GW_CHILD)
	for h != 0 && windows.IsWindow(windows.HWND(h)) {
		if len(ws) == maxWindows {
			log.Warnf("stopped enumerating after %d windows", maxWindows)
			break
		}
		ws = append(ws, Window(h))
		h = win.GetWindow(h, win.GW_HWNDNEXT)
	}
	return ws, nil
}

func (Win32) HasTag(w Window, key string) bool {
	k, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return false
	}
	r, _, _ := procGetPropW.Call(uintptr(w), uintptr(unsafe.Pointer(k)))
	return r != 0
}

// SetTag stores a non-null marker under key in the window's property list.
// https://docs.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-setpropw
func (Win32) SetTag(w Window, key string) error {
	k, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return err
	}
	r, _, err := procSetPropW.Call(uintptr(w), uintptr(unsafe.Pointer(k)), 1)
	if r == 0 {
		return fmt.Errorf("SetPropW %q on window %d: %w", key, w, err)
	}
	return nil
}

func (Win32) RemoveTag(w Window, key string) error {
	if !windows.IsWindow(windows.HWND(w)) {
		return NoSuchWindowError
	}
	k, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return err
	}
	// RemovePropW returns the stored data, zero when there was nothing to
	// remove; both leave the window untagged.
	procRemovePropW.Call(uintptr(w), uintptr(unsafe.Pointer(k)))
	return nil
}

func (Win32) IsMinimized(w Window) bool {
	return win.IsIconic(win.HWND(w))
}

func (Win32) Restore(w Window) error {
	if !windows.IsWindow(windows.HWND(w)) {
		return NoSuchWindowError
	}
	// The return value is the previous visibility, not success.
	win.ShowWindow(win.HWND(w), win.SW_RESTORE)
	return nil
}

func (Win32) SetForeground(w Window) error {
	if !win.SetForegroundWindow(win.HWND(w)) {
		return fmt.Errorf("window %d: %w", w, ForegroundRefusedError)
	}
	return nil
}

func (Win32) LastActivePopup(w Window) Window {
	r, _, _ := procGetLastActivePopup.Call(uintptr(w))
	if r == 0 {
		return w
	}
	return Window(r)
}
