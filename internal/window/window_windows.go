//go:build windows

package window

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const className = "OnlyOnePrimaryWindow"

var (
	registerOnce sync.Once
	registerErr  error
	wndProcPtr   = windows.NewCallback(wndProc)

	// primaries maps a win.HWND to its *Primary for wndProc.
	primaries sync.Map
)

func register() error {
	registerOnce.Do(func() {
		cls, err := windows.UTF16PtrFromString(className)
		if err != nil {
			registerErr = err
			return
		}
		wc := win.WNDCLASSEX{
			LpfnWndProc:   wndProcPtr,
			HInstance:     win.GetModuleHandle(nil),
			HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
			HbrBackground: win.HBRUSH(win.COLOR_WINDOW + 1),
			LpszClassName: cls,
		}
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		if win.RegisterClassEx(&wc) == 0 {
			registerErr = fmt.Errorf("RegisterClassEx %s: %w", className, windows.GetLastError())
		}
	})
	return registerErr
}

// Open creates the window on its own locked OS thread, which then runs the
// window's message loop until the window is destroyed.
func Open(opts Options) (*Primary, error) {
	log.Trace("Enter Open")
	defer log.Trace("Exit Open")

	p := newPrimary(opts)
	ready := make(chan error, 1)
	go p.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Primary) run(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := register(); err != nil {
		ready <- err
		return
	}
	cls, _ := windows.UTF16PtrFromString(className)
	title, err := windows.UTF16PtrFromString(p.Title())
	if err != nil {
		ready <- err
		return
	}

	hwnd := win.CreateWindowEx(0, cls, title, win.WS_OVERLAPPEDWINDOW,
		win.CW_USEDEFAULT, win.CW_USEDEFAULT, 480, 240,
		0, 0, win.GetModuleHandle(nil), nil)
	if hwnd == 0 {
		ready <- fmt.Errorf("CreateWindowEx: %w", windows.GetLastError())
		return
	}
	primaries.Store(hwnd, p)
	win.ShowWindow(hwnd, win.SW_SHOWNORMAL)
	win.UpdateWindow(hwnd)

	p.created(desktop.Window(hwnd))
	ready <- nil

	msg := win.MSG{}
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	log.Trace("primary window message loop finished")
}

func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	v, ok := primaries.Load(hwnd)
	if !ok {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}
	p := v.(*Primary)

	switch msg {
	case win.WM_DESTROY:
		// The HWND and its properties are still valid here.
		p.beginDestroy()
		win.PostQuitMessage(0)
		return 0
	case win.WM_NCDESTROY:
		primaries.Delete(hwnd)
		p.finishDestroy()
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (p *Primary) SetTitle(title string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	// Not under p.lock: SendMessage waits for the window thread, which takes
	// the lock while destroying.
	w := p.Handle()
	if win.SendMessage(win.HWND(w), win.WM_SETTEXT, 0, uintptr(unsafe.Pointer(t))) == 0 {
		return fmt.Errorf("WM_SETTEXT on window %d failed", w)
	}
	held := p.lock.Hold()
	p.title = title
	held.Release()
	return nil
}

// Close asks the window thread to close the window and waits until it is
// destroyed.
func (p *Primary) Close() {
	select {
	case <-p.done:
		return
	default:
	}
	win.PostMessage(win.HWND(p.Handle()), win.WM_CLOSE, 0, 0)
	<-p.done
}
