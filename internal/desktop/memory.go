package desktop

import (
	"fmt"

	"github.com/GregoryDosh/onlyone/internal/autolock"
)

// Memory is a Desktop that lives inside the current process. It keeps
// z-order (front first), tags, minimized state and owned popups.
type Memory struct {
	lock       autolock.Lock
	next       Window
	order      []Window
	windows    map[Window]*memoryWindow
	foreground Window
}

type memoryWindow struct {
	title     string
	owner     Window
	minimized bool
	tags      map[string]struct{}
	// popups in activation order, most recent last.
	popups []Window
}

func NewMemory() *Memory {
	return &Memory{windows: map[Window]*memoryWindow{}}
}

// Create adds a top-level window in front of all others.
func (m *Memory) Create(title string) Window {
	h := m.lock.Hold()
	defer h.Release()
	return m.create(title, 0)
}

// CreatePopup adds a top-level window owned by owner. It becomes owner's
// last active popup.
func (m *Memory) CreatePopup(owner Window, title string) (Window, error) {
	h := m.lock.Hold()
	defer h.Release()
	o, ok := m.windows[owner]
	if !ok {
		return 0, fmt.Errorf("popup owner %d: %w", owner, NoSuchWindowError)
	}
	w := m.create(title, owner)
	o.popups = append(o.popups, w)
	return w, nil
}

func (m *Memory) create(title string, owner Window) Window {
	m.next++
	w := m.next
	m.windows[w] = &memoryWindow{title: title, owner: owner, tags: map[string]struct{}{}}
	m.order = append([]Window{w}, m.order...)
	return w
}

// Destroy removes w together with the popups it owns. Tags go with it.
func (m *Memory) Destroy(w Window) {
	h := m.lock.Hold()
	defer h.Release()
	m.destroy(w)
}

func (m *Memory) destroy(w Window) {
	mw, ok := m.windows[w]
	if !ok {
		return
	}
	for _, p := range mw.popups {
		m.destroy(p)
	}
	if o, ok := m.windows[mw.owner]; ok {
		o.popups = without(o.popups, w)
	}
	delete(m.windows, w)
	m.order = without(m.order, w)
	if m.foreground == w {
		m.foreground = 0
	}
}

func (m *Memory) Minimize(w Window) error {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return NoSuchWindowError
	}
	mw.minimized = true
	if m.foreground == w {
		m.foreground = 0
	}
	return nil
}

// Foreground returns the window that was last brought to the foreground.
func (m *Memory) Foreground() Window {
	h := m.lock.Hold()
	defer h.Release()
	return m.foreground
}

func (m *Memory) Title(w Window) string {
	h := m.lock.Hold()
	defer h.Release()
	if mw, ok := m.windows[w]; ok {
		return mw.title
	}
	return ""
}

func (m *Memory) SetTitle(w Window, title string) error {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return NoSuchWindowError
	}
	mw.title = title
	return nil
}

func (m *Memory) Windows() ([]Window, error) {
	h := m.lock.Hold()
	defer h.Release()
	return append([]Window(nil), m.order...), nil
}

func (m *Memory) HasTag(w Window, key string) bool {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return false
	}
	_, tagged := mw.tags[key]
	return tagged
}

func (m *Memory) SetTag(w Window, key string) error {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return NoSuchWindowError
	}
	mw.tags[key] = struct{}{}
	return nil
}

func (m *Memory) RemoveTag(w Window, key string) error {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return NoSuchWindowError
	}
	delete(mw.tags, key)
	return nil
}

func (m *Memory) IsMinimized(w Window) bool {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	return ok && mw.minimized
}

func (m *Memory) Restore(w Window) error {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok {
		return NoSuchWindowError
	}
	mw.minimized = false
	return nil
}

func (m *Memory) SetForeground(w Window) error {
	h := m.lock.Hold()
	defer h.Release()
	// Like SetForegroundWindow, this leaves a minimized window minimized.
	if _, ok := m.windows[w]; !ok {
		return NoSuchWindowError
	}
	m.foreground = w
	m.order = append([]Window{w}, without(m.order, w)...)
	log.WithField("window", w).Trace("foreground changed")
	return nil
}

func (m *Memory) LastActivePopup(w Window) Window {
	h := m.lock.Hold()
	defer h.Release()
	mw, ok := m.windows[w]
	if !ok || len(mw.popups) == 0 {
		return w
	}
	return mw.popups[len(mw.popups)-1]
}

func without(ws []Window, w Window) []Window {
	out := ws[:0:0]
	for _, x := range ws {
		if x != w {
			out = append(out, x)
		}
	}
	return out
}
