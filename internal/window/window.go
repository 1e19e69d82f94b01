// Package window owns the application's primary window and reports its
// creation and destruction to a Hook, which is how the window gets tagged
// for a second instance to find.
package window

import (
	"github.com/GregoryDosh/onlyone/internal/autolock"
	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "window")

type Hook interface {
	OnPrimaryWindowCreated(w desktop.Window)
	OnPrimaryWindowDestroyed(w desktop.Window)
}

type Options struct {
	Title   string
	// Hook may be nil when the process doesn't hold the instance token.
	Hook    Hook
	Desktop desktop.Desktop
}

type Primary struct {
	desktop desktop.Desktop
	hook    Hook
	done    chan struct{}

	lock       autolock.Lock
	handle     desktop.Window
	title      string
	destroying bool
}

func newPrimary(opts Options) *Primary {
	d := opts.Desktop
	if d == nil {
		d = desktop.Current()
	}
	return &Primary{
		desktop: d,
		hook:    opts.Hook,
		title:   opts.Title,
		done:    make(chan struct{}),
	}
}

func (p *Primary) Handle() desktop.Window {
	h := p.lock.Hold()
	defer h.Release()
	return p.handle
}

func (p *Primary) Title() string {
	h := p.lock.Hold()
	defer h.Release()
	return p.title
}

// Done is closed once the window is gone.
func (p *Primary) Done() <-chan struct{} {
	return p.done
}

// Show restores the window if needed and brings it to the foreground.
func (p *Primary) Show() error {
	w := p.Handle()
	if p.desktop.IsMinimized(w) {
		if err := p.desktop.Restore(w); err != nil {
			return err
		}
	}
	return p.desktop.SetForeground(w)
}

// created runs once the window exists and is fully set up.
func (p *Primary) created(w desktop.Window) {
	h := p.lock.Hold()
	p.handle = w
	h.Release()

	log.WithFields(logrus.Fields{"window": w, "title": p.Title()}).Debug("primary window created")
	if p.hook != nil {
		p.hook.OnPrimaryWindowCreated(w)
	}
}

// beginDestroy runs before the window's resources are released. Only the
// first call reports to the hook; it returns false for the rest.
func (p *Primary) beginDestroy() bool {
	h := p.lock.Hold()
	if p.destroying {
		h.Release()
		return false
	}
	p.destroying = true
	w := p.handle
	h.Release()

	log.WithField("window", w).Debug("primary window destroying")
	if p.hook != nil {
		p.hook.OnPrimaryWindowDestroyed(w)
	}
	return true
}

func (p *Primary) finishDestroy() {
	close(p.done)
}
