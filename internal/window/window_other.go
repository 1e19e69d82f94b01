//go:build !windows

package window

import (
	"fmt"

	"github.com/GregoryDosh/onlyone/internal/desktop"
)

// host is a desktop that can create windows of its own.
type host interface {
	desktop.Desktop
	Create(title string) desktop.Window
	Destroy(w desktop.Window)
	SetTitle(w desktop.Window, title string) error
}

func Open(opts Options) (*Primary, error) {
	log.Trace("Enter Open")
	defer log.Trace("Exit Open")

	p := newPrimary(opts)
	h, ok := p.desktop.(host)
	if !ok {
		return nil, fmt.Errorf("desktop %T cannot host windows", p.desktop)
	}
	p.created(h.Create(opts.Title))
	return p, nil
}

func (p *Primary) SetTitle(title string) error {
	held := p.lock.Hold()
	defer held.Release()
	if err := p.desktop.(host).SetTitle(p.handle, title); err != nil {
		return err
	}
	p.title = title
	return nil
}

// Close destroys the window and returns once it is gone.
func (p *Primary) Close() {
	if !p.beginDestroy() {
		<-p.done
		return
	}
	p.desktop.(host).Destroy(p.Handle())
	p.finishDestroy()
}
