package singleinstance

import (
	"github.com/GregoryDosh/onlyone/internal/autolock"
	"github.com/GregoryDosh/onlyone/internal/desktop"
)

// Lifecycle is notified by the primary window. Created must come after the
// window is fully set up and Destroyed before its resources are released.
type Lifecycle interface {
	OnPrimaryWindowCreated(w desktop.Window)
	OnPrimaryWindowDestroyed(w desktop.Window)
}

type tagHook struct {
	key     string
	desktop desktop.Desktop

	lock   autolock.Lock
	tagged map[desktop.Window]struct{}
}

func (h *tagHook) OnPrimaryWindowCreated(w desktop.Window) {
	held := h.lock.Hold()
	defer held.Release()

	l := log.WithField("window", w)
	if _, ok := h.tagged[w]; ok {
		l.Debug("window already tagged")
		return
	}
	if err := h.desktop.SetTag(w, h.key); err != nil {
		l.Warnf("unable to tag primary window, a second instance won't be able to find it: %s", err)
		return
	}
	h.tagged[w] = struct{}{}
	l.Debug("tagged primary window")
}

func (h *tagHook) OnPrimaryWindowDestroyed(w desktop.Window) {
	held := h.lock.Hold()
	defer held.Release()

	delete(h.tagged, w)
	if err := h.desktop.RemoveTag(w, h.key); err != nil {
		log.WithField("window", w).Warnf("unable to remove primary window tag: %s", err)
		return
	}
	log.WithField("window", w).Debug("removed primary window tag")
}
