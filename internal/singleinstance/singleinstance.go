package singleinstance

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/GregoryDosh/onlyone/internal/identity"
	"github.com/mitchellh/go-ps"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("module", "singleinstance")

	InstanceAlreadyExistsError    = errors.New("unable to get instance lock")
	TokenCreationFailedError      = errors.New("unable to create instance token")
	ActivationTargetNotFoundError = errors.New("running instance has no tagged window")
	NotClaimedError               = errors.New("instance token is not claimed by this process")

	// instance keeps the claimed token reachable until the process exits.
	instance *Guard
)

type Claim int

const (
	Claimed Claim = iota + 1
	AlreadyExists
)

func (c Claim) String() string {
	switch c {
	case Claimed:
		return "claimed"
	case AlreadyExists:
		return "already exists"
	}
	return fmt.Sprintf("Claim(%d)", int(c))
}

type Activation int

const (
	Activated Activation = iota + 1
	NotFound
)

func (a Activation) String() string {
	switch a {
	case Activated:
		return "activated"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("Activation(%d)", int(a))
}

// Guard makes sure only one process per identity runs. Once it has claimed
// the token it owns it until the process exits; there is no release.
type Guard struct {
	identity    identity.Identity
	tokens      TokenService
	desktop     desktop.Desktop
	processes   func() ([]ps.Process, error)
	processName string

	token Token
	hook  *tagHook
}

type Option func(*Guard)

func WithTokenService(s TokenService) Option {
	return func(g *Guard) { g.tokens = s }
}

func WithDesktop(d desktop.Desktop) Option {
	return func(g *Guard) { g.desktop = d }
}

// WithProcessName sets the executable name used to look for a running
// instance when its window can't be found. It defaults to the identity.
func WithProcessName(name string) Option {
	return func(g *Guard) { g.processName = name }
}

func New(id identity.Identity, opts ...Option) *Guard {
	g := &Guard{
		identity:    id,
		tokens:      NewTokenService(TokenOptions{}),
		desktop:     desktop.Current(),
		processes:   ps.Processes,
		processName: id.String(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Guard) Identity() identity.Identity {
	return g.identity
}

// TryClaim creates the instance token. AlreadyExists means another process
// holds it; the handle opened here is closed again right away.
func (g *Guard) TryClaim() (Claim, error) {
	log.Trace("Enter TryClaim")
	defer log.Trace("Exit TryClaim")

	if g.token != nil {
		return Claimed, nil
	}
	if g.identity == "" {
		return 0, fmt.Errorf("%w: %w", TokenCreationFailedError, identity.EmptyIdentityError)
	}

	l := log.WithField("identity", g.identity)
	tok, existed, err := g.tokens.Create(g.identity.String())
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", TokenCreationFailedError, g.identity, err)
	}
	if existed {
		if err := tok.Close(); err != nil {
			l.Warnf("unable to close duplicate token handle: %s", err)
		}
		l.Info("instance token already exists")
		return AlreadyExists, nil
	}

	g.token = tok
	g.hook = &tagHook{
		key:     g.identity.String(),
		desktop: g.desktop,
		tagged:  map[desktop.Window]struct{}{},
	}
	l.Debug("claimed instance token")
	return Claimed, nil
}

// FindAndActivate looks through the top-level windows for the one tagged
// with the identity, restores it if minimized and brings it, and whatever
// popup it is showing, to the foreground. The first tagged window wins.
func (g *Guard) FindAndActivate() Activation {
	log.Trace("Enter FindAndActivate")
	defer log.Trace("Exit FindAndActivate")

	if g.token != nil {
		log.Debug("searching for a window while holding the token")
	}

	ws, err := g.desktop.Windows()
	if err != nil {
		log.Warnf("unable to enumerate windows: %s", err)
		return NotFound
	}

	key := g.identity.String()
	for _, w := range ws {
		if !g.desktop.HasTag(w, key) {
			continue
		}
		g.activate(w)
		return Activated
	}

	log.WithField("identity", g.identity).Debugf("none of %d windows tagged", len(ws))
	return NotFound
}

func (g *Guard) activate(w desktop.Window) {
	l := log.WithFields(logrus.Fields{
		"identity": g.identity,
		"window":   w,
	})

	if g.desktop.IsMinimized(w) {
		if err := g.desktop.Restore(w); err != nil {
			l.Warnf("unable to restore window: %s", err)
		}
	}
	if err := g.desktop.SetForeground(w); err != nil {
		l.Warnf("unable to bring window to the foreground: %s", err)
	}
	if popup := g.desktop.LastActivePopup(w); popup != 0 && popup != w {
		if err := g.desktop.SetForeground(popup); err != nil {
			l.WithField("popup", popup).Warnf("unable to bring popup to the foreground: %s", err)
		}
	}
	l.Info("activated running instance")
}

// Check runs the whole startup handshake.
//
// nil means this process claimed the token and should carry on. Otherwise
// the process must exit without running: InstanceAlreadyExistsError when the
// running instance was activated, a *NotFoundError when its window could not
// be found, and an error wrapping TokenCreationFailedError when the token
// could not be created at all.
func (g *Guard) Check() error {
	log.Trace("Enter Check")
	defer log.Trace("Exit Check")

	claim, err := g.TryClaim()
	if err != nil {
		return err
	}
	if claim == Claimed {
		return nil
	}

	if g.FindAndActivate() == Activated {
		return InstanceAlreadyExistsError
	}

	nf := &NotFoundError{
		Identity: g.identity,
		PIDs:     g.runningInstances(),
	}
	log.WithFields(logrus.Fields{
		"identity": g.identity,
		"pids":     nf.PIDs,
	}).Warn(nf.Error())
	return nf
}

// Hook returns the window lifecycle hook that tags the primary window. Only
// the process holding the token gets one.
func (g *Guard) Hook() (Lifecycle, error) {
	if g.hook == nil {
		return nil, NotClaimedError
	}
	return g.hook, nil
}

// GetLock runs Check with a new guard for id and, on success, keeps the
// guard for the rest of the process.
func GetLock(id identity.Identity, opts ...Option) (*Guard, error) {
	g := New(id, opts...)
	if err := g.Check(); err != nil {
		return nil, err
	}
	instance = g
	return g, nil
}
