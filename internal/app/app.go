// Package app puts the single-instance handshake and the primary window
// together the way a process start needs them.
package app

import (
	"errors"
	"fmt"

	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/GregoryDosh/onlyone/internal/identity"
	"github.com/GregoryDosh/onlyone/internal/singleinstance"
	"github.com/GregoryDosh/onlyone/internal/window"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "app")

// Exit codes for a process that must not run.
const (
	ExitHandedOff = 0
	ExitFailed    = 1
	ExitNotFound  = 3
)

type Options struct {
	Identity    identity.Identity
	ProcessName string
	Title       string
	Tokens      singleinstance.TokenService
	Desktop     desktop.Desktop
}

type Instance struct {
	Guard  *singleinstance.Guard
	Window *window.Primary
}

// Launch claims the instance token and opens the tagged primary window. Any
// error means this process must exit without running; ExitCode says how.
func Launch(opts Options) (*Instance, error) {
	log.Trace("Enter Launch")
	defer log.Trace("Exit Launch")

	d := opts.Desktop
	if d == nil {
		d = desktop.Current()
	}
	guardOpts := []singleinstance.Option{singleinstance.WithDesktop(d)}
	if opts.Tokens != nil {
		guardOpts = append(guardOpts, singleinstance.WithTokenService(opts.Tokens))
	}
	if opts.ProcessName != "" {
		guardOpts = append(guardOpts, singleinstance.WithProcessName(opts.ProcessName))
	}

	guard, err := singleinstance.GetLock(opts.Identity, guardOpts...)
	if err != nil {
		return nil, err
	}
	hook, err := guard.Hook()
	if err != nil {
		return nil, err
	}

	w, err := window.Open(window.Options{
		Title:   opts.Title,
		Hook:    hook,
		Desktop: d,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open primary window: %w", err)
	}

	log.WithFields(logrus.Fields{
		"identity": opts.Identity,
		"window":   w.Handle(),
	}).Info("running as the primary instance")
	return &Instance{Guard: guard, Window: w}, nil
}

// ExitCode maps a Launch error onto the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitHandedOff
	case errors.Is(err, singleinstance.ActivationTargetNotFoundError):
		return ExitNotFound
	case errors.Is(err, singleinstance.InstanceAlreadyExistsError):
		return ExitHandedOff
	}
	return ExitFailed
}
