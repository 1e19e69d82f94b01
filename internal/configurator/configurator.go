package configurator

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/GregoryDosh/onlyone/internal/autolock"
	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.WithField("module", "configurator")

type Config struct {
	Identity      string `yaml:"identity,omitempty"`
	Scope         string `yaml:"scope"`
	LockDir       string `yaml:"lock_dir,omitempty"`
	WindowTitle   string `yaml:"window_title"`
	Notifications bool   `yaml:"notifications"`
}

func Default() Config {
	return Config{
		Scope:       "local",
		WindowTitle: "OnlyOne",
	}
}

func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// This is so we can set some default values if not specified in the config.
	type rawConfig Config
	raw := rawConfig(Default())
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = Config(raw)
	return nil
}

// Namespace maps Scope onto the kernel object namespace holding the
// instance token.
func (c Config) Namespace() (string, error) {
	switch strings.ToLower(c.Scope) {
	case "", "local":
		return "Local", nil
	case "global":
		return "Global", nil
	}
	return "", fmt.Errorf("unknown scope %q, want local or global", c.Scope)
}

// Read loads filename. A missing file yields the defaults.
func Read(filename string) (Config, error) {
	f, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("%s not found, using defaults", filename)
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	c := Default()
	if err := yaml.Unmarshal(f, &c); err != nil {
		return Config{}, fmt.Errorf("unable to parse %s: %w", filename, err)
	}
	return c, nil
}

// Configurator keeps the current Config and reloads it when the file
// changes. Identity, scope and lock directory are fixed at startup; only the
// remaining fields change on reload.
type Configurator struct {
	filename      string
	refreshConfig chan bool
	done          chan struct{}
	debounce      time.Duration

	lock        autolock.Lock
	current     Config
	subscribers []func(Config)
}

func New(filename string, initial Config) *Configurator {
	return &Configurator{
		filename:      filename,
		refreshConfig: make(chan bool, 1),
		done:          make(chan struct{}),
		debounce:      time.Second,
		current:       initial,
	}
}

func (c *Configurator) Config() Config {
	h := c.lock.Hold()
	defer h.Release()
	return c.current
}

// Subscribe registers fn to be called with the new Config after each reload.
func (c *Configurator) Subscribe(fn func(Config)) {
	h := c.lock.Hold()
	defer h.Release()
	c.subscribers = append(c.subscribers, fn)
}

// Refresh asks the watch loop to reload the file.
func (c *Configurator) Refresh() {
	select {
	case c.refreshConfig <- true:
	default:
	}
}

func (c *Configurator) Watch() {
	go c.updateConfigFromDiskLoop()
}

func (c *Configurator) Close() {
	close(c.done)
}

func (c *Configurator) updateConfigFromDiskLoop() {
	log.Trace("Enter updateConfigFromDiskLoop")
	defer log.Trace("Exit updateConfigFromDiskLoop")

	d := debounce.New(c.debounce)

	// Filewatch to reload config when the source on the disk changes.
	var events <-chan fsnotify.Event
	var errs <-chan error
	fileWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Errorf("unable to watch config: %s", err)
	} else {
		defer fileWatcher.Close()
		if err := fileWatcher.Add(c.filename); err != nil {
			log.Warnf("%s %s, only manual reloads will apply", c.filename, err)
		} else {
			events = fileWatcher.Events
			errs = fileWatcher.Errors
		}
	}

	// Filewatcher events, and manual refresh loop
	for {
		select {
		case <-c.done:
			return
		case <-c.refreshConfig:
			d(c.reload)
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				c.Refresh()
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Error(err)
		}
	}
}

func (c *Configurator) reload() {
	log.Trace("Enter reload")
	defer log.Trace("Exit reload")
	log.Infof("reading %s from disk", c.filename)

	next, err := Read(c.filename)
	if err != nil {
		log.Errorf("unable to reload config: %s", err)
		return
	}

	h := c.lock.Hold()
	prev := c.current
	if next.Identity != prev.Identity || next.Scope != prev.Scope || next.LockDir != prev.LockDir {
		log.Warn("identity, scope and lock_dir only apply at startup, ignoring their new values")
		next.Identity, next.Scope, next.LockDir = prev.Identity, prev.Scope, prev.LockDir
	}
	c.current = next
	subscribers := append([]func(Config){}, c.subscribers...)
	h.Release()

	log.Debugf("completed configuration reload")
	log.Debugf("%+v", next)
	for _, fn := range subscribers {
		fn(next)
	}
}
