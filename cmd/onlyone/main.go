package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/GregoryDosh/onlyone/internal/app"
	"github.com/GregoryDosh/onlyone/internal/configurator"
	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/GregoryDosh/onlyone/internal/identity"
	"github.com/GregoryDosh/onlyone/internal/singleinstance"
	tray "github.com/GregoryDosh/onlyone/internal/systray"
	"github.com/GregoryDosh/onlyone/internal/toaster"
	"github.com/getlantern/systray"
	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion          = "0.1.0"
	defaultLogFilename    = ""
	configFilename        = ""
	profileCPUFilename    string
	profileMemoryFilename string
	log                   = logrus.WithField("module", "main")
)

func main() {

	app := &cli.App{
		Name:     "onlyone",
		HelpName: "onlyone",
		Usage:    "runs a single instance per user session and hands later launches to it",
		Authors: []*cli.Author{
			{Name: "Gregory Dosh", Email: "GregoryDosh@users.noreply.github.com"},
		},
		Version: buildVersion,
		Action:  onlyoneMain,
		Flags: []cli.Flag{
			&cli.StringFlag{
				EnvVars:     []string{"CONFIG_FILENAME"},
				Name:        "config",
				Aliases:     []string{"c", "f", "config_filename", "filename"},
				Usage:       "specify the yml configuration location",
				Destination: &configFilename,
				Value:       "onlyone.yml",
			},
			&cli.StringFlag{
				EnvVars: []string{"IDENTITY"},
				Name:    "identity",
				Aliases: []string{"i"},
				Usage:   "application identity, defaults to the executable name",
			},
			&cli.StringFlag{
				EnvVars: []string{"SCOPE"},
				Name:    "scope",
				Usage:   "local (per session) or global (per machine) instance token",
			},
			&cli.StringFlag{
				EnvVars: []string{"LOCK_DIR"},
				Name:    "lock_dir",
				Usage:   "directory for lock files where there are no named kernel objects",
			},
			&cli.StringFlag{
				EnvVars: []string{"WINDOW_TITLE"},
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "primary window title",
			},
			&cli.StringFlag{
				EnvVars: []string{"LOG_LEVEL"},
				Name:    "log_level",
				Aliases: []string{"l"},
				Usage:   "trace, debug, info, warn, error, fatal, panic",
				Value:   "info",
			},
			&cli.StringFlag{
				EnvVars: []string{"LOG_PATH"},
				Name:    "log_path",
				Usage:   "Set a path for the log file. Set empty to disable.",
				Value:   defaultLogFilename,
			},
			&cli.BoolFlag{
				EnvVars: []string{"NOTIFICATIONS"},
				Aliases: []string{"n"},
				Name:    "notifications",
				Usage:   "Enables Windows 10 Notifications",
				Value:   false,
			},
			&cli.StringFlag{
				EnvVars:     []string{"PROFILE_CPU"},
				Name:        "profile_cpu",
				Aliases:     []string{"pc"},
				Hidden:      true,
				Destination: &profileCPUFilename,
			},
			&cli.StringFlag{
				EnvVars:     []string{"PROFILE_MEMORY"},
				Name:        "profile_memory",
				Aliases:     []string{"pm"},
				Hidden:      true,
				Destination: &profileMemoryFilename,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func logLevel(s string) logrus.Level {
	switch s {
	case "trace", "t":
		return logrus.TraceLevel
	case "debug", "d":
		return logrus.DebugLevel
	case "info", "i":
		return logrus.InfoLevel
	case "warn", "w":
		return logrus.WarnLevel
	case "error", "e":
		return logrus.ErrorLevel
	case "fatal", "f":
		return logrus.FatalLevel
	case "panic", "p":
		return logrus.PanicLevel
	}
	return logrus.InfoLevel
}

// settings resolves the config file with the command line on top. The
// identity and token location come out of here once and never change.
func settings(ctx *cli.Context) (configurator.Config, configurator.Config, error) {
	file, err := configurator.Read(configFilename)
	if err != nil {
		return configurator.Config{}, configurator.Config{}, err
	}
	s := file
	if ctx.IsSet("identity") {
		s.Identity = ctx.String("identity")
	}
	if ctx.IsSet("scope") {
		s.Scope = ctx.String("scope")
	}
	if ctx.IsSet("lock_dir") {
		s.LockDir = ctx.String("lock_dir")
	}
	if ctx.IsSet("title") {
		s.WindowTitle = ctx.String("title")
	}
	if ctx.IsSet("notifications") {
		s.Notifications = ctx.Bool("notifications")
	}
	return file, s, nil
}

func onlyoneMain(ctx *cli.Context) error {
	ll := logLevel(ctx.String("log_level"))
	logrus.SetLevel(ll)

	file, s, err := settings(ctx)
	if err != nil {
		return err
	}

	if s.Notifications {
		toast := toaster.New("OnlyOne", logrus.WarnLevel, &logrus.JSONFormatter{})
		logrus.AddHook(toast)
	}

	log_path := ctx.String("log_path")
	if log_path != "" {
		opts := &lumberjackrus.LogFile{
			Filename:   log_path,
			MaxSize:    10,
			MaxBackups: 2,
		}
		hook, err := lumberjackrus.NewHook(opts, ll, &logrus.JSONFormatter{}, nil)
		if err != nil {
			log.Fatal(err)
		}
		logrus.AddHook(hook)
	}

	log.Trace("Enter onlyoneMain")
	defer log.Trace("Exit onlyoneMain")
	if profileCPUFilename != "" {
		f, err := os.Create(profileCPUFilename)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		defer log.Infof("wrote CPU profile to %s", profileCPUFilename)
	}

	id, err := identity.Resolve(s.Identity)
	if err != nil {
		return err
	}
	namespace, err := s.Namespace()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"version":  ctx.App.Version,
		"identity": id,
		"scope":    namespace,
	}).Info()

	processName := id.String()
	if exe, err := os.Executable(); err == nil {
		processName = filepath.Base(exe)
	}

	instance, err := app.Launch(app.Options{
		Identity:    id,
		ProcessName: processName,
		Title:       s.WindowTitle,
		Tokens: singleinstance.NewTokenService(singleinstance.TokenOptions{
			Namespace: namespace,
			Dir:       s.LockDir,
		}),
		Desktop: desktop.Current(),
	})
	if err != nil {
		// Token failures and window failures are fatal.
		if !errors.Is(err, singleinstance.InstanceAlreadyExistsError) {
			return err
		}
		if code := app.ExitCode(err); code != app.ExitHandedOff {
			return cli.Exit(err.Error(), code)
		}
		log.Info("handed off to the running instance")
		return nil
	}

	c := configurator.New(configFilename, file)
	c.Subscribe(func(cfg configurator.Config) {
		if cfg.WindowTitle == instance.Window.Title() {
			return
		}
		if err := instance.Window.SetTitle(cfg.WindowTitle); err != nil {
			log.Warnf("unable to retitle window: %s", err)
			return
		}
		tray.SetTitle(cfg.WindowTitle)
	})
	c.Watch()
	defer c.Close()

	go func() {
		<-instance.Window.Done()
		log.Debug("primary window closed")
		tray.Quit()
	}()

	systray.Run(tray.Start(s.WindowTitle, func(m tray.Message) {
		log.Debugf("%s clicked", m)
		switch m {
		case tray.SystrayShowWindow:
			if err := instance.Window.Show(); err != nil {
				log.Warnf("unable to show window: %s", err)
			}
		case tray.SystrayRefreshConfig:
			c.Refresh()
		case tray.SystrayQuit:
			instance.Window.Close()
		}
	}), tray.Stop(instance.Window.Close))
	log.Info("Exiting...")

	if profileMemoryFilename != "" {
		f, err := os.Create(profileMemoryFilename)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
		log.Infof("wrote memory profile to %s", profileMemoryFilename)
	}

	return nil
}
