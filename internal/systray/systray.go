package systray

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/GregoryDosh/onlyone/internal/icon"
	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("function", "systray")
)

// Start returns the systray onReady callback. messageHandler is called from
// the menu goroutine for each click; after SystrayQuit the tray shuts down.
func Start(title string, messageHandler func(Message)) func() {

	return func() {
		log.Trace("Enter systrayStart")
		defer log.Trace("Exit systrayStart")

		systray.SetIcon(icon.Main)
		systray.SetTitle(title)
		systray.SetTooltip(title)

		mShow := systray.AddMenuItem("Show", "Bring the window to the front")
		mReloadConfig := systray.AddMenuItem("Reload Config", "Manual reload of the config file")

		systray.AddSeparator()
		mQuit := systray.AddMenuItem("Quit", "Quit "+title)

		sigintc := make(chan os.Signal, 1)
		signal.Notify(sigintc, os.Interrupt, syscall.SIGTERM)

		go func() {
			defer systray.Quit()
			defer log.Debug("quitting systray")
			for {
				select {
				case <-mShow.ClickedCh:
					messageHandler(SystrayShowWindow)
				case <-mReloadConfig.ClickedCh:
					messageHandler(SystrayRefreshConfig)
				case <-sigintc:
					messageHandler(SystrayQuit)
					return
				case <-mQuit.ClickedCh:
					messageHandler(SystrayQuit)
					return
				}
			}
		}()
	}

}

// SetTitle updates the tray title and tooltip after a config reload.
func SetTitle(title string) {
	systray.SetTitle(title)
	systray.SetTooltip(title)
}

func Stop(cleanup func()) func() {
	return func() {
		log.Trace("Enter systrayStop")
		defer log.Trace("Exit systrayStop")
		if cleanup != nil {
			cleanup()
		}
	}
}

func Quit() {
	systray.Quit()
}
