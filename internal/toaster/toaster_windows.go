//go:build windows

package toaster

import "github.com/go-toast/toast"

func notifier(appID string) func(title, message string) error {
	return func(title, message string) error {
		n := toast.Notification{
			AppID:   appID,
			Title:   title,
			Message: message,
		}
		return n.Push()
	}
}
