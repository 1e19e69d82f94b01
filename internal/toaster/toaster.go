package toaster

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Toast is a logrus hook that shows entries at or above minLevel as desktop
// notifications.
type Toast struct {
	appID     string
	minLevel  logrus.Level
	formatter logrus.Formatter
	push      func(title, message string) error
}

func (t *Toast) Fire(entry *logrus.Entry) error {
	title, message, err := t.notification(entry)
	if err != nil {
		return err
	}
	return t.push(title, message)
}

func (t *Toast) notification(entry *logrus.Entry) (string, string, error) {
	msg, err := t.formatter.Format(entry)
	if err != nil {
		return "", "", err
	}

	f := map[string]interface{}{}
	if err := json.Unmarshal(msg, &f); err != nil {
		return "", "", err
	}

	l, ok := f["level"]
	if !ok {
		l = "Unknown"
	}

	m, ok := f["msg"].(string)
	if !ok || m == "" {
		m = "Unknown message."
	}

	return fmt.Sprintf("%s - %s", t.appID, l), m, nil
}

func (t *Toast) Levels() []logrus.Level {
	return logrus.AllLevels[:t.minLevel+1]
}

// New needs a formatter that emits JSON with "level" and "msg" keys.
func New(appID string, level logrus.Level, formatter logrus.Formatter) *Toast {
	return &Toast{
		appID:     appID,
		minLevel:  level,
		formatter: formatter,
		push:      notifier(appID),
	}
}
