package configurator

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestReadDefaults(t *testing.T) {
	c, err := Read(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if c != Default() {
		t.Fatalf("config=%+v want=%+v", c, Default())
	}
}

func TestReadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "identity: App.exe\nnotifications: true\n")

	c, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := Config{Identity: "App.exe", Scope: "local", WindowTitle: "OnlyOne", Notifications: true}
	if c != want {
		t.Fatalf("config=%+v want=%+v", c, want)
	}
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "identity: [unterminated\n")
	if _, err := Read(path); err == nil {
		t.Fatalf("Read accepted invalid yaml")
	}
}

func TestNamespace(t *testing.T) {
	cases := map[string]string{"": "Local", "local": "Local", "Global": "Global"}
	for scope, want := range cases {
		got, err := Config{Scope: scope}.Namespace()
		if err != nil || got != want {
			t.Fatalf("Namespace(%q)=%q,%v want=%q", scope, got, err, want)
		}
	}
	if _, err := (Config{Scope: "session"}).Namespace(); err == nil {
		t.Fatalf("unknown scope accepted")
	}
}

func TestReloadKeepsStartupOnlyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "identity: App.exe\nwindow_title: First\n")
	initial, err := Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	c := New(path, initial)
	var got []Config
	c.Subscribe(func(cfg Config) { got = append(got, cfg) })

	writeConfig(t, path, "identity: Other.exe\nscope: global\nwindow_title: Second\n")
	c.reload()

	if len(got) != 1 {
		t.Fatalf("subscriber calls=%d want=1", len(got))
	}
	cur := c.Config()
	if cur.WindowTitle != "Second" {
		t.Fatalf("title=%q want=%q", cur.WindowTitle, "Second")
	}
	if cur.Identity != "App.exe" || cur.Scope != "local" {
		t.Fatalf("startup-only fields changed: %+v", cur)
	}
	if got[0] != cur {
		t.Fatalf("subscriber saw %+v want %+v", got[0], cur)
	}
}

func TestSubscribersRunOutsideTheLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "window_title: First\n")
	initial, _ := Read(path)
	c := New(path, initial)

	var seen string
	c.Subscribe(func(Config) {
		seen = c.Config().WindowTitle
		c.Subscribe(func(Config) {})
	})

	writeConfig(t, path, "window_title: Second\n")
	c.reload()
	if seen != "Second" {
		t.Fatalf("subscriber read title=%q want=%q", seen, "Second")
	}

	writeConfig(t, path, "window_title: Third\n")
	c.reload()
	if seen != "Third" {
		t.Fatalf("subscriber read title=%q want=%q", seen, "Third")
	}
}

func TestReloadIgnoresBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "window_title: Good\n")
	initial, _ := Read(path)
	c := New(path, initial)
	called := false
	c.Subscribe(func(Config) { called = true })

	writeConfig(t, path, "window_title: [\n")
	c.reload()
	if called || c.Config().WindowTitle != "Good" {
		t.Fatalf("broken file replaced the config: %+v", c.Config())
	}
}

func TestWatchPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "window_title: First\n")
	initial, _ := Read(path)

	c := New(path, initial)
	c.debounce = 50 * time.Millisecond
	titles := make(chan string, 4)
	c.Subscribe(func(cfg Config) { titles <- cfg.WindowTitle })
	c.Watch()
	defer c.Close()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "window_title: Second\n")

	select {
	case got := <-titles:
		if got != "Second" {
			t.Fatalf("title=%q want=%q", got, "Second")
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("config change not picked up")
	}
}

func TestManualRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onlyone.yml")
	writeConfig(t, path, "window_title: First\n")
	initial, _ := Read(path)

	c := New(path, initial)
	c.debounce = 10 * time.Millisecond
	titles := make(chan string, 4)
	c.Subscribe(func(cfg Config) { titles <- cfg.WindowTitle })
	c.Watch()
	defer c.Close()

	c.Refresh()
	select {
	case got := <-titles:
		if got != "First" {
			t.Fatalf("title=%q want=%q", got, "First")
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("manual refresh not applied")
	}
}
