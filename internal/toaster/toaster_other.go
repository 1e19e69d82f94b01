//go:build !windows

package toaster

// There is no toast service to push to, entries are dropped.
func notifier(string) func(title, message string) error {
	return func(string, string) error { return nil }
}
