//go:build !windows

package desktop

var current = NewMemory()

// Current returns the process desktop. Outside Windows there is no
// windowing system shared between processes, so windows and tags only
// exist inside this process.
func Current() Desktop {
	return current
}
