package singleinstance

// Token is a handle on a named instance token. Holding it open is what
// marks an instance as running; the OS drops it when the process exits.
type Token interface {
	Close() error
}

// TokenService creates named instance tokens.
type TokenService interface {
	// Create opens the token called name, creating it if needed. existed
	// reports that it was already there, in which case the returned handle
	// does not make the caller the owner.
	Create(name string) (tok Token, existed bool, err error)
}

type TokenOptions struct {
	// Namespace is the kernel object namespace on Windows, "Local" or
	// "Global". Empty means no prefix.
	Namespace string
	// Dir holds lock files on platforms without named kernel objects.
	// Empty means $XDG_RUNTIME_DIR, falling back to os.TempDir().
	Dir string
}
