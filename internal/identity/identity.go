package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
)

var (
	log                = logrus.WithField("module", "identity")
	EmptyIdentityError = errors.New("application identity is empty")
)

// MaxLength is the longest identity accepted, in UTF-16 code units. Window
// property names are string atoms capped at 255 characters, and the token
// name carries a namespace prefix of up to len(`Global\`) on top.
const MaxLength = 255 - len(`Global\`)

// Identity names an application. It is the instance token name and the
// window tag key, so every copy of the same application must compute the
// same value.
type Identity string

// New normalises name into an Identity.
func New(name string) (Identity, error) {
	name = strings.TrimSpace(name)
	// Backslashes split kernel object namespaces and slashes split paths.
	name = strings.NewReplacer(`\`, "_", "/", "_").Replace(name)
	if name == "" {
		return "", EmptyIdentityError
	}
	if len(utf16.Encode([]rune(name))) > MaxLength {
		return "", fmt.Errorf("application identity longer than %d characters: %q", MaxLength, name)
	}
	return Identity(name), nil
}

// FromExecutable derives the identity from the base name of the running
// executable after resolving symlinks.
func FromExecutable() (Identity, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	} else {
		log.Debugf("unable to resolve symlinks for %s: %s", exe, err)
	}
	return New(filepath.Base(exe))
}

// Resolve returns New(override) when override is set and FromExecutable
// otherwise.
func Resolve(override string) (Identity, error) {
	if strings.TrimSpace(override) != "" {
		return New(override)
	}
	return FromExecutable()
}

func (i Identity) String() string {
	return string(i)
}
