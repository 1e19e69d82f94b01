package singleinstance

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/GregoryDosh/onlyone/internal/identity"
)

// commLength is how much of an executable name /proc/<pid>/stat keeps.
const commLength = 15

// NotFoundError is returned when the token exists but no window carries the
// tag. PIDs lists other processes running the same executable: when there
// are some the instance is most likely still starting or shutting down,
// when there are none the token was probably left behind.
type NotFoundError struct {
	Identity identity.Identity
	PIDs     []int
}

func (e *NotFoundError) Error() string {
	if len(e.PIDs) == 0 {
		return fmt.Sprintf("%s: token for %q exists but no process is running it", ActivationTargetNotFoundError, e.Identity)
	}
	return fmt.Sprintf("%s: %q is running as pid %v without a tagged window", ActivationTargetNotFoundError, e.Identity, e.PIDs)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ActivationTargetNotFoundError || target == InstanceAlreadyExistsError
}

// runningInstances lists other processes whose executable is processName.
func (g *Guard) runningInstances() []int {
	procs, err := g.processes()
	if err != nil {
		log.Debugf("unable to list processes: %s", err)
		return nil
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if sameExecutable(p.Executable(), g.processName) {
			pids = append(pids, p.Pid())
		}
	}
	sort.Ints(pids)
	return pids
}

func sameExecutable(exe, name string) bool {
	if strings.EqualFold(exe, name) {
		return true
	}
	// Linux truncates the name it reports.
	return len(exe) == commLength && len(name) > commLength && strings.EqualFold(exe, name[:commLength])
}
