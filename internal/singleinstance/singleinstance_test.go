package singleinstance

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/GregoryDosh/onlyone/internal/desktop"
	"github.com/GregoryDosh/onlyone/internal/identity"
	"github.com/mitchellh/go-ps"
)

type fakeTokens struct {
	held    map[string]bool
	creates int
	closes  int
	err     error
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{held: map[string]bool{}}
}

func (f *fakeTokens) Create(name string) (Token, bool, error) {
	f.creates++
	if f.err != nil {
		return nil, false, f.err
	}
	if f.held[name] {
		return &fakeToken{svc: f, name: name}, true, nil
	}
	f.held[name] = true
	return &fakeToken{svc: f, name: name, owner: true}, false, nil
}

type fakeToken struct {
	svc   *fakeTokens
	name  string
	owner bool
}

// Close on the owner's handle stands in for the owning process exiting.
func (t *fakeToken) Close() error {
	t.svc.closes++
	if t.owner {
		delete(t.svc.held, t.name)
	}
	return nil
}

type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int { return p.pid }
func (p fakeProcess) PPid() int { return 1 }
func (p fakeProcess) Executable() string { return p.exe }

func newGuard(t *testing.T, tokens TokenService, d desktop.Desktop) *Guard {
	t.Helper()
	id, err := identity.New("App.exe")
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	g := New(id, WithTokenService(tokens), WithDesktop(d))
	g.processes = func() ([]ps.Process, error) { return nil, nil }
	return g
}

func mustClaim(t *testing.T, g *Guard) {
	t.Helper()
	c, err := g.TryClaim()
	if err != nil {
		t.Fatalf("TryClaim error: %v", err)
	}
	if c != Claimed {
		t.Fatalf("claim=%s want=%s", c, Claimed)
	}
}

// primaryWindow creates a window the way the window package does: created
// first, tagged afterwards.
func primaryWindow(t *testing.T, g *Guard, d *desktop.Memory) desktop.Window {
	t.Helper()
	hook, err := g.Hook()
	if err != nil {
		t.Fatalf("Hook error: %v", err)
	}
	w := d.Create("App")
	hook.OnPrimaryWindowCreated(w)
	return w
}

func TestTryClaim(t *testing.T) {
	tokens := newFakeTokens()
	d := desktop.NewMemory()
	first := newGuard(t, tokens, d)
	second := newGuard(t, tokens, d)

	mustClaim(t, first)
	c, err := second.TryClaim()
	if err != nil {
		t.Fatalf("TryClaim error: %v", err)
	}
	if c != AlreadyExists {
		t.Fatalf("claim=%s want=%s", c, AlreadyExists)
	}
	if tokens.closes != 1 {
		t.Fatalf("closes=%d want=1 (duplicate handle)", tokens.closes)
	}
	if !tokens.held["App.exe"] {
		t.Fatalf("closing the duplicate handle released the owner's token")
	}

	mustClaim(t, first)
	if tokens.creates != 2 {
		t.Fatalf("creates=%d want=2", tokens.creates)
	}
}

func TestTryClaimFailure(t *testing.T) {
	tokens := newFakeTokens()
	tokens.err = errors.New("access denied")
	g := newGuard(t, tokens, desktop.NewMemory())

	_, err := g.TryClaim()
	if !errors.Is(err, TokenCreationFailedError) {
		t.Fatalf("err=%v want %v", err, TokenCreationFailedError)
	}
	if !errors.Is(g.Check(), TokenCreationFailedError) {
		t.Fatalf("Check did not surface the token failure")
	}
	if _, err := g.Hook(); !errors.Is(err, NotClaimedError) {
		t.Fatalf("Hook err=%v want=%v", err, NotClaimedError)
	}
}

func TestTryClaimEmptyIdentity(t *testing.T) {
	g := New("", WithTokenService(newFakeTokens()), WithDesktop(desktop.NewMemory()))
	_, err := g.TryClaim()
	if !errors.Is(err, TokenCreationFailedError) || !errors.Is(err, identity.EmptyIdentityError) {
		t.Fatalf("err=%v", err)
	}
}

func TestSecondInstanceActivatesFirst(t *testing.T) {
	tokens := newFakeTokens()
	d := &flakyDesktop{Memory: desktop.NewMemory()}

	first := newGuard(t, tokens, d)
	if err := first.Check(); err != nil {
		t.Fatalf("first Check error: %v", err)
	}
	w := primaryWindow(t, first, d.Memory)
	other := d.Create("Other")
	_ = d.SetForeground(other)
	if err := d.Minimize(w); err != nil {
		t.Fatalf("Minimize error: %v", err)
	}

	second := newGuard(t, tokens, d)
	if err := second.Check(); !errors.Is(err, InstanceAlreadyExistsError) {
		t.Fatalf("second Check err=%v want=%v", err, InstanceAlreadyExistsError)
	}
	if errors.Is(second.Check(), ActivationTargetNotFoundError) {
		t.Fatalf("activation reported as not found")
	}
	if got := d.Foreground(); got != w {
		t.Fatalf("foreground=%d want=%d", got, w)
	}
	if d.IsMinimized(w) {
		t.Fatalf("window still minimized")
	}
	if d.restores != 1 {
		t.Fatalf("restores=%d want=1", d.restores)
	}
	if _, err := second.Hook(); !errors.Is(err, NotClaimedError) {
		t.Fatalf("second instance got a hook: %v", err)
	}
}

func TestActivationSkipsRestoreWhenVisible(t *testing.T) {
	tokens := newFakeTokens()
	d := &flakyDesktop{Memory: desktop.NewMemory()}
	first := newGuard(t, tokens, d)
	mustClaim(t, first)
	w := primaryWindow(t, first, d.Memory)
	_ = d.SetForeground(d.Create("Other"))

	second := newGuard(t, tokens, d)
	if got := second.FindAndActivate(); got != Activated {
		t.Fatalf("activation=%s want=%s", got, Activated)
	}
	if d.restores != 0 {
		t.Fatalf("restores=%d want=0", d.restores)
	}
	if got := d.Foreground(); got != w {
		t.Fatalf("foreground=%d want=%d", got, w)
	}
}

func TestActivationForegroundsPopup(t *testing.T) {
	tokens := newFakeTokens()
	d := desktop.NewMemory()
	first := newGuard(t, tokens, d)
	mustClaim(t, first)
	w := primaryWindow(t, first, d)
	popup, err := d.CreatePopup(w, "Save changes?")
	if err != nil {
		t.Fatalf("CreatePopup error: %v", err)
	}

	second := newGuard(t, tokens, d)
	if got := second.FindAndActivate(); got != Activated {
		t.Fatalf("activation=%s want=%s", got, Activated)
	}
	if got := d.Foreground(); got != popup {
		t.Fatalf("foreground=%d want popup %d", got, popup)
	}
}

func TestFirstTaggedWindowWins(t *testing.T) {
	d := desktop.NewMemory()
	back := d.Create("back")
	front := d.Create("front")
	_ = d.SetTag(back, "App.exe")
	_ = d.SetTag(front, "App.exe")

	g := newGuard(t, newFakeTokens(), d)
	if got := g.FindAndActivate(); got != Activated {
		t.Fatalf("activation=%s want=%s", got, Activated)
	}
	if got := d.Foreground(); got != front {
		t.Fatalf("foreground=%d want=%d", got, front)
	}
}

func TestNotFoundBeforeWindowCreated(t *testing.T) {
	tokens := newFakeTokens()
	d := desktop.NewMemory()
	first := newGuard(t, tokens, d)
	mustClaim(t, first)
	d.Create("unrelated")

	second := newGuard(t, tokens, d)
	second.processes = func() ([]ps.Process, error) {
		return []ps.Process{
			fakeProcess{pid: os.Getpid(), exe: "App.exe"},
			fakeProcess{pid: 4242, exe: "app.exe"},
			fakeProcess{pid: 17, exe: "explorer.exe"},
			fakeProcess{pid: 99, exe: "App.exe"},
		}, nil
	}

	if got := second.FindAndActivate(); got != NotFound {
		t.Fatalf("activation=%s want=%s", got, NotFound)
	}

	err := second.Check()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v want *NotFoundError", err)
	}
	if !errors.Is(err, ActivationTargetNotFoundError) || !errors.Is(err, InstanceAlreadyExistsError) {
		t.Fatalf("NotFoundError does not match its sentinels: %v", err)
	}
	if want := []int{99, 4242}; !reflect.DeepEqual(nf.PIDs, want) {
		t.Fatalf("pids=%v want=%v", nf.PIDs, want)
	}
}

func TestNotFoundOrphanedToken(t *testing.T) {
	tokens := newFakeTokens()
	tokens.held["App.exe"] = true

	g := newGuard(t, tokens, desktop.NewMemory())
	err := g.Check()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v want *NotFoundError", err)
	}
	if len(nf.PIDs) != 0 {
		t.Fatalf("pids=%v want none", nf.PIDs)
	}
}

func TestCrashedOwnerFreesToken(t *testing.T) {
	tokens := newFakeTokens()
	d := desktop.NewMemory()
	first := newGuard(t, tokens, d)
	mustClaim(t, first)

	// The owner dies before creating its window.
	_ = first.token.Close()

	second := newGuard(t, tokens, d)
	if err := second.Check(); err != nil {
		t.Fatalf("Check after crash err=%v want nil", err)
	}
}

func TestGetLock(t *testing.T) {
	tokens := newFakeTokens()
	d := desktop.NewMemory()
	g, err := GetLock("App.exe", WithTokenService(tokens), WithDesktop(d))
	if err != nil {
		t.Fatalf("GetLock error: %v", err)
	}
	if instance != g {
		t.Fatalf("GetLock did not keep the guard")
	}
	if _, err := GetLock("App.exe", WithTokenService(tokens), WithDesktop(d), WithProcessName("does-not-run.exe")); !errors.Is(err, ActivationTargetNotFoundError) {
		t.Fatalf("second GetLock err=%v", err)
	}
	if instance != g {
		t.Fatalf("failed GetLock replaced the kept guard")
	}
}

func TestSameExecutable(t *testing.T) {
	cases := []struct {
		exe, name string
		want      bool
	}{
		{"App.exe", "App.exe", true},
		{"app.exe", "App.exe", true},
		{"onlyone-desktop", "onlyone-desktop-app", true},
		{"onlyone-deskto", "onlyone-desktop-app", false},
		{"Other.exe", "App.exe", false},
	}
	for _, c := range cases {
		if got := sameExecutable(c.exe, c.name); got != c.want {
			t.Fatalf("sameExecutable(%q, %q)=%t want=%t", c.exe, c.name, got, c.want)
		}
	}
}

func TestClaimStrings(t *testing.T) {
	if Claimed.String() != "claimed" || AlreadyExists.String() != "already exists" {
		t.Fatalf("claim strings: %s, %s", Claimed, AlreadyExists)
	}
	if Activated.String() != "activated" || NotFound.String() != "not found" {
		t.Fatalf("activation strings: %s, %s", Activated, NotFound)
	}
}
