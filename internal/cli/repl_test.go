package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error        { return f.record("whoami") }
func (f *fakeExec) Matches(ctx context.Context) error       { return f.record("matches") }
func (f *fakeExec) MyMatches(ctx context.Context) error     { return f.record("mymatches") }
func (f *fakeExec) CreateMatch(ctx context.Context) error   { return f.record("creatematch") }
func (f *fakeExec) CompleteMatch(ctx context.Context) error { return f.record("completematch") }
func (f *fakeExec) Tournaments(ctx context.Context) error   { return f.record("tournaments") }
func (f *fakeExec) JoinTournament(ctx context.Context) error {
	return f.record("join")
}
func (f *fakeExec) LeaveTournament(ctx context.Context) error {
	return f.record("leave")
}
func (f *fakeExec) ChallongeStatus(ctx context.Context) error {
	return f.record("challonge")
}
func (f *fakeExec) ChallongeConnect(ctx context.Context) error {
	return f.record("connect")
}
func (f *fakeExec) ChallongeCallback(ctx context.Context) error {
	return f.record("callback")
}
func (f *fakeExec) ChallongeRefresh(ctx context.Context) error {
	return f.record("refresh")
}
func (f *fakeExec) ChallongeDisconnect(ctx context.Context) error {
	return f.record("disconnect")
}
func (f *fakeExec) AdminUsers(ctx context.Context) error { return f.record("users") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"matches",
		"tournaments",
		"connect",
		"callback",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "whoami", "matches", "tournaments", "connect", "callback"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("bogus\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("matches\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "matches" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
