package commands

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

type fakeAttacher struct {
	attached map[*HandlerToken]int
	calls    []string
}

func newFakeAttacher() *fakeAttacher {
	return &fakeAttacher{attached: make(map[*HandlerToken]int)}
}

func (f *fakeAttacher) Attach(cmd *CommandDescriptor, token *HandlerToken) {
	f.attached[token]++
	f.calls = append(f.calls, "attach "+cmd.Name)
}

func (f *fakeAttacher) Detach(cmd *CommandDescriptor, token *HandlerToken) {
	f.attached[token]--
	f.calls = append(f.calls, "detach "+cmd.Name)
}

func noop(*Event) error { return nil }

func descriptor(name string, builtin bool) *CommandDescriptor {
	return &CommandDescriptor{
		Name:     name,
		Info:     name + " info",
		Category: "misc",
		Builtin:  builtin,
		Handlers: []*HandlerToken{NewToken(name), NewToken(name + "2")},
		Func:     noop,
	}
}

func keys(m map[string]*CommandDescriptor) string {
	k := make([]string, 0, len(m))
	for n := range m {
		k = append(k, n)
	}
	sort.Strings(k)
	return strings.Join(k, ",")
}

func TestSolveCommands(t *testing.T) {
	abc := descriptor("a|b|c", false)
	xy := descriptor("x/y", false)
	ping := descriptor("ping", false)

	solved, aliases := SolveCommands(map[string]*CommandDescriptor{
		"a|b|c": abc,
		"x/y":   xy,
		"ping":  ping,
	})

	for _, name := range []string{"a", "b", "c"} {
		if aliases[name] != abc {
			t.Fatalf("alias %s does not resolve to a|b|c", name)
		}
	}
	if solved["a | b | c"] != abc {
		t.Fatalf("joined label does not resolve")
	}
	if solved["x | y"] != xy || aliases["x"] != xy || aliases["y"] != xy {
		t.Fatalf("slash separated aliases do not resolve")
	}
	if solved["ping"] != ping {
		t.Fatalf("single name should be kept as is")
	}
	if _, ok := aliases["ping"]; ok {
		t.Fatalf("single names are not repeated as aliases")
	}
	if got := keys(solved); got != "a | b | c,ping,x | y" {
		t.Fatalf("unexpected normalized keys %s", got)
	}

	s, a := SolveCommands(map[string]*CommandDescriptor{})
	if len(s) != 0 || len(a) != 0 {
		t.Fatalf("empty input should give empty maps")
	}
}

func TestRegisterAttachesEnabledOnly(t *testing.T) {
	f := newFakeAttacher()
	r := NewRegistry(f)

	on := descriptor("ping", false)
	off := descriptor("pong", false)
	r.Register(on)
	r.RegisterDisabled(off)

	for _, h := range on.Handlers {
		if f.attached[h] != 1 {
			t.Fatalf("enabled handler not attached once")
		}
	}
	for _, h := range off.Handlers {
		if f.attached[h] != 0 {
			t.Fatalf("disabled handler attached")
		}
	}
	if names, _ := r.Categories.Names("MISC"); strings.Join(names, ",") != "ping,pong" {
		t.Fatalf("unexpected category index %v", names)
	}
	if on.FuncName != "noop" || !strings.HasSuffix(on.File, "registry_test.go") || on.Line == 0 {
		t.Fatalf("source not resolved: %s %s:%d", on.FuncName, on.File, on.Line)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry(newFakeAttacher())
	r.RegisterDisabled(descriptor("dup", false))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate register")
		}
	}()
	r.Register(descriptor("dup", false))
}

func TestDisableEnableWholeKey(t *testing.T) {
	f := newFakeAttacher()
	r := NewRegistry(f)
	ping := descriptor("ping", false)
	r.Register(ping)

	m, err := r.Disable("ping")
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if m.From != "ping" || m.To != "ping" || strings.Join(m.Names, ",") != "ping" {
		t.Fatalf("unexpected move %+v", m)
	}
	if keys(r.Enabled) != "" || keys(r.Disabled) != "ping" {
		t.Fatalf("unexpected maps %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	for _, h := range ping.Handlers {
		if f.attached[h] != 0 {
			t.Fatalf("handler still attached after disable")
		}
	}

	if _, err := r.Enable("ping"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if keys(r.Enabled) != "ping" || keys(r.Disabled) != "" {
		t.Fatalf("unexpected maps after enable %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	for _, h := range ping.Handlers {
		if f.attached[h] != 1 {
			t.Fatalf("handler not re-attached exactly once")
		}
	}
}

func TestEnableByJoinedLabelMovesComposite(t *testing.T) {
	r := NewRegistry(newFakeAttacher())
	r.RegisterDisabled(descriptor("afk|sleep", false))

	m, err := r.Enable("afk | sleep")
	if err != nil {
		t.Fatalf("enable: %v", err)
	}
	if m.To != "afk|sleep" || strings.Join(m.Names, ", ") != "afk, sleep" {
		t.Fatalf("unexpected move %+v", m)
	}
	if keys(r.Enabled) != "afk|sleep" {
		t.Fatalf("composite key not kept: %s", keys(r.Enabled))
	}
}

func TestDisableBySubAliasSplitsKey(t *testing.T) {
	r := NewRegistry(newFakeAttacher())
	afk := descriptor("afk|sleep", false)
	r.Register(descriptor("ping", false))
	r.Register(afk)

	m, err := r.Disable("sleep")
	if err != nil {
		t.Fatalf("disable: %v", err)
	}
	if m.From != "afk|sleep" || m.To != "sleep" || strings.Join(m.Names, ",") != "sleep" {
		t.Fatalf("unexpected move %+v", m)
	}
	if keys(r.Enabled) != "ping" || keys(r.Disabled) != "sleep" {
		t.Fatalf("unexpected maps %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	if r.Disabled["sleep"] != afk {
		t.Fatalf("descriptor changed while moving")
	}
	_, aliases := SolveCommands(r.Enabled)
	if _, ok := aliases["afk"]; ok {
		t.Fatalf("afk should no longer resolve among enabled commands")
	}

	// the split is sticky: afk is gone for good
	if _, err := r.Enable("afk"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected afk to be unknown, got %v", err)
	}
	if _, err := r.Enable("sleep"); err != nil {
		t.Fatalf("enable sleep: %v", err)
	}
	if keys(r.Enabled) != "ping,sleep" {
		t.Fatalf("unexpected enabled keys %s", keys(r.Enabled))
	}
}

func TestMoveOnWrongSideIsNotFound(t *testing.T) {
	f := newFakeAttacher()
	r := NewRegistry(f)
	r.Register(descriptor("ping", false))
	r.RegisterDisabled(descriptor("pong", false))
	before := len(f.calls)

	if _, err := r.Enable("ping"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("enable of enabled command: %v", err)
	}
	if _, err := r.Disable("pong"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("disable of disabled command: %v", err)
	}
	if _, err := r.Disable("  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("disable of blank name: %v", err)
	}
	if keys(r.Enabled) != "ping" || keys(r.Disabled) != "pong" {
		t.Fatalf("maps changed: %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	if len(f.calls) != before {
		t.Fatalf("dispatcher touched on failed move: %v", f.calls[before:])
	}
}

func TestDisableBuiltinRefused(t *testing.T) {
	f := newFakeAttacher()
	r := NewRegistry(f)
	help := descriptor("help|h", true)
	r.Register(help)
	before := len(f.calls)

	for _, name := range []string{"help|h", "help", "h"} {
		if _, err := r.Disable(name); !errors.Is(err, ErrBuiltin) {
			t.Fatalf("disable %s: expected ErrBuiltin, got %v", name, err)
		}
	}
	if keys(r.Enabled) != "help|h" || len(r.Disabled) != 0 {
		t.Fatalf("maps changed: %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	if len(f.calls) != before {
		t.Fatalf("builtin handlers detached")
	}
}

func TestLookupPrefersEnabled(t *testing.T) {
	r := NewRegistry(newFakeAttacher())
	afk := descriptor("afk|sleep", false)
	other := descriptor("sleep", false)
	r.Register(afk)
	r.RegisterDisabled(other)

	// "sleep" is a disabled display name and an enabled alias; display names win
	if got, _ := r.Lookup("sleep"); got != other {
		t.Fatalf("expected disabled display name to win over enabled alias")
	}
	if got, _ := r.Lookup("afk"); got != afk {
		t.Fatalf("alias lookup failed")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatalf("unexpected hit")
	}
	if !r.isEnabled(afk) || r.isEnabled(other) {
		t.Fatalf("isEnabled mismatch")
	}
}

func TestUsageFor(t *testing.T) {
	d := &CommandDescriptor{Usage: "`{prefix}afk` or `{prefix}sleep`"}
	if got := d.UsageFor("!"); got != "`!afk` or `!sleep`" {
		t.Fatalf("unexpected usage %s", got)
	}
}

func TestMoveOntoTakenKeyRefused(t *testing.T) {
	f := newFakeAttacher()
	r := NewRegistry(f)
	afk := descriptor("afk|sleep", false)
	sleep := descriptor("sleep", false)
	r.Register(afk)
	r.RegisterDisabled(sleep)
	before := len(f.calls)

	if _, err := r.Disable("sleep"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if keys(r.Enabled) != "afk|sleep" || keys(r.Disabled) != "sleep" {
		t.Fatalf("maps changed: %s / %s", keys(r.Enabled), keys(r.Disabled))
	}
	if r.Enabled["afk|sleep"] != afk || r.Disabled["sleep"] != sleep {
		t.Fatalf("descriptors swapped")
	}
	if len(f.calls) != before {
		t.Fatalf("dispatcher touched on refused move: %v", f.calls[before:])
	}
	for _, h := range afk.Handlers {
		if f.attached[h] != 1 {
			t.Fatalf("afk handler detached")
		}
	}

	// a free alias still moves
	if _, err := r.Disable("afk"); err != nil {
		t.Fatalf("disable afk: %v", err)
	}
	if keys(r.Disabled) != "afk,sleep" || r.Disabled["afk"] != afk || r.Disabled["sleep"] != sleep {
		t.Fatalf("unexpected disabled map %s", keys(r.Disabled))
	}
}
