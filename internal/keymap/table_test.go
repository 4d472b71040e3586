package keymap

import (
	"errors"
	"strings"
	"testing"
)

func TestBuild_FullActions(t *testing.T) {
	table, err := Build(FullActions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, a := range FullActions() {
		for _, k := range a.DefaultKeys() {
			got, ok := table.Resolve(k)
			if !ok {
				t.Errorf("key %q did not resolve", k)
				continue
			}
			if got != a {
				t.Errorf("key %q resolved to %s, want %s", k, got, a)
			}
		}
	}
}

func TestBuild_BaseActions(t *testing.T) {
	table := MustBuild(BaseActions())

	if a, ok := table.Resolve("q"); !ok || a != ActionQuit {
		t.Errorf("expected q to resolve to Quit, got %v %v", a, ok)
	}
	if _, ok := table.Resolve("l"); ok {
		t.Error("expected l to be unbound before initialization")
	}
	if table.Enabled(ActionMoveRight) {
		t.Error("expected MoveRight to be disabled")
	}
}

func TestResolve_Unbound(t *testing.T) {
	table := MustBuild(FullActions())
	for _, k := range []string{"x", "", "ctrl+c", "enter"} {
		if _, ok := table.Resolve(k); ok {
			t.Errorf("expected %q to be unbound", k)
		}
	}
}

func TestBuild_Conflict(t *testing.T) {
	overrides := map[string][]string{
		"Reload": {"q"},
	}
	_, err := Build(FullActions(), WithOverrides(overrides))
	if err == nil {
		t.Fatal("expected conflict error")
	}

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected *ConflictError, got %T", err)
	}
	if len(conflictErr.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflictErr.Conflicts))
	}

	msg := err.Error()
	for _, want := range []string{`"q"`, "Quit", "Reload"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestBuild_MultipleConflicts(t *testing.T) {
	overrides := map[string][]string{
		"MoveUp":   {"l", "h"},
		"MoveDown": {"l"},
	}
	_, err := Build(FullActions(), WithOverrides(overrides))

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if len(conflictErr.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d: %v", len(conflictErr.Conflicts), err)
	}

	want := `conflict key "h" with actions MoveLeft, MoveUp; conflict key "l" with actions MoveRight, MoveUp, MoveDown`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestBuild_DuplicateActionIsNotAConflict(t *testing.T) {
	table, err := Build([]Action{ActionQuit, ActionQuit, ScaleTo(3), ScaleTo(3)})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(table.Actions()) != 2 {
		t.Errorf("expected 2 actions, got %d", len(table.Actions()))
	}
}

func TestBuild_UnknownOverride(t *testing.T) {
	_, err := Build(FullActions(), WithOverrides(map[string][]string{"Teleport": {"t"}}))
	if err == nil || !strings.Contains(err.Error(), "Teleport") {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func TestBuild_UnknownOverrideSuggestion(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"moveup", "moveup (did you mean MoveUp?)"},
		{"Relaod", "Relaod (did you mean Reload?)"},
		{"Scale11", "Scale11 (did you mean Scale1?)"},
		{"Teleport", "Teleport"},
	}

	for _, tt := range tests {
		_, err := Build(FullActions(), WithOverrides(map[string][]string{tt.name: {"t"}}))
		if err == nil {
			t.Fatalf("expected error for %q", tt.name)
		}
		if !strings.HasSuffix(err.Error(), ": "+tt.want) {
			t.Errorf("expected message ending in %q, got %q", tt.want, err.Error())
		}
	}
}

func TestBuild_EmptyOverride(t *testing.T) {
	_, err := Build(FullActions(), WithOverrides(map[string][]string{"Quit": {" ", ""}}))
	if err == nil || !strings.Contains(err.Error(), "no keys") {
		t.Errorf("expected no keys error, got %v", err)
	}
}

func TestBuild_OverrideOutsideEnabledSet(t *testing.T) {
	// Reload is overridden to "q" but is not enabled, so there is no conflict.
	table, err := Build(BaseActions(), WithOverrides(map[string][]string{"Reload": {"q"}}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if a, _ := table.Resolve("q"); a != ActionQuit {
		t.Errorf("expected q to resolve to Quit, got %s", a)
	}
}

func TestBuild_Override(t *testing.T) {
	table, err := Build(FullActions(), WithOverrides(map[string][]string{"Quit": {"esc", "Q"}}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := table.Resolve("q"); ok {
		t.Error("expected default q to be replaced")
	}
	if a, ok := table.Resolve("esc"); !ok || a != ActionQuit {
		t.Errorf("expected esc to resolve to Quit")
	}
	if keys := table.Keys(ActionQuit); len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBuild(FullActions(), WithOverrides(map[string][]string{"TabLeft": {"L"}}))
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionQuit, "Quit"},
		{ActionTabRight, "TabRight"},
		{ScaleTo(0), "Scale0"},
		{ScaleTo(7), "Scale7"},
		{ActionReload, "Reload"},
	}
	for _, tt := range tests {
		if tt.action.String() != tt.want {
			t.Errorf("expected %s, got %s", tt.want, tt.action.String())
		}
	}
}

func TestDefaultKeysNonEmpty(t *testing.T) {
	for _, a := range FullActions() {
		if len(a.DefaultKeys()) == 0 {
			t.Errorf("%s has no default keys", a)
		}
	}
}

func TestHelp(t *testing.T) {
	table := MustBuild(FullActions())

	short := table.ShortHelp()
	if len(short) != 8 {
		t.Errorf("expected 8 short help bindings, got %d", len(short))
	}

	full := table.FullHelp()
	if len(full) != 2 || len(full[1]) != 10 {
		t.Fatalf("unexpected full help layout %d groups", len(full))
	}

	quit := table.Binding(ActionQuit)
	if quit.Help().Key != "q" || quit.Help().Desc != "quit" {
		t.Errorf("unexpected quit help %+v", quit.Help())
	}

	base := MustBuild(BaseActions())
	if len(base.FullHelp()) != 1 {
		t.Errorf("expected 1 help group before initialization, got %d", len(base.FullHelp()))
	}
}
