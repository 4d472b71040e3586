package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
)

// maxSuggestDistance bounds the edit distance of a "did you mean" hint.
const maxSuggestDistance = 3

// Conflict is one key symbol claimed by several actions.
type Conflict struct {
	Key     string
	Actions []Action
}

// ConflictError is returned by Build when the action set is ambiguous.
type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		names := make([]string, len(c.Actions))
		for i, a := range c.Actions {
			names[i] = a.String()
		}
		parts = append(parts, fmt.Sprintf("conflict key %q with actions %s", c.Key, strings.Join(names, ", ")))
	}
	return strings.Join(parts, "; ")
}

// Table maps key symbols to the enabled actions.
type Table struct {
	actions []Action
	keys    map[Action][]string
	index   map[string]Action
}

type buildOptions struct {
	overrides map[string][]string
}

// Option configures Build.
type Option func(*buildOptions)

// WithOverrides replaces the default keys of actions by name
// (e.g. {"Quit": ["q", "esc"]}). Overrides naming actions outside the
// enabled set are ignored; unknown names are an error.
func WithOverrides(overrides map[string][]string) Option {
	return func(o *buildOptions) {
		o.overrides = overrides
	}
}

// Build creates a table for actions. It fails if a symbol is bound to more
// than one distinct action, if an override names an unknown action, or if an
// action ends up with no keys.
func Build(actions []Action, opts ...Option) (*Table, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateOverrides(o.overrides); err != nil {
		return nil, err
	}

	t := &Table{
		keys:  make(map[Action][]string),
		index: make(map[string]Action),
	}

	claims := make(map[string][]Action)
	for _, a := range actions {
		if _, seen := t.keys[a]; seen {
			continue
		}

		keys := a.DefaultKeys()
		if override, ok := o.overrides[a.String()]; ok {
			keys = normalizeKeys(override)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %s has no keys", a)
		}

		t.actions = append(t.actions, a)
		t.keys[a] = keys
		for _, k := range keys {
			if !containsAction(claims[k], a) {
				claims[k] = append(claims[k], a)
			}
		}
	}

	var conflicts []Conflict
	for k, claimants := range claims {
		if len(claimants) > 1 {
			conflicts = append(conflicts, Conflict{Key: k, Actions: claimants})
			continue
		}
		t.index[k] = claimants[0]
	}
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool {
			return conflicts[i].Key < conflicts[j].Key
		})
		return nil, &ConflictError{Conflicts: conflicts}
	}

	return t, nil
}

// MustBuild is like Build but panics on error. Only for fixed action sets.
func MustBuild(actions []Action, opts ...Option) *Table {
	t, err := Build(actions, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the action bound to symbol.
func (t *Table) Resolve(symbol string) (Action, bool) {
	a, ok := t.index[symbol]
	return a, ok
}

// Actions returns the enabled actions in build order.
func (t *Table) Actions() []Action {
	out := make([]Action, len(t.actions))
	copy(out, t.actions)
	return out
}

// Keys returns the symbols bound to a.
func (t *Table) Keys(a Action) []string {
	return append([]string(nil), t.keys[a]...)
}

// Enabled reports whether a is part of the table.
func (t *Table) Enabled(a Action) bool {
	_, ok := t.keys[a]
	return ok
}

// Binding returns a bubbles key binding for a.
func (t *Table) Binding(a Action) key.Binding {
	keys := t.keys[a]
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), a.Description()),
	)
}

// ShortHelp returns the navigation bindings for the mini help view.
func (t *Table) ShortHelp() []key.Binding {
	var bindings []key.Binding
	for _, a := range t.actions {
		if a.Kind == Scale {
			continue
		}
		bindings = append(bindings, t.Binding(a))
	}
	return bindings
}

// FullHelp returns every binding, navigation first and scale levels second.
func (t *Table) FullHelp() [][]key.Binding {
	var nav, scale []key.Binding
	for _, a := range t.actions {
		if a.Kind == Scale {
			scale = append(scale, t.Binding(a))
		} else {
			nav = append(nav, t.Binding(a))
		}
	}
	groups := [][]key.Binding{nav}
	if len(scale) > 0 {
		groups = append(groups, scale)
	}
	return groups
}

func validateOverrides(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	known := make(map[string]bool)
	for _, a := range FullActions() {
		known[a.String()] = true
	}

	var unknown []string
	for name := range overrides {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	for i, name := range unknown {
		if hint := suggestAction(name); hint != "" {
			unknown[i] = fmt.Sprintf("%s (did you mean %s?)", name, hint)
		}
	}
	return fmt.Errorf("unknown action in key overrides: %s", strings.Join(unknown, ", "))
}

// suggestAction returns the action name closest to name, ignoring case, or
// "" if none is close enough.
func suggestAction(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, a := range FullActions() {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(a.String()))
		if dist < bestDist {
			best, bestDist = a.String(), dist
		}
	}
	return best
}

func normalizeKeys(keys []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func containsAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
