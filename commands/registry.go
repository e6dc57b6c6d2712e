package commands

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName = errors.New("no command name given")
	ErrNotFound  = errors.New("command not found")
	ErrBuiltin   = errors.New("cannot disable a builtin command")
	ErrConflict  = errors.New("another command already uses that name")
)

// Attacher connects handler tokens to the event dispatcher. Calls are not
// assumed to be idempotent.
type Attacher interface {
	Attach(cmd *CommandDescriptor, token *HandlerToken)
	Detach(cmd *CommandDescriptor, token *HandlerToken)
}

// Registry holds the enabled and disabled commands. A descriptor is stored in
// exactly one of the two maps. Callers serialize access.
type Registry struct {
	Enabled    map[string]*CommandDescriptor
	Disabled   map[string]*CommandDescriptor
	Categories CategoryIndex

	attacher Attacher
}

// NewRegistry returns an empty registry that attaches handlers through a.
func NewRegistry(a Attacher) *Registry {
	return &Registry{
		Enabled:    make(map[string]*CommandDescriptor),
		Disabled:   make(map[string]*CommandDescriptor),
		Categories: make(CategoryIndex),
		attacher:   a,
	}
}

// Register adds an enabled command and attaches its handlers. It panics if the
// name is already registered.
func (r *Registry) Register(cmd *CommandDescriptor) {
	r.add(cmd, r.Enabled)
	for _, h := range cmd.Handlers {
		r.attacher.Attach(cmd, h)
	}
}

// RegisterDisabled adds a command that starts out disabled.
func (r *Registry) RegisterDisabled(cmd *CommandDescriptor) {
	r.add(cmd, r.Disabled)
}

func (r *Registry) add(cmd *CommandDescriptor, into map[string]*CommandDescriptor) {
	if _, ok := r.Enabled[cmd.Name]; ok {
		panic(fmt.Sprintf("command %s already registered", cmd.Name))
	}
	if _, ok := r.Disabled[cmd.Name]; ok {
		panic(fmt.Sprintf("command %s already registered", cmd.Name))
	}
	cmd.resolveSource()
	into[cmd.Name] = cmd
	if cmd.Category != "" {
		r.Categories.Add(cmd.Category, cmd.Name)
	}
}

// Move describes a completed enable or disable.
type Move struct {
	Command *CommandDescriptor
	// From is the key removed from the source map, To the key inserted.
	From string
	To   string
	// Names are the aliases affected, for display.
	Names []string
}

// Enable moves a disabled command back to the enabled set.
func (r *Registry) Enable(name string) (*Move, error) {
	return r.move(name, r.Disabled, r.Enabled, false)
}

// Disable moves an enabled, non-builtin command to the disabled set.
func (r *Registry) Disable(name string) (*Move, error) {
	return r.move(name, r.Enabled, r.Disabled, true)
}

// move resolves name in from. A name matching a registered key moves the whole
// key. A name matching only one alias of a composite key moves the command
// under that alias alone; the other aliases are dropped from its key. The move
// is refused when the target key holds another command.
func (r *Registry) move(name string, from, to map[string]*CommandDescriptor, disabling bool) (*Move, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	cmd, key, whole := resolve(from, name)
	if cmd == nil {
		return nil, ErrNotFound
	}
	if disabling && cmd.Builtin {
		return nil, ErrBuiltin
	}

	m := &Move{Command: cmd, From: key, To: key, Names: SplitAliases(key)}
	if !whole {
		m.To = name
		m.Names = []string{name}
	}
	if other, ok := to[m.To]; ok && other != cmd {
		return nil, ErrConflict
	}

	for _, h := range cmd.Handlers {
		if disabling {
			r.attacher.Detach(cmd, h)
		} else {
			r.attacher.Attach(cmd, h)
		}
	}

	delete(from, m.From)
	to[m.To] = cmd
	return m, nil
}

func resolve(from map[string]*CommandDescriptor, name string) (*CommandDescriptor, string, bool) {
	if cmd, ok := from[name]; ok {
		return cmd, name, true
	}

	solved, aliases := SolveCommands(from)
	if cmd, ok := solved[name]; ok {
		return cmd, keyOf(from, cmd), true
	}
	if cmd, ok := aliases[name]; ok {
		return cmd, keyOf(from, cmd), false
	}
	return nil, "", false
}

func keyOf(m map[string]*CommandDescriptor, cmd *CommandDescriptor) string {
	for k, c := range m {
		if c == cmd {
			return k
		}
	}
	return ""
}

// Lookup finds a command by display name or alias, enabled commands first.
func (r *Registry) Lookup(name string) (*CommandDescriptor, bool) {
	enabled, enabledAliases := SolveCommands(r.Enabled)
	disabled, disabledAliases := SolveCommands(r.Disabled)

	for _, m := range []map[string]*CommandDescriptor{enabled, disabled, enabledAliases, disabledAliases} {
		if cmd, ok := m[name]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// isEnabled reports whether cmd is currently in the enabled set.
func (r *Registry) isEnabled(cmd *CommandDescriptor) bool {
	return keyOf(r.Enabled, cmd) != ""
}
