package commands

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// CommandFunc defines the signature for command handlers
type CommandFunc func(e *Event) error

// HandlerToken is one registration of a command with the dispatcher. A command
// may own several tokens, each with its own pattern.
type HandlerToken struct {
	// Pattern is matched at the start of the message, after the prefix.
	Pattern *regexp.Regexp
	// DisablePrefix matches the raw message instead of prefix-stripped text.
	DisablePrefix bool
	// Outgoing restricts the handler to the bot owners.
	Outgoing bool
}

// NewToken compiles pattern into an owner-only token.
func NewToken(pattern string) *HandlerToken {
	return &HandlerToken{Pattern: regexp.MustCompile(pattern), Outgoing: true}
}

// CommandDescriptor holds everything known about a registered command
type CommandDescriptor struct {
	// Name is the registration key, possibly several aliases joined by | or /.
	Name     string
	Info     string
	Usage    string
	Builtin  bool
	Category string
	Handlers []*HandlerToken
	Func     CommandFunc

	FuncName string
	File     string
	Line     int
}

// UsageFor renders the usage template for the given prefix.
func (d *CommandDescriptor) UsageFor(prefix string) string {
	return strings.ReplaceAll(d.Usage, "{prefix}", prefix)
}

// resolveSource fills the diagnostic fields from the handler function when the
// registration did not provide them.
func (d *CommandDescriptor) resolveSource() {
	if d.Func == nil || (d.FuncName != "" && d.File != "") {
		return
	}
	fn := runtime.FuncForPC(reflect.ValueOf(d.Func).Pointer())
	if fn == nil {
		return
	}
	if d.FuncName == "" {
		name := fn.Name()
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		d.FuncName = name
	}
	if d.File == "" {
		d.File, d.Line = fn.FileLine(fn.Entry())
	}
}
