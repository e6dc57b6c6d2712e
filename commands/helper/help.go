package helper

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"userbot/commands"
	"userbot/utils"
)

// Help shows categories, a category, a command or every command.
func Help(e *commands.Event) error {
	return e.Answer(HelpText(e.Registry, e.Prefix(), e.Invocation))
}

// HelpText renders the help answer for an invocation.
func HelpText(reg *commands.Registry, prefix string, inv commands.Invocation) string {
	target := strings.ToLower(strings.TrimSpace(inv.Name))
	detailed := inv.Modifier != commands.ModifierNone

	if target == "" {
		return overview(reg, prefix)
	}
	if target == "all" {
		return allCommands(reg, detailed)
	}
	if cmd, ok := reg.Lookup(target); ok {
		return commandHelp(target, cmd, prefix, detailed)
	}
	if names, ok := reg.Categories.Names(target); ok {
		return categoryHelp(target, names)
	}
	return "`Couldn't find the specified command or command category!`"
}

func overview(reg *commands.Registry, prefix string) string {
	var b strings.Builder
	if DocsLink != "" {
		fmt.Fprintf(&b, "Documented commands can be found [HERE!](%s)\n", DocsLink)
	}
	b.WriteString("**Usage:**\n")
	fmt.Fprintf(&b, "  __%shelp <category>__\n", prefix)
	fmt.Fprintf(&b, "  __%shelp <command>__\n", prefix)
	fmt.Fprintf(&b, "  __%shelp all__\n\n", prefix)
	b.WriteString("**Available command categories:**")
	for _, c := range reg.Categories.Labels() {
		fmt.Fprintf(&b, "\n    **%s**", c)
	}
	return b.String()
}

func allCommands(reg *commands.Registry, detailed bool) string {
	enabled, _ := commands.SolveCommands(reg.Enabled)
	disabled, _ := commands.SolveCommands(reg.Disabled)

	text := "**Enabled commands:**\n" + describe(enabled, detailed)
	if len(disabled) > 0 {
		text += "\n**Disabled commands:**" + describe(disabled, detailed)
	}
	return text
}

func describe(m map[string]*commands.CommandDescriptor, detailed bool) string {
	names := commands.SortedNames(m)
	if !detailed {
		return commands.QuoteJoin(names, ",\t\t")
	}
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = fmt.Sprintf("`%s`: `%s`", n, m[n].Info)
	}
	return strings.Join(lines, "\n\n")
}

func commandHelp(name string, cmd *commands.CommandDescriptor, prefix string, detailed bool) string {
	text := fmt.Sprintf(
		"**%s command:**\n"+
			"  **Disableable:** `%t`\n\n"+
			"  **Info:** `%s`\n\n"+
			"  **Usage:** %s\n\n",
		cases.Title(language.English).String(name), !cmd.Builtin, cmd.Info, cmd.UsageFor(prefix),
	)
	if !detailed {
		return text
	}

	file := utils.DisplayPath(cmd.File)
	if !strings.HasPrefix(file, "http") {
		file = "`" + file + "`"
	}
	text += fmt.Sprintf(
		"  **Registered function:** `%s`\n"+
			"    **File:** %s\n"+
			"    **Line:** `%d`\n",
		cmd.FuncName, file, cmd.Line,
	)
	return text
}

func categoryHelp(category string, names []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s commands:**", cases.Title(language.English).String(category))
	for _, n := range names {
		fmt.Fprintf(&b, "\n    **%s**", commands.DisplayName(n))
	}
	return b.String()
}
