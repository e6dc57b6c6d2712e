// Package helper implements the builtin commands that manage the other
// commands: prefix changes, enabling and disabling, listings and help.
package helper

import (
	"regexp"

	"userbot/commands"
)

// Category is the category label of every command in this package.
const Category = "helper"

// DocsLink, when set, is advertised by the help overview.
var DocsLink string

// Register adds the helper commands to reg. All of them are builtin.
func Register(reg *commands.Registry) {
	for _, cmd := range Commands() {
		reg.Register(cmd)
	}
}

// Commands returns fresh descriptors for the helper commands.
func Commands() []*commands.CommandDescriptor {
	cmds := []*commands.CommandDescriptor{
		{
			Name:     "setprefix",
			Info:     "Change the bot's default prefix.",
			Usage:    "**{prefix}setprefix (new prefix)**\n        **Example:** `{prefix}setprefix .`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`setprefix (.+)`)},
			Func:     SetPrefix,
		},
		{
			Name:  "resetprefix",
			Info:  "Reset the bot's prefix to the default one.",
			Usage: "`resetprefix`",
			Handlers: []*commands.HandlerToken{{
				Pattern:       regexp.MustCompile(`(?i)^resetprefix$`),
				DisablePrefix: true,
				Outgoing:      true,
			}},
			Func: ResetPrefix,
		},
		{
			Name:     "enable",
			Info:     "Enable a command IF it's already disabled.",
			Usage:    "**{prefix}enable (command)**\n        **Example:** `{prefix}enable afk`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`enable(?: |$)(\w+)?$`)},
			Func:     Enable,
		},
		{
			Name:     "disable",
			Info:     "Disable a command IF it's already enabled.",
			Usage:    "**{prefix}disable (command)**\n        **Example:** `{prefix}disable afk`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`disable(?: |$)(\w+)?$`)},
			Func:     Disable,
		},
		{
			Name:     "enabled",
			Info:     "A list of all the currently enabled commands.",
			Usage:    "`{prefix}enabled`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`enabled$`)},
			Func:     Enabled,
		},
		{
			Name:     "disabled",
			Info:     "A list of all the currently disabled commands.",
			Usage:    "`{prefix}disabled`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`disabled$`)},
			Func:     Disabled,
		},
		{
			Name:     "help",
			Info:     "A list of commands categories, their commands or command's details.",
			Usage:    "**{prefix}help (all|category|command) [dev|details|info]**\n        **Example:** `{prefix}help afk` or `{prefix}help afk dev`",
			Handlers: []*commands.HandlerToken{commands.NewToken(`help(?: |$)(\w*)(?: |$)(dev|details|info)?`)},
			Func:     Help,
		},
	}
	for _, c := range cmds {
		c.Category = Category
		c.Builtin = true
	}
	return cmds
}
