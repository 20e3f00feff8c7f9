package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// Version is set at build time using -ldflags
var Version = "dev"

// VersionFlag is a custom flag type for displaying version information.
type VersionFlag string

// Decode implements the kong.MapperValue interface.
func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }

// IsBool implements the kong.BoolMapper interface.
func (v VersionFlag) IsBool() bool { return true }

// BeforeApply prints the version and exits.
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Fprintln(app.Stdout, vars["version"])
	app.Exit(0)
	return nil
}

// Globals contains global flags for the CLI.
type Globals struct {
	Version VersionFlag `name:"version" help:"Print version information and quit"`
}
