package main

import (
	"strconv"
	"strings"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// parseOwnFlags parses the raw arguments of a command that has flag parsing
// disabled and returns its list values.
func parseOwnFlags(cmd *cobra.Command, raw []string) ([]string, stackerr.Error) {
	// Merges the root's persistent flags into cmd.Flags().
	cmd.InheritedFlags()

	flagArgs, values := splitArgs(cmd.Flags(), raw)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return nil, stackerr.Wrap(err)
	}
	return values, nil
}

// splitArgs separates flag arguments from list values. An integer is a value
// unless it is the argument of a preceding flag, so "-1" is never read as a
// shorthand flag. Everything after "--" is a value.
func splitArgs(fs *pflag.FlagSet, raw []string) (flagArgs []string, values []string) {
	flagArgs = []string{}
	values = []string{}
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		switch {
		case arg == "--":
			return flagArgs, append(values, raw[i+1:]...)
		case isInteger(arg) || !strings.HasPrefix(arg, "-") || arg == "-":
			values = append(values, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(fs, arg) && i+1 < len(raw) {
				i++
				flagArgs = append(flagArgs, raw[i])
			}
		}
	}
	return flagArgs, values
}

func isInteger(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}

// takesValue reports whether arg names a flag whose value is the next
// argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = fs.Lookup(name)
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
