// Package grouped_flags provides a small wrapper around the flag package
// from Go's standard library to allow grouping flags in the help output.
// Flags which are not given on the command line can also be read from
// environment variables, see FlagGroupSet.SetEnvPrefix.
// Please see the example for more details.
package grouped_flags

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type flagGroup struct {
	name  string
	flags *flag.FlagSet
}

type FlagGroupSet struct {
	groups    []flagGroup
	allFlags  *flag.FlagSet
	envPrefix string
}

func NewFlagGroupSet(errorHandling flag.ErrorHandling) *FlagGroupSet {
	f := &FlagGroupSet{
		groups:   make([]flagGroup, 0),
		allFlags: flag.NewFlagSet(os.Args[0], errorHandling),
	}

	f.allFlags.Usage = f.Usage

	return f
}

func (f *FlagGroupSet) AddGroup(name string, constructor func(*flag.FlagSet)) {
	// Construct an empty flag set
	groupFlagSet := flag.NewFlagSet("", flag.PanicOnError)

	// Pass it to the callback, which populates it with the flags for this group
	constructor(groupFlagSet)

	// Add the flags to the combined flag set, which is used for parsing
	groupFlagSet.VisitAll(func(fl *flag.Flag) {
		f.allFlags.Var(fl.Value, fl.Name, fl.Usage)
	})

	f.groups = append(f.groups, flagGroup{
		name,
		groupFlagSet,
	})
}

// SetEnvPrefix enables reading flags from environment variables. The
// variable for the flag "-base-path" with the prefix "RANGESERVE" is
// RANGESERVE_BASE_PATH. Values given on the command line take precedence.
func (f *FlagGroupSet) SetEnvPrefix(prefix string) {
	f.envPrefix = prefix
}

func (f FlagGroupSet) Parse() error {
	return f.ParseArgs(os.Args[1:])
}

// ParseArgs parses the flags from args, which must not include the program
// name, and then from the environment.
func (f FlagGroupSet) ParseArgs(args []string) error {
	if err := f.allFlags.Parse(args); err != nil {
		return err
	}

	if f.envPrefix == "" {
		return nil
	}

	given := make(map[string]bool)
	f.allFlags.Visit(func(fl *flag.Flag) {
		given[fl.Name] = true
	})

	var err error
	f.allFlags.VisitAll(func(fl *flag.Flag) {
		if err != nil || given[fl.Name] {
			return
		}

		name := f.envName(fl.Name)
		value, ok := os.LookupEnv(name)
		if !ok {
			return
		}

		if setErr := f.allFlags.Set(fl.Name, value); setErr != nil {
			err = fmt.Errorf("invalid value %q for environment variable %s: %w", value, name, setErr)
		}
	})

	return err
}

func (f FlagGroupSet) envName(flagName string) string {
	name := strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
	return f.envPrefix + "_" + name
}

func (f *FlagGroupSet) SetOutput(output io.Writer) {
	f.allFlags.SetOutput(output)
}

func (f *FlagGroupSet) Usage() {
	output := f.allFlags.Output()

	// Print name of program
	fmt.Fprintf(output, "Usage of %s:\n\n", f.allFlags.Name())

	for _, group := range f.groups {
		// Print name of group
		fmt.Fprintf(output, "%s:\n", group.name)

		// Write flag description into buffer and then print
		buf := new(bytes.Buffer)
		group.flags.SetOutput(buf)
		group.flags.PrintDefaults()

		fmt.Fprintln(output, buf.String())
	}

	if f.envPrefix != "" {
		fmt.Fprintf(output, "Every flag can also be set using an environment variable, e.g. %s.\n", f.envName("example-flag"))
	}
}
