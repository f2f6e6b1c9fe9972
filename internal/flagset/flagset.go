// Package flagset provides a small convenience wrapper over flag.FlagSet
// that binds Parse to os.Args[1:] and formats a two-%s usage template with
// the invoking program name — grounded on
// snow-abstraction-cover/internal/util/flag.go.
package flagset

import (
	"flag"
	"fmt"
	"os"
)

// FlagSet embeds *flag.FlagSet for a convenient zero-argument Parse.
type FlagSet struct {
	*flag.FlagSet
}

// New creates a FlagSet whose Usage prints usage with os.Args[0] substituted
// for both "%s" placeholders, followed by the flag defaults.
func New(usage string) *FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), usage, os.Args[0], os.Args[0])
		fs.PrintDefaults()
	}
	return &FlagSet{fs}
}

// Parse parses os.Args[1:]. Must be called after every flag is defined and
// before any flag value is read.
func (fs *FlagSet) Parse() {
	_ = fs.FlagSet.Parse(os.Args[1:])
}
