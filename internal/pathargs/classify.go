// Package pathargs rewrites host path arguments into container paths.
package pathargs

import "strings"

// Arity says how many values follow a flag.
type Arity int

const (
	// Single flags take at most one value.
	Single Arity = iota
	// Multiple flags take every value up to the next flag name.
	Multiple
)

func (a Arity) String() string {
	if a == Multiple {
		return "multiple"
	}
	return "single"
}

// FlagSpec describes a path-bearing flag: its spellings and its arity.
type FlagSpec struct {
	Names []string
	Arity Arity
}

// In reports whether any spelling of the flag occurs in args.
func (f FlagSpec) In(args []string) bool {
	for _, arg := range args {
		for _, name := range f.Names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

var (
	Output   = FlagSpec{Names: []string{"-o", "--output"}, Arity: Single}
	LogsDir  = FlagSpec{Names: []string{"--logs_dir"}, Arity: Single}
	Inputs   = FlagSpec{Names: []string{"-i", "--inputs"}, Arity: Multiple}
	LinkFile = FlagSpec{Names: []string{"-f", "--link_file"}, Arity: Single}
	Passport = FlagSpec{Names: []string{"-p", "--passport-file"}, Arity: Single}
)

// PathFlags lists the path-bearing flags in the order they are remapped.
var PathFlags = []FlagSpec{Output, LogsDir, Inputs, LinkFile, Passport}

// IsFlagName reports whether token looks like a flag name rather than a value.
// Trailing quotes are ignored so already-quoted tokens classify the same way.
func IsFlagName(token string) bool {
	return strings.HasPrefix(strings.TrimRight(token, `'"`), "-")
}
