package pathargs

import (
	"os"
	"path/filepath"
)

// DefaultOutput is appended as the output value when none is given.
const DefaultOutput = "output/result"

// Plan is the rewritten command line plus the binds that make it work.
type Plan struct {
	Args     []string
	Mappings []Mapping
	Binds    []BindDirective
}

// BindSpecs returns the binds in docker "source:target" form, in the order
// they were produced.
func (p *Plan) BindSpecs() []string {
	specs := make([]string, 0, len(p.Binds))
	for _, b := range p.Binds {
		specs = append(specs, b.String())
	}
	return specs
}

// Planner turns a raw converter command line into a Plan.
type Planner struct {
	Remapper      *Remapper
	DefaultOutput string

	// MkdirAll creates a directory and its ancestors. Defaults to os.MkdirAll.
	MkdirAll func(path string, perm os.FileMode) error
}

// NewPlanner creates a Planner mapping paths under dataRoot.
func NewPlanner(dataRoot, defaultOutput string) *Planner {
	return &Planner{
		Remapper:      NewRemapper(dataRoot),
		DefaultOutput: defaultOutput,
		MkdirAll:      os.MkdirAll,
	}
}

// Build rewrites a copy of raw. The output flag is appended with the default
// value when missing, the parent directories of the output and logs values
// are created on the host, then every path value is remapped.
//
// Directories are created here, as the invoking user, because docker would
// otherwise create missing bind sources as root.
func (p *Planner) Build(raw []string) (*Plan, error) {
	args := make([]string, len(raw), len(raw)+2)
	copy(args, raw)

	if !Output.In(args) {
		defaultOutput := p.DefaultOutput
		if defaultOutput == "" {
			defaultOutput = DefaultOutput
		}
		args = append(args, Output.Names[0], defaultOutput)
	}

	for _, spec := range []FlagSpec{Output, LogsDir} {
		if err := p.ensureParentDirs(spec, args); err != nil {
			return nil, err
		}
	}

	remapper := p.Remapper
	if remapper == nil {
		remapper = NewRemapper(DefaultDataRoot)
	}

	w := &rewriter{args: args, remapper: remapper}
	for _, spec := range PathFlags {
		if err := w.rewriteFlag(spec); err != nil {
			return nil, err
		}
	}

	return &Plan{
		Args:     w.args,
		Mappings: w.mappings,
		Binds:    w.binds,
	}, nil
}

// EnsureParentDirs creates the parent directory of every value of spec in args.
func EnsureParentDirs(spec FlagSpec, args []string) error {
	p := &Planner{MkdirAll: os.MkdirAll}
	return p.ensureParentDirs(spec, args)
}

func (p *Planner) ensureParentDirs(spec FlagSpec, args []string) error {
	mkdirAll := p.MkdirAll
	if mkdirAll == nil {
		mkdirAll = os.MkdirAll
	}

	for _, name := range spec.Names {
		for i := range Occurrences(name, args) {
			valueIndex := i + 1
			if valueIndex >= len(args) || IsFlagName(args[valueIndex]) {
				continue
			}

			dir, err := ResolvePath(filepath.Dir(args[valueIndex]))
			if err != nil {
				return err
			}
			if err := mkdirAll(dir, 0o755); err != nil {
				return &DirectoryCreationError{Path: dir, Err: err}
			}
		}
	}
	return nil
}

// rewriter owns the argument slice for one Build call.
type rewriter struct {
	args     []string
	remapper *Remapper
	mappings []Mapping
	binds    []BindDirective
}

func (w *rewriter) rewriteFlag(spec FlagSpec) error {
	for _, name := range spec.Names {
		for i := range Occurrences(name, w.args) {
			if _, err := w.collect(i+1, spec.Arity); err != nil {
				return err
			}
		}
	}
	return nil
}

// collect remaps the values starting at start: one for Single, the whole run
// of non-flag tokens for Multiple. It returns how many values were consumed.
func (w *rewriter) collect(start int, arity Arity) (int, error) {
	count := 0
	for i := start; ; i++ {
		ok, err := w.consume(i)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		count++
		if arity == Single {
			return count, nil
		}
	}
}

// consume remaps args[i] in place if it holds a value.
func (w *rewriter) consume(i int) (bool, error) {
	if i >= len(w.args) || IsFlagName(w.args[i]) {
		return false, nil
	}

	m, err := w.remapper.Remap(w.args[i])
	if err != nil {
		return false, err
	}

	w.args[i] = m.TargetPath
	w.mappings = append(w.mappings, m)
	w.binds = append(w.binds, m.Bind)
	return true, nil
}
