package pathargs

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultDataRoot is the container directory every remapped path lives under.
const DefaultDataRoot = "/data"

// BindDirective binds a host directory to a container directory.
type BindDirective struct {
	Source string
	Target string
}

// String returns the directive in docker "source:target" form.
func (b BindDirective) String() string {
	return b.Source + ":" + b.Target
}

// Mapping records how one path value was moved into the container.
type Mapping struct {
	HostPath   string
	ID         string
	TargetPath string
	Bind       BindDirective
}

// Remapper maps host paths to fresh directories under DataRoot.
type Remapper struct {
	DataRoot string

	// NewID returns a unique directory name. Defaults to a random UUID.
	NewID func() string

	// Resolve turns a host path token into an absolute path. Defaults to ResolvePath.
	Resolve func(string) (string, error)
}

// NewRemapper creates a Remapper rooted at dataRoot.
func NewRemapper(dataRoot string) *Remapper {
	return &Remapper{
		DataRoot: dataRoot,
		NewID:    uuid.NewString,
		Resolve:  ResolvePath,
	}
}

// Remap resolves token on the host and returns its container mapping.
// Every call allocates a new ID, even for a host path seen before.
//
// The parent directory is bound rather than the path itself because output
// values usually name files that do not exist yet.
func (r *Remapper) Remap(token string) (Mapping, error) {
	resolve := r.Resolve
	if resolve == nil {
		resolve = ResolvePath
	}
	newID := r.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	hostPath, err := resolve(token)
	if err != nil {
		return Mapping{}, err
	}

	id := newID()
	// Container paths are always slash separated.
	mappedDir := path.Join(r.DataRoot, id)

	return Mapping{
		HostPath:   hostPath,
		ID:         id,
		TargetPath: path.Join(mappedDir, filepath.Base(hostPath)),
		Bind: BindDirective{
			Source: filepath.Dir(hostPath),
			Target: mappedDir,
		},
	}, nil
}

// ResolvePath makes p absolute and resolves symlinks along the longest
// existing prefix. Components that do not exist yet are kept as written.
func ResolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}

	resolved, err := resolveExisting(abs)
	if err != nil {
		return "", &PathResolutionError{Path: p, Err: err}
	}
	return resolved, nil
}

func resolveExisting(abs string) (string, error) {
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}

	resolvedParent, err := resolveExisting(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}
