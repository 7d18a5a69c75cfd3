package container

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// BindMount is a parsed "source:target[:mode]" bind specification.
type BindMount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// ParseBind parses a docker bind specification. Both sides must be absolute
// so docker does not mistake the source for a named volume.
func ParseBind(spec string) (BindMount, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return BindMount{}, fmt.Errorf("invalid bind %q: want source:target[:ro|rw]", spec)
	}

	m := BindMount{
		Source: strings.TrimSpace(parts[0]),
		Target: strings.TrimSpace(parts[1]),
	}
	if !filepath.IsAbs(m.Source) {
		return BindMount{}, fmt.Errorf("invalid bind %q: host path must be absolute", spec)
	}
	if !path.IsAbs(m.Target) {
		return BindMount{}, fmt.Errorf("invalid bind %q: container path must be absolute", spec)
	}

	if len(parts) == 3 {
		switch parts[2] {
		case "ro":
			m.ReadOnly = true
		case "rw":
		default:
			return BindMount{}, fmt.Errorf("invalid bind %q: unknown mode %q", spec, parts[2])
		}
	}

	return m, nil
}

// ValidateBinds checks every bind specification before anything is created.
func ValidateBinds(binds []string) error {
	for _, b := range binds {
		if _, err := ParseBind(b); err != nil {
			return err
		}
	}
	return nil
}

// String converts the mount back to docker "source:target[:ro]" form.
func (m BindMount) String() string {
	spec := fmt.Sprintf("%s:%s", m.Source, m.Target)
	if m.ReadOnly {
		spec += ":ro"
	}
	return spec
}

// BindFlags expands binds into docker CLI arguments ("-v", bind, ...).
func BindFlags(binds []string) []string {
	result := make([]string, 0, 2*len(binds))
	for _, b := range binds {
		result = append(result, "-v", b)
	}
	return result
}

// CommandLine renders cfg as the equivalent docker CLI invocation.
func CommandLine(dockerBin string, cfg RunConfig) []string {
	args := []string{dockerBin, "run"}
	if cfg.User != "" {
		args = append(args, "--user", cfg.User)
	}
	if cfg.AutoRemove {
		args = append(args, "--rm")
	}
	if cfg.Name != "" {
		args = append(args, "--name", cfg.Name)
	}
	args = append(args, BindFlags(cfg.Binds)...)
	args = append(args, cfg.Image)
	return append(args, cfg.Cmd...)
}
