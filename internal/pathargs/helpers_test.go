package pathargs

import (
	"fmt"
	"path/filepath"
	"testing"
)

// sequentialIDs returns an ID source producing id1, id2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func newTestPlanner() *Planner {
	p := NewPlanner("/data", DefaultOutput)
	p.Remapper.NewID = sequentialIDs()
	return p
}

// workdir creates a resolved temp dir and makes it the working directory.
func workdir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	t.Chdir(dir)
	return dir
}
