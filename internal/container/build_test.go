package container

import (
	"archive/tar"
	"io"
	"strings"
	"testing"
)

func TestBuildContext(t *testing.T) {
	buildContext, err := BuildContext()
	if err != nil {
		t.Fatalf("BuildContext() unexpected error: %v", err)
	}

	tr := tar.NewReader(buildContext)
	header, err := tr.Next()
	if err != nil {
		t.Fatalf("Expected a tar entry: %v", err)
	}
	if header.Name != "Dockerfile" {
		t.Errorf("Expected entry 'Dockerfile', got %q", header.Name)
	}

	content, err := io.ReadAll(tr)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ARG " + BranchBuildArg, "ENTRYPOINT", "/data"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Dockerfile should contain %q", want)
		}
	}

	if _, err := tr.Next(); err != io.EOF {
		t.Errorf("Expected a single entry, got err=%v", err)
	}
}

func TestBuildOptions(t *testing.T) {
	opts := BuildOptions("cc2olx", "develop", true)

	if len(opts.Tags) != 1 || opts.Tags[0] != "cc2olx:latest" {
		t.Errorf("Unexpected tags: %v", opts.Tags)
	}
	if !opts.NoCache || !opts.Remove {
		t.Errorf("Expected NoCache and Remove, got %+v", opts)
	}

	branch := opts.BuildArgs[BranchBuildArg]
	if branch == nil || *branch != "develop" {
		t.Errorf("Expected %s=develop, got %v", BranchBuildArg, branch)
	}
}
