package container

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docker/docker/errdefs"
)

func TestPing(t *testing.T) {
	c := &Client{api: newFakeAPI(nil)}
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() unexpected error: %v", err)
	}
}

func TestImageExists(t *testing.T) {
	tests := []struct {
		name    string
		inspect error
		want    bool
		wantErr bool
	}{
		{"present", nil, true, false},
		{"missing", errdefs.NotFound(errors.New("no such image")), false, false},
		{"daemon error", errors.New("daemon unavailable"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(nil)
			api.inspect = tt.inspect
			c := &Client{api: api}

			got, err := c.ImageExists(context.Background(), "cc2olx")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ImageExists() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ImageExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildImage(t *testing.T) {
	api := newFakeAPI(nil)
	api.buildBody = `{"stream":"Step 1/7 : FROM python:3.11-slim\n"}` + "\n"
	c := &Client{api: api}

	buildContext, err := BuildContext()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := c.BuildImage(context.Background(), buildContext, BuildOptions("cc2olx", "master", false), &out); err != nil {
		t.Fatalf("BuildImage() unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Step 1/7") {
		t.Errorf("Expected build progress in output, got %q", out.String())
	}
	if api.built == nil || api.built.Tags[0] != "cc2olx:latest" {
		t.Errorf("Unexpected build options: %+v", api.built)
	}
}

func TestBuildImageReportsFailure(t *testing.T) {
	api := newFakeAPI(nil)
	api.buildBody = `{"errorDetail":{"message":"pip install failed"},"error":"pip install failed"}` + "\n"
	c := &Client{api: api}

	buildContext, err := BuildContext()
	if err != nil {
		t.Fatal(err)
	}

	err = c.BuildImage(context.Background(), buildContext, BuildOptions("cc2olx", "master", false), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "pip install failed") {
		t.Errorf("Expected build failure, got %v", err)
	}
}
