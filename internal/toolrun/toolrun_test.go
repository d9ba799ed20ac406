package toolrun

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestCommandRunnerCapturesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	stderr, err := CommandRunner{}.Run(context.Background(), "sh", []string{"-c", "echo boom >&2; exit 3"})
	if err == nil {
		t.Fatal("expected non-zero exit to surface as error")
	}
	if !strings.Contains(stderr, "boom") {
		t.Fatalf("expected captured stderr, got %q", stderr)
	}
}

func TestCommandRunnerSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	stderr, err := CommandRunner{}.Run(context.Background(), "sh", []string{"-c", "exit 0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("exit status 1")

	err := WrapError("ffmpeg", "  frame drop  \n", base)
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped error to match base")
	}
	if got := err.Error(); got != "ffmpeg: exit status 1: frame drop" {
		t.Fatalf("unexpected message: %q", got)
	}

	err = WrapError("gifsicle", "   ", base)
	if got := err.Error(); got != "gifsicle: exit status 1" {
		t.Fatalf("unexpected message without stderr: %q", got)
	}
}
