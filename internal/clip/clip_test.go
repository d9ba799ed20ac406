package clip

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseToken(t *testing.T) {
	cases := []struct {
		token string
		path  string
		speed float64
	}{
		{"a.mov", "a.mov", 1},
		{"a.mov:2", "a.mov", 2},
		{"a.mov:0.5", "a.mov", 0.5},
		{"a.mov:", "a.mov", 1},
		{"/videos/demo clip.mov:1.25", "/videos/demo clip.mov", 1.25},
		{"C:\\videos\\a.mov", "C:\\videos\\a.mov", 1},
		{"C:\\videos\\a.mov:3", "C:\\videos\\a.mov", 3},
		{"dir:with:colons/a.mov", "dir:with:colons/a.mov", 1},
		{"a.mov:fast", "a.mov", 1},
		{"a.mov:1x", "a.mov", 1},
	}
	for _, tc := range cases {
		c, err := ParseToken(tc.token)
		if err != nil {
			t.Fatalf("ParseToken(%q): %v", tc.token, err)
		}
		if c.Path != tc.path || c.Speed != tc.speed {
			t.Fatalf("ParseToken(%q) = %+v, want path %q speed %v", tc.token, c, tc.path, tc.speed)
		}
	}
}

func TestParseTokenRejectsInvalid(t *testing.T) {
	for _, token := range []string{"", "   ", "a.mov:0", "a.mov:-1", "a.mov:nan", ":2"} {
		if _, err := ParseToken(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}

func TestParseRequiresClips(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty token list")
	}
}

func TestParsePreservesOrder(t *testing.T) {
	clips, err := Parse([]string{"b.mov:2", "a.mov"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(clips) != 2 || clips[0].Path != "b.mov" || clips[1].Path != "a.mov" {
		t.Fatalf("unexpected clips: %+v", clips)
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.mov")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := Verify([]Clip{{Path: existing, Speed: 1}}); err != nil {
		t.Fatalf("Verify existing file: %v", err)
	}

	missing := filepath.Join(dir, "missing.mov")
	err := Verify([]Clip{{Path: existing}, {Path: missing}})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Verify([]Clip{{Path: dir}}); err == nil {
		t.Fatal("expected error for directory path")
	}
}
