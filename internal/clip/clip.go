// Package clip parses and validates the path[:speed] tokens naming the
// input videos of a pipeline run.
package clip

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Clip pairs one input video file with a playback speed multiplier.
// Speed 1 leaves timing unchanged; values above 1 speed the clip up and
// values below 1 slow it down.
type Clip struct {
	Path  string
	Speed float64
}

// ParseToken splits a single path[:speed] token at its last colon. An
// empty or unrecognized suffix defaults the speed to 1, except that a
// suffix containing a path separator marks the colon as part of the path
// itself, so Windows drive letters and colon-bearing directories survive.
func ParseToken(token string) (Clip, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Clip{}, errors.New("empty clip token")
	}

	path := trimmed
	speed := 1.0

	if idx := strings.LastIndexByte(trimmed, ':'); idx >= 0 {
		suffix := trimmed[idx+1:]
		switch {
		case suffix == "":
			path = trimmed[:idx]
		case strings.ContainsAny(suffix, `/\`):
			// Colon inside a path, as in C:\videos\a.mov.
		default:
			parsed, err := strconv.ParseFloat(suffix, 64)
			if err != nil {
				path = trimmed[:idx]
			} else if math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
				return Clip{}, fmt.Errorf("clip %q: speed must be a positive number", trimmed)
			} else {
				path = trimmed[:idx]
				speed = parsed
			}
		}
	}

	if path == "" {
		return Clip{}, fmt.Errorf("clip %q: empty path", trimmed)
	}

	return Clip{Path: path, Speed: speed}, nil
}

// Parse converts positional arguments into clips, preserving input order.
func Parse(tokens []string) ([]Clip, error) {
	if len(tokens) == 0 {
		return nil, errors.New("at least one clip is required")
	}
	clips := make([]Clip, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}
	return clips, nil
}

// Verify checks every clip references an existing regular file. The first
// missing file fails the whole batch so no external tool runs against a
// partial input list.
func Verify(clips []Clip) error {
	for _, c := range clips {
		info, err := os.Stat(c.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("clip %s: file does not exist", c.Path)
			}
			return fmt.Errorf("clip %s: %w", c.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("clip %s: is a directory", c.Path)
		}
	}
	return nil
}
