// Package ffmpeg builds the ffmpeg argument slices for each pipeline step.
//
// Builders return complete argv tails (everything after the binary name);
// paths and numeric parameters are inserted as discrete arguments or
// validated numeric filter fields, never interpolated into a shell string.
// One builder per step: transform, concat, palette, render.
package ffmpeg
