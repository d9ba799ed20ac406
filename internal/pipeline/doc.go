// Package pipeline orchestrates the ordered steps turning input clips into
// one compressed GIF.
//
// Step order: per-clip transform (scale/pad/retime) → stream-copy concat →
// duration probe (informational) → palette generation → paletteuse render →
// lossy compression. Every step is blocking and sequential. Any step
// failure aborts the run except the final compression pass, which falls
// back to the uncompressed GIF.
//
// Steps invoke external tools through toolrun.Runner and media probing
// through a Prober, so each step is testable with fakes.
package pipeline
