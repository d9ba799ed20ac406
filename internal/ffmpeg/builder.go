package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"giffer/internal/clip"
	"giffer/internal/config"
)

// Every invocation shares the same preamble: no banner, no stdin probing,
// overwrite outputs, errors only on stderr.
func preamble() []string {
	return []string{"-hide_banner", "-nostdin", "-y", "-loglevel", "error"}
}

// BuildTransform produces the arguments for the per-clip transform step:
// scale to fit the canvas preserving aspect ratio, pad the remainder with
// black, divide presentation timestamps by the speed multiplier, and encode
// a near-lossless intermediate with no audio track. Every clip goes through
// the same encode settings so the concat step can stream-copy.
func BuildTransform(out config.Output, c clip.Clip, dst string) []string {
	args := append(preamble(), "-i", c.Path)
	args = append(args, "-vf", transformFilter(out, c.Speed))
	args = append(args,
		"-an",
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-qp", "0",
		"-pix_fmt", "yuv420p",
	)
	return append(args, dst)
}

func transformFilter(out config.Output, speed float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scale=%d:%d:force_original_aspect_ratio=decrease", out.Width, out.Height)
	fmt.Fprintf(&b, ",pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=black", out.Width, out.Height)
	fmt.Fprintf(&b, ",setpts=PTS/%s", formatSpeed(speed))
	return b.String()
}

func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}

// BuildConcat produces the arguments for the stream-copy concatenation of
// the transformed clips listed in the manifest at listPath.
func BuildConcat(listPath, dst string) []string {
	args := append(preamble(), "-f", "concat", "-safe", "0", "-i", listPath, "-c", "copy")
	return append(args, dst)
}

// ConcatManifest renders the concat demuxer file listing the given paths in
// order. Single quotes in paths are escaped per the demuxer's quoting rules.
func ConcatManifest(paths []string) string {
	var b strings.Builder
	for _, path := range paths {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(path, "'", `'\''`))
		b.WriteString("'\n")
	}
	return b.String()
}

// BuildPalette produces the arguments for palette generation: the merged
// clip is resampled at the target frame rate and reduced to at most
// MaxColors colors.
func BuildPalette(out config.Output, merged, palette string) []string {
	args := append(preamble(), "-i", merged)
	args = append(args, "-vf", fmt.Sprintf("fps=%d,palettegen=max_colors=%d", out.FrameRate, out.MaxColors))
	return append(args, palette)
}

// BuildRender produces the arguments for the final GIF encode: the merged
// clip is resampled at the target frame rate and quantized against the
// generated palette with ordered Bayer dithering.
func BuildRender(out config.Output, merged, palette, dst string) []string {
	args := append(preamble(), "-i", merged, "-i", palette)
	args = append(args,
		"-filter_complex", fmt.Sprintf("fps=%d[x];[x][1:v]paletteuse=dither=bayer:bayer_scale=3", out.FrameRate),
		"-f", "gif",
	)
	return append(args, dst)
}
