// Package gifsicle builds the gifsicle invocation for the final lossy
// compression pass.
package gifsicle

import (
	"fmt"

	"giffer/internal/config"
)

// BuildCompress produces the arguments for recompressing src into dst with
// lossy compression bounded by the configured palette size.
func BuildCompress(out config.Output, src, dst string) []string {
	return []string{
		"-O3",
		fmt.Sprintf("--lossy=%d", out.Lossy),
		fmt.Sprintf("--colors=%d", out.MaxColors),
		"-o", dst,
		src,
	}
}
