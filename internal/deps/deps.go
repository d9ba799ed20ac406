// Package deps verifies the presence of the external tools giffer shells
// out to before any pipeline work starts.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency giffer relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Bare command names are resolved on PATH; the resolved path is recorded in
// the returned status.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// FirstMissing returns the first unavailable status, or nil when every
// dependency is present.
func FirstMissing(statuses []Status) *Status {
	for i := range statuses {
		if !statuses[i].Available {
			return &statuses[i]
		}
	}
	return nil
}
