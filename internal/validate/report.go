package validate

// Report accumulates the outcome of one validation run.
type Report struct {
	// Passed counts individual checks that succeeded.
	Passed int
	// Issues are blocking problems; any entry means the bundle is invalid.
	Issues []string
	// Warnings are non-blocking recommendations.
	Warnings []string
}

// IsValid reports whether the run produced no blocking issues. Warnings
// never affect validity.
func (r *Report) IsValid() bool {
	return len(r.Issues) == 0
}

func (r *Report) issue(msg string) {
	r.Issues = append(r.Issues, msg)
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
