package capability

// Result is the outcome of verifying one (type, capability) pair. An empty
// Violations slice means the capability is satisfied. Under fail-fast
// evaluation the slice holds at most one entry, the first unmet requirement
// in flattening order.
type Result struct {
	Type       string
	Capability ID
	Violations []*Violation
}

// Satisfied reports whether every requirement held.
func (r Result) Satisfied() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a satisfied result, otherwise the first violation.
func (r Result) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	return r.Violations[0]
}

// Reasons returns the violation descriptions, for reporting.
func (r Result) Reasons() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Requirement.Desc
	}
	return out
}
