package schema

// CheckResult holds the results of a readiness gate.
type CheckResult struct {
	Jurisdiction   string
	Passed         bool
	Score          float64
	MinScore       float64
	Label          Label
	Severity       Severity
	WeakCategories []CheckWeakCategory
}

// CheckWeakCategory represents a category scoring below the gate threshold.
type CheckWeakCategory struct {
	Name         string
	Score        float64
	Contribution float64
}
