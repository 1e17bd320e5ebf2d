package dice

// Result labels for a classified roll
const (
	LabelHigh   = "HIGH"
	LabelLow    = "LOW"
	LabelTriple = "TRIPLE"
)

// Outcome describes a classified three-die roll
type Outcome struct {
	// D1, D2, D3 are the individual faces
	D1, D2, D3 int

	// Sum of the three faces
	Sum int

	// IsHigh means the sum is in [11,17]
	IsHigh bool

	// IsLow means the sum is in [4,10]
	IsLow bool

	// IsTriple means all three faces match
	IsTriple bool

	// Label is TRIPLE, HIGH or LOW; triple takes display precedence
	Label string
}

// Classify computes the outcome for a roll. A triple still reports
// IsHigh/IsLow for its sum range; only the label gives triple precedence.
func Classify(d1, d2, d3 int) Outcome {
	sum := d1 + d2 + d3

	out := Outcome{
		D1:       d1,
		D2:       d2,
		D3:       d3,
		Sum:      sum,
		IsHigh:   sum >= 11 && sum <= 17,
		IsLow:    sum >= 4 && sum <= 10,
		IsTriple: d1 == d2 && d2 == d3,
	}

	switch {
	case out.IsTriple:
		out.Label = LabelTriple
	case out.IsHigh:
		out.Label = LabelHigh
	default:
		out.Label = LabelLow
	}

	return out
}
