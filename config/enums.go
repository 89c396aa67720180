package config

import (
	"fmt"
	"strings"
)

// AnnealType selects the anneal protocol.
type AnnealType int

const (
	// AnnealStandard is the regular anneal schedule.
	AnnealStandard AnnealType = iota
	// AnnealFast is the fast-anneal protocol.
	AnnealFast
)

var annealLabels = map[AnnealType]string{
	AnnealStandard: "Standard Anneal",
	AnnealFast:     "Fast Anneal",
}

// String returns the display label.
func (a AnnealType) String() string {
	if l, ok := annealLabels[a]; ok {
		return l
	}

	return fmt.Sprintf("AnnealType(%d)", int(a))
}

// AnnealTypes lists every anneal type in value order.
func AnnealTypes() []AnnealType { return []AnnealType{AnnealStandard, AnnealFast} }

// ParseAnnealType accepts a label ("Fast Anneal"), a short name ("fast") or
// the numeric value ("1").
func ParseAnnealType(s string) (AnnealType, error) {
	for _, a := range AnnealTypes() {
		if matches(s, a.String(), int(a)) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: anneal type %q", ErrInvalidConfig, s)
}

// SchemeType selects the coupling distribution of random spin glasses.
type SchemeType int

const (
	// SchemeUniform draws couplings uniformly from the precision grid.
	SchemeUniform SchemeType = iota
	// SchemePowerLaw draws coupling magnitudes with a heavy tail.
	SchemePowerLaw
)

var schemeLabels = map[SchemeType]string{
	SchemeUniform:  "Uniform",
	SchemePowerLaw: "Power Law",
}

// String returns the display label.
func (s SchemeType) String() string {
	if l, ok := schemeLabels[s]; ok {
		return l
	}

	return fmt.Sprintf("SchemeType(%d)", int(s))
}

// SchemeTypes lists every scheme in value order.
func SchemeTypes() []SchemeType { return []SchemeType{SchemeUniform, SchemePowerLaw} }

// ParseSchemeType accepts a label ("Power Law"), a short name ("power") or
// the numeric value ("1").
func ParseSchemeType(s string) (SchemeType, error) {
	for _, st := range SchemeTypes() {
		if matches(s, st.String(), int(st)) {
			return st, nil
		}
	}

	return 0, fmt.Errorf("%w: scheme type %q", ErrInvalidConfig, s)
}

// matches compares s with a label, the label's first word, or a numeric value.
func matches(s, label string, value int) bool {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, label) || s == fmt.Sprint(value) {
		return true
	}
	first, _, _ := strings.Cut(label, " ")

	return strings.EqualFold(s, first)
}
