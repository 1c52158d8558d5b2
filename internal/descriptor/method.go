package descriptor

import "fmt"

// Method identifies one of the rectangularity measures.
type Method int

const (
	// MBR scores the ratio of region area to minimum bounding
	// rectangle area.
	MBR Method = iota
	// Discrepancy compares the region against a rectangle with
	// matching second-order moments.
	Discrepancy
	// RobustMBR is the discrepancy measure normalized by the minimum
	// bounding rectangle area instead of the moment rectangle area.
	RobustMBR
	// Agreement compares rectangle sides estimated from moments with
	// sides estimated from area and perimeter.
	Agreement
	// Moments scores the normalized fourth-order central moment of
	// the whole mask.
	Moments
)

// methodCount tracks the number of defined methods; Valid relies on
// the constants above being contiguous from zero.
const methodCount = 5

var methodCodes = [methodCount]string{"r_b", "r_d", "r_r", "r_a", "r_m"}

var methodNames = [methodCount]string{
	"Minimum Bounding Rectangle (MBR)",
	"Rectangular Discrepancy",
	"Robust MBR",
	"Agreement method",
	"Moments method",
}

var methodDescriptions = [methodCount]string{
	"Ratio of region area to the area of its minimum bounding rectangle.",
	"Discrepancy between the region and a rectangle with the same second-order moments, scored at the original and a 45-degree rotated orientation.",
	"Discrepancy measure normalized by minimum bounding rectangle area, scored at the original and a 45-degree rotated orientation.",
	"Agreement between rectangle sides estimated from moments and sides estimated from area and perimeter.",
	"Normalized fourth-order central moment of the full mask, folded into [0, 1].",
}

// methodByCode resolves short codes, including the legacy "mbr" alias.
var methodByCode = map[string]Method{
	"r_b": MBR,
	"mbr": MBR,
	"r_d": Discrepancy,
	"r_r": RobustMBR,
	"r_a": Agreement,
	"r_m": Moments,
}

// methodByName resolves full human-readable method names.
var methodByName = map[string]Method{
	"Minimum Bounding Rectangle (MBR)": MBR,
	"Rectangular Discrepancy":          Discrepancy,
	"Robust MBR":                       RobustMBR,
	"Agreement method":                 Agreement,
	"Moments method":                   Moments,
}

// ParseMethod resolves a method from its short code ("r_b", "r_d",
// "r_r", "r_a", "r_m", plus the alias "mbr") or its full name
// ("Minimum Bounding Rectangle (MBR)", "Rectangular Discrepancy",
// "Robust MBR", "Agreement method", "Moments method"). Matching is
// exact; unknown strings return ErrInvalidMethod.
func ParseMethod(s string) (Method, error) {
	if m, ok := methodByCode[s]; ok {
		return m, nil
	}
	if m, ok := methodByName[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

// Methods returns all methods in their canonical order.
func Methods() []Method {
	return []Method{MBR, Discrepancy, RobustMBR, Agreement, Moments}
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// Code returns the canonical short code, e.g. "r_b".
func (m Method) Code() string {
	if !m.Valid() {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodCodes[m]
}

// Name returns the full human-readable method name.
func (m Method) Name() string {
	if !m.Valid() {
		return fmt.Sprintf("method(%d)", int(m))
	}
	return methodNames[m]
}

// Description returns a one-line summary of what the method measures.
func (m Method) Description() string {
	if !m.Valid() {
		return ""
	}
	return methodDescriptions[m]
}

func (m Method) String() string { return m.Code() }

// MethodInfo describes one method for discovery surfaces such as tool
// listings.
type MethodInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Info returns the method's discovery record.
func (m Method) Info() MethodInfo {
	return MethodInfo{Code: m.Code(), Name: m.Name(), Description: m.Description()}
}

// MethodInfos returns discovery records for every method in canonical
// order.
func MethodInfos() []MethodInfo {
	infos := make([]MethodInfo, 0, methodCount)
	for _, m := range Methods() {
		infos = append(infos, m.Info())
	}
	return infos
}
