package domain

import (
	"fmt"
	"strings"
)

// Grade is the quality grade of a material instance. Higher grades give a
// repair value bonus; GradeNone is an ungraded material.
type Grade int

const (
	GradeNone Grade = iota
	GradeE
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS
	GradeSS
	GradeSSS
	GradeMax
)

var gradeNames = [...]string{"NONE", "E", "D", "C", "B", "A", "S", "SS", "SSS", "MAX"}

// gradeBonusPercent is the repair value bonus for each grade
var gradeBonusPercent = [...]int{0, 5, 10, 15, 20, 25, 30, 35, 40, 50}

func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeNames[g]
}

// Valid reports whether g is one of the defined grades
func (g Grade) Valid() bool {
	return g >= GradeNone && g <= GradeMax
}

// BonusPercent returns the repair value bonus granted by the grade
func (g Grade) BonusPercent() int {
	if !g.Valid() {
		return 0
	}
	return gradeBonusPercent[g]
}

// ParseGrade parses a grade name (case-insensitive). An empty string is GradeNone.
func ParseGrade(s string) (Grade, error) {
	if s == "" {
		return GradeNone, nil
	}
	upper := strings.ToUpper(s)
	for i, name := range gradeNames {
		if name == upper {
			return Grade(i), nil
		}
	}
	return GradeNone, fmt.Errorf("%w: unknown grade %q", ErrInvalidInput, s)
}

// ShorthandSeparator separates the material id from the grade in a shorthand key
const ShorthandSeparator = "#"

// MaterialInstance identifies a distinct material variant. It is a comparable
// value and is used directly as a map key.
type MaterialInstance struct {
	MaterialID string `json:"material_id"`
	Grade      Grade  `json:"grade"`
}

// NewMaterialInstance creates an ungraded material instance
func NewMaterialInstance(materialID string) MaterialInstance {
	return MaterialInstance{MaterialID: materialID}
}

// WithGrade returns a copy of the instance with the given grade
func (m MaterialInstance) WithGrade(g Grade) MaterialInstance {
	m.Grade = g
	return m
}

// Shorthand returns the compact storage key for the instance, "<id>" for
// ungraded materials and "<id>#<GRADE>" otherwise.
func (m MaterialInstance) Shorthand() string {
	if m.Grade == GradeNone {
		return m.MaterialID
	}
	return m.MaterialID + ShorthandSeparator + m.Grade.String()
}

func (m MaterialInstance) String() string {
	return m.Shorthand()
}

// ParseShorthand decodes a key produced by Shorthand
func ParseShorthand(key string) (MaterialInstance, error) {
	id, gradeStr, _ := strings.Cut(key, ShorthandSeparator)
	id = strings.TrimSpace(id)
	if id == "" {
		return MaterialInstance{}, fmt.Errorf("%w: empty material id in key %q", ErrInvalidInput, key)
	}
	grade, err := ParseGrade(strings.TrimSpace(gradeStr))
	if err != nil {
		return MaterialInstance{}, err
	}
	return MaterialInstance{MaterialID: id, Grade: grade}, nil
}

// MaterialForm is the physical form of a material added to a repair kit
type MaterialForm string

const (
	MaterialFormItem     MaterialForm = "item"
	MaterialFormFragment MaterialForm = "fragment"
)

// Ledger amounts contributed by one unit of each form
const (
	MaterialItemValue     = 1.0
	MaterialFragmentValue = 0.125
)

// Value returns the ledger amount one unit of the form contributes, and
// false for an unknown form.
func (f MaterialForm) Value() (float64, bool) {
	switch f {
	case MaterialFormItem, "":
		return MaterialItemValue, true
	case MaterialFormFragment:
		return MaterialFragmentValue, true
	default:
		return 0, false
	}
}
