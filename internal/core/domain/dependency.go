package domain

// WorkLibrary is the reserved library name meaning "the library currently being compiled".
const WorkLibrary = "work"

// Dependency is a (library, unit) pair declared by a source unit, e.g. "use ieee.std_logic_1164.all".
type Dependency struct {
	// Library is the logical library name as written in the source (e.g. "ieee", "work").
	Library InternedString `json:"library"`

	// Unit is the design unit name inside the library (e.g. "std_logic_1164").
	Unit InternedString `json:"unit"`
}

// NewDependency creates a Dependency from plain strings.
func NewDependency(library, unit string) Dependency {
	return Dependency{
		Library: NewInternedString(library),
		Unit:    NewInternedString(unit),
	}
}

// IsWork reports whether the dependency refers to the reserved work library.
// The comparison is exact; source units report library names in lower case.
func (d Dependency) IsWork() bool {
	return d.Library.String() == WorkLibrary
}

// String returns the dependency in "library.unit" form.
func (d Dependency) String() string {
	return d.Library.String() + "." + d.Unit.String()
}
