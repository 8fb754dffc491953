package fieldtype

import "fmt"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the mapping type of a field.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindKeyword    // keyword
	KindText       // text
	KindLong       // long
	KindDouble     // double
	KindBoolean    // boolean
	KindDate       // date
	KindFlatObject // flat_object
	KindKeyed      // keyed

	// KindTotal is the number of kinds including the invalid zero value.
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// ParseKind returns the Kind whose name is s.
func ParseKind(s string) (Kind, error) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown field kind %q", s)
}
