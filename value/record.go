// Package value holds two small value types used to explore copy, move and
// equality semantics in Go.
//
// Record is a plain struct: assigning it copies every field, and it carries
// no pointers, so copies never alias. The explicit Copy, Move and Assign
// methods exist to route the embedded Probe through its traced lifecycle.
package value

import (
	"fmt"
	"slices"
)

// Default field values of NewRecord.
const (
	DefaultT = 3.14
	DefaultX = 0
	DefaultY = "goo"
)

// Record aggregates a float, an int, a string and an embedded Probe.
//
// The zero Record is usable but does not carry the defaults; use NewRecord.
type Record struct {
	T float64
	X int
	Y string
	Z Probe
}

// NewRecord returns a record with the default field values.
func NewRecord() Record {
	return Record{T: DefaultT, X: DefaultX, Y: DefaultY, Z: NewProbe()}
}

// NewRecordWith initializes every field from its argument. Any input is
// accepted.
func NewRecordWith(t float64, x int, y string, z Probe) Record {
	return Record{T: t, X: x, Y: y, Z: z}
}

// Copy returns an independent duplicate of r.
func (r Record) Copy() Record {
	return Record{T: r.T, X: r.X, Y: r.Y, Z: r.Z.Copy()}
}

// Move transfers r's state to the returned record and leaves r valid but
// unspecified: numeric fields are kept, the string is emptied and the probe
// is moved-from.
func (r *Record) Move() Record {
	m := Record{T: r.T, X: r.X, Y: r.Y, Z: r.Z.Move()}
	r.Y = ""
	return m
}

// Assign copy-assigns src to r field by field.
func (r *Record) Assign(src Record) {
	r.T, r.X, r.Y = src.T, src.X, src.Y
	r.Z.Assign(src.Z)
}

// Equal reports whether r and other are the same record or hold equal fields.
//
// Identity is checked first, so a record always equals itself even when T is
// NaN. Fields are then compared in declaration order.
func (r *Record) Equal(other *Record) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.T == other.T &&
		r.X == other.X &&
		r.Y == other.Y &&
		r.Z.Equal(other.Z)
}

// NotEqual is the negation of Equal.
func (r *Record) NotEqual(other *Record) bool { return !r.Equal(other) }

func (r Record) String() string {
	return fmt.Sprintf("{%g %d %q}", r.T, r.X, r.Y)
}

// Records is an ordered collection of records, each slot owning its value.
type Records []Record

// Reverse reverses rs in place.
func (rs Records) Reverse() {
	slices.Reverse(rs)
}

// Clone returns a deep copy of rs.
func (rs Records) Clone() Records {
	if rs == nil {
		return nil
	}
	out := make(Records, len(rs))
	for i := range rs {
		out[i] = rs[i].Copy()
	}
	return out
}

// Equal reports whether rs and other have the same length and pairwise equal
// records. Slots are compared in place, so a collection equals itself.
func (rs Records) Equal(other Records) bool {
	if len(rs) != len(other) {
		return false
	}
	for i := range rs {
		if !rs[i].Equal(&other[i]) {
			return false
		}
	}
	return true
}
