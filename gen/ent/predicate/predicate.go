// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DoseDetail is the predicate function for dosedetail builders.
type DoseDetail func(*sql.Selector)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)

// Vial is the predicate function for vial builders.
type Vial func(*sql.Selector)
