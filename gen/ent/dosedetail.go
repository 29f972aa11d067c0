// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// DoseDetail is the model entity for the DoseDetail schema.
type DoseDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VialID holds the value of the "vial_id" field.
	VialID uuid.UUID `json:"vial_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// StudyName holds the value of the "study_name" field.
	StudyName string `json:"study_name,omitempty"`
	// DateCalibration holds the value of the "date_calibration" field.
	DateCalibration string `json:"date_calibration,omitempty"`
	// TimeCalibration holds the value of the "time_calibration" field.
	TimeCalibration string `json:"time_calibration,omitempty"`
	// Rac holds the value of the "rac" field.
	Rac string `json:"rac,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer string `json:"manufacturer,omitempty"`
	// RxBatch holds the value of the "rx_batch" field.
	RxBatch int `json:"rx_batch,omitempty"`
	// LotBatch holds the value of the "lot_batch" field.
	LotBatch string `json:"lot_batch,omitempty"`
	// Volume holds the value of the "volume" field.
	Volume string `json:"volume,omitempty"`
	// Dos holds the value of the "dos" field.
	Dos time.Time `json:"dos,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoseDetailQuery when eager-loading is set.
	Edges        DoseDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoseDetailEdges holds the relations/edges for other nodes in the graph.
type DoseDetailEdges struct {
	// Vial holds the value of the vial edge.
	Vial *Vial `json:"vial,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VialOrErr returns the Vial value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoseDetailEdges) VialOrErr() (*Vial, error) {
	if e.Vial != nil {
		return e.Vial, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vial.Label}
	}
	return nil, &NotLoadedError{edge: "vial"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoseDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dosedetail.FieldRxBatch:
			values[i] = new(sql.NullInt64)
		case dosedetail.FieldPatientID, dosedetail.FieldStudyName, dosedetail.FieldDateCalibration, dosedetail.FieldTimeCalibration, dosedetail.FieldRac, dosedetail.FieldManufacturer, dosedetail.FieldLotBatch, dosedetail.FieldVolume:
			values[i] = new(sql.NullString)
		case dosedetail.FieldDos:
			values[i] = new(sql.NullTime)
		case dosedetail.FieldID, dosedetail.FieldVialID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoseDetail fields.
func (_m *DoseDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dosedetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dosedetail.FieldVialID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vial_id", values[i])
			} else if value != nil {
				_m.VialID = *value
			}
		case dosedetail.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case dosedetail.FieldStudyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_name", values[i])
			} else if value.Valid {
				_m.StudyName = value.String
			}
		case dosedetail.FieldDateCalibration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_calibration", values[i])
			} else if value.Valid {
				_m.DateCalibration = value.String
			}
		case dosedetail.FieldTimeCalibration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_calibration", values[i])
			} else if value.Valid {
				_m.TimeCalibration = value.String
			}
		case dosedetail.FieldRac:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rac", values[i])
			} else if value.Valid {
				_m.Rac = value.String
			}
		case dosedetail.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				_m.Manufacturer = value.String
			}
		case dosedetail.FieldRxBatch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rx_batch", values[i])
			} else if value.Valid {
				_m.RxBatch = int(value.Int64)
			}
		case dosedetail.FieldLotBatch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lot_batch", values[i])
			} else if value.Valid {
				_m.LotBatch = value.String
			}
		case dosedetail.FieldVolume:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field volume", values[i])
			} else if value.Valid {
				_m.Volume = value.String
			}
		case dosedetail.FieldDos:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dos", values[i])
			} else if value.Valid {
				_m.Dos = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoseDetail.
// This includes values selected through modifiers, order, etc.
func (_m *DoseDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVial queries the "vial" edge of the DoseDetail entity.
func (_m *DoseDetail) QueryVial() *VialQuery {
	return NewDoseDetailClient(_m.config).QueryVial(_m)
}

// Update returns a builder for updating this DoseDetail.
// Note that you need to call DoseDetail.Unwrap() before calling this method if this DoseDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoseDetail) Update() *DoseDetailUpdateOne {
	return NewDoseDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoseDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoseDetail) Unwrap() *DoseDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DoseDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoseDetail) String() string {
	var builder strings.Builder
	builder.WriteString("DoseDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vial_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VialID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("study_name=")
	builder.WriteString(_m.StudyName)
	builder.WriteString(", ")
	builder.WriteString("date_calibration=")
	builder.WriteString(_m.DateCalibration)
	builder.WriteString(", ")
	builder.WriteString("time_calibration=")
	builder.WriteString(_m.TimeCalibration)
	builder.WriteString(", ")
	builder.WriteString("rac=")
	builder.WriteString(_m.Rac)
	builder.WriteString(", ")
	builder.WriteString("manufacturer=")
	builder.WriteString(_m.Manufacturer)
	builder.WriteString(", ")
	builder.WriteString("rx_batch=")
	builder.WriteString(fmt.Sprintf("%v", _m.RxBatch))
	builder.WriteString(", ")
	builder.WriteString("lot_batch=")
	builder.WriteString(_m.LotBatch)
	builder.WriteString(", ")
	builder.WriteString("volume=")
	builder.WriteString(_m.Volume)
	builder.WriteString(", ")
	builder.WriteString("dos=")
	builder.WriteString(_m.Dos.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DoseDetails is a parsable slice of DoseDetail.
type DoseDetails []*DoseDetail
