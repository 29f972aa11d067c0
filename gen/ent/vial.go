// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// Vial is the model entity for the Vial schema.
type Vial struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Radiopharmaceutical holds the value of the "radiopharmaceutical" field.
	Radiopharmaceutical string `json:"radiopharmaceutical,omitempty"`
	// RxNumber holds the value of the "rx_number" field.
	RxNumber int `json:"rx_number,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// ActualAmount holds the value of the "actual_amount" field.
	ActualAmount string `json:"actual_amount,omitempty"`
	// CalibrationDate holds the value of the "calibration_date" field.
	CalibrationDate string `json:"calibration_date,omitempty"`
	// LotNumber holds the value of the "lot_number" field.
	LotNumber string `json:"lot_number,omitempty"`
	// EnteredBy holds the value of the "entered_by" field.
	EnteredBy string `json:"entered_by,omitempty"`
	// EnteredDateTime holds the value of the "entered_date_time" field.
	EnteredDateTime time.Time `json:"entered_date_time,omitempty"`
	// OrderedAmount holds the value of the "ordered_amount" field.
	OrderedAmount string `json:"ordered_amount,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer string `json:"manufacturer,omitempty"`
	// Volume holds the value of the "volume" field.
	Volume string `json:"volume,omitempty"`
	// RadioactivityConcentration holds the value of the "radioactivity_concentration" field.
	RadioactivityConcentration string `json:"radioactivity_concentration,omitempty"`
	// LabelImageURL holds the value of the "label_image_url" field.
	LabelImageURL string `json:"label_image_url,omitempty"`
	// CoaImageURL holds the value of the "coa_image_url" field.
	CoaImageURL string `json:"coa_image_url,omitempty"`
	// VialImageURL holds the value of the "vial_image_url" field.
	VialImageURL string `json:"vial_image_url,omitempty"`
	// NewLabelImageURL holds the value of the "new_label_image_url" field.
	NewLabelImageURL string `json:"new_label_image_url,omitempty"`
	// NewVialImageURL holds the value of the "new_vial_image_url" field.
	NewVialImageURL string `json:"new_vial_image_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VialQuery when eager-loading is set.
	Edges        VialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VialEdges holds the relations/edges for other nodes in the graph.
type VialEdges struct {
	// DoseDetails holds the value of the dose_details edge.
	DoseDetails []*DoseDetail `json:"dose_details,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DoseDetailsOrErr returns the DoseDetails value or an error if the edge
// was not loaded in eager-loading.
func (e VialEdges) DoseDetailsOrErr() ([]*DoseDetail, error) {
	if e.loadedTypes[0] {
		return e.DoseDetails, nil
	}
	return nil, &NotLoadedError{edge: "dose_details"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vial) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vial.FieldRxNumber:
			values[i] = new(sql.NullInt64)
		case vial.FieldRadiopharmaceutical, vial.FieldPatientID, vial.FieldActualAmount, vial.FieldCalibrationDate, vial.FieldLotNumber, vial.FieldEnteredBy, vial.FieldOrderedAmount, vial.FieldManufacturer, vial.FieldVolume, vial.FieldRadioactivityConcentration, vial.FieldLabelImageURL, vial.FieldCoaImageURL, vial.FieldVialImageURL, vial.FieldNewLabelImageURL, vial.FieldNewVialImageURL:
			values[i] = new(sql.NullString)
		case vial.FieldEnteredDateTime, vial.FieldCreatedAt, vial.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vial.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vial fields.
func (_m *Vial) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vial.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vial.FieldRadiopharmaceutical:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field radiopharmaceutical", values[i])
			} else if value.Valid {
				_m.Radiopharmaceutical = value.String
			}
		case vial.FieldRxNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rx_number", values[i])
			} else if value.Valid {
				_m.RxNumber = int(value.Int64)
			}
		case vial.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case vial.FieldActualAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_amount", values[i])
			} else if value.Valid {
				_m.ActualAmount = value.String
			}
		case vial.FieldCalibrationDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field calibration_date", values[i])
			} else if value.Valid {
				_m.CalibrationDate = value.String
			}
		case vial.FieldLotNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lot_number", values[i])
			} else if value.Valid {
				_m.LotNumber = value.String
			}
		case vial.FieldEnteredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entered_by", values[i])
			} else if value.Valid {
				_m.EnteredBy = value.String
			}
		case vial.FieldEnteredDateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entered_date_time", values[i])
			} else if value.Valid {
				_m.EnteredDateTime = value.Time
			}
		case vial.FieldOrderedAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ordered_amount", values[i])
			} else if value.Valid {
				_m.OrderedAmount = value.String
			}
		case vial.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				_m.Manufacturer = value.String
			}
		case vial.FieldVolume:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field volume", values[i])
			} else if value.Valid {
				_m.Volume = value.String
			}
		case vial.FieldRadioactivityConcentration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field radioactivity_concentration", values[i])
			} else if value.Valid {
				_m.RadioactivityConcentration = value.String
			}
		case vial.FieldLabelImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_image_url", values[i])
			} else if value.Valid {
				_m.LabelImageURL = value.String
			}
		case vial.FieldCoaImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coa_image_url", values[i])
			} else if value.Valid {
				_m.CoaImageURL = value.String
			}
		case vial.FieldVialImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vial_image_url", values[i])
			} else if value.Valid {
				_m.VialImageURL = value.String
			}
		case vial.FieldNewLabelImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_label_image_url", values[i])
			} else if value.Valid {
				_m.NewLabelImageURL = value.String
			}
		case vial.FieldNewVialImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_vial_image_url", values[i])
			} else if value.Valid {
				_m.NewVialImageURL = value.String
			}
		case vial.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vial.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vial.
// This includes values selected through modifiers, order, etc.
func (_m *Vial) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoseDetails queries the "dose_details" edge of the Vial entity.
func (_m *Vial) QueryDoseDetails() *DoseDetailQuery {
	return NewVialClient(_m.config).QueryDoseDetails(_m)
}

// Update returns a builder for updating this Vial.
// Note that you need to call Vial.Unwrap() before calling this method if this Vial
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vial) Update() *VialUpdateOne {
	return NewVialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vial entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vial) Unwrap() *Vial {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vial is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vial) String() string {
	var builder strings.Builder
	builder.WriteString("Vial(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("radiopharmaceutical=")
	builder.WriteString(_m.Radiopharmaceutical)
	builder.WriteString(", ")
	builder.WriteString("rx_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.RxNumber))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("actual_amount=")
	builder.WriteString(_m.ActualAmount)
	builder.WriteString(", ")
	builder.WriteString("calibration_date=")
	builder.WriteString(_m.CalibrationDate)
	builder.WriteString(", ")
	builder.WriteString("lot_number=")
	builder.WriteString(_m.LotNumber)
	builder.WriteString(", ")
	builder.WriteString("entered_by=")
	builder.WriteString(_m.EnteredBy)
	builder.WriteString(", ")
	builder.WriteString("entered_date_time=")
	builder.WriteString(_m.EnteredDateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ordered_amount=")
	builder.WriteString(_m.OrderedAmount)
	builder.WriteString(", ")
	builder.WriteString("manufacturer=")
	builder.WriteString(_m.Manufacturer)
	builder.WriteString(", ")
	builder.WriteString("volume=")
	builder.WriteString(_m.Volume)
	builder.WriteString(", ")
	builder.WriteString("radioactivity_concentration=")
	builder.WriteString(_m.RadioactivityConcentration)
	builder.WriteString(", ")
	builder.WriteString("label_image_url=")
	builder.WriteString(_m.LabelImageURL)
	builder.WriteString(", ")
	builder.WriteString("coa_image_url=")
	builder.WriteString(_m.CoaImageURL)
	builder.WriteString(", ")
	builder.WriteString("vial_image_url=")
	builder.WriteString(_m.VialImageURL)
	builder.WriteString(", ")
	builder.WriteString("new_label_image_url=")
	builder.WriteString(_m.NewLabelImageURL)
	builder.WriteString(", ")
	builder.WriteString("new_vial_image_url=")
	builder.WriteString(_m.NewVialImageURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Vials is a parsable slice of Vial.
type Vials []*Vial
