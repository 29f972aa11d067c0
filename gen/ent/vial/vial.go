// Code generated by ent, DO NOT EDIT.

package vial

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vial type in the database.
	Label = "vial"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRadiopharmaceutical holds the string denoting the radiopharmaceutical field in the database.
	FieldRadiopharmaceutical = "radiopharmaceutical"
	// FieldRxNumber holds the string denoting the rx_number field in the database.
	FieldRxNumber = "rx_number"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldActualAmount holds the string denoting the actual_amount field in the database.
	FieldActualAmount = "actual_amount"
	// FieldCalibrationDate holds the string denoting the calibration_date field in the database.
	FieldCalibrationDate = "calibration_date"
	// FieldLotNumber holds the string denoting the lot_number field in the database.
	FieldLotNumber = "lot_number"
	// FieldEnteredBy holds the string denoting the entered_by field in the database.
	FieldEnteredBy = "entered_by"
	// FieldEnteredDateTime holds the string denoting the entered_date_time field in the database.
	FieldEnteredDateTime = "entered_date_time"
	// FieldOrderedAmount holds the string denoting the ordered_amount field in the database.
	FieldOrderedAmount = "ordered_amount"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldVolume holds the string denoting the volume field in the database.
	FieldVolume = "volume"
	// FieldRadioactivityConcentration holds the string denoting the radioactivity_concentration field in the database.
	FieldRadioactivityConcentration = "radioactivity_concentration"
	// FieldLabelImageURL holds the string denoting the label_image_url field in the database.
	FieldLabelImageURL = "label_image_url"
	// FieldCoaImageURL holds the string denoting the coa_image_url field in the database.
	FieldCoaImageURL = "coa_image_url"
	// FieldVialImageURL holds the string denoting the vial_image_url field in the database.
	FieldVialImageURL = "vial_image_url"
	// FieldNewLabelImageURL holds the string denoting the new_label_image_url field in the database.
	FieldNewLabelImageURL = "new_label_image_url"
	// FieldNewVialImageURL holds the string denoting the new_vial_image_url field in the database.
	FieldNewVialImageURL = "new_vial_image_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDoseDetails holds the string denoting the dose_details edge name in mutations.
	EdgeDoseDetails = "dose_details"
	// Table holds the table name of the vial in the database.
	Table = "vial"
	// DoseDetailsTable is the table that holds the dose_details relation/edge.
	DoseDetailsTable = "dos_details"
	// DoseDetailsInverseTable is the table name for the DoseDetail entity.
	// It exists in this package in order to avoid circular dependency with the "dosedetail" package.
	DoseDetailsInverseTable = "dos_details"
	// DoseDetailsColumn is the table column denoting the dose_details relation/edge.
	DoseDetailsColumn = "vial_id"
)

// Columns holds all SQL columns for vial fields.
var Columns = []string{
	FieldID,
	FieldRadiopharmaceutical,
	FieldRxNumber,
	FieldPatientID,
	FieldActualAmount,
	FieldCalibrationDate,
	FieldLotNumber,
	FieldEnteredBy,
	FieldEnteredDateTime,
	FieldOrderedAmount,
	FieldManufacturer,
	FieldVolume,
	FieldRadioactivityConcentration,
	FieldLabelImageURL,
	FieldCoaImageURL,
	FieldVialImageURL,
	FieldNewLabelImageURL,
	FieldNewVialImageURL,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RadiopharmaceuticalValidator is a validator for the "radiopharmaceutical" field. It is called by the builders before save.
	RadiopharmaceuticalValidator func(string) error
	// RxNumberValidator is a validator for the "rx_number" field. It is called by the builders before save.
	RxNumberValidator func(int) error
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// EnteredByValidator is a validator for the "entered_by" field. It is called by the builders before save.
	EnteredByValidator func(string) error
	// DefaultEnteredDateTime holds the default value on creation for the "entered_date_time" field.
	DefaultEnteredDateTime func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Vial queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRadiopharmaceutical orders the results by the radiopharmaceutical field.
func ByRadiopharmaceutical(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiopharmaceutical, opts...).ToFunc()
}

// ByRxNumber orders the results by the rx_number field.
func ByRxNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRxNumber, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByActualAmount orders the results by the actual_amount field.
func ByActualAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualAmount, opts...).ToFunc()
}

// ByCalibrationDate orders the results by the calibration_date field.
func ByCalibrationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalibrationDate, opts...).ToFunc()
}

// ByLotNumber orders the results by the lot_number field.
func ByLotNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLotNumber, opts...).ToFunc()
}

// ByEnteredBy orders the results by the entered_by field.
func ByEnteredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnteredBy, opts...).ToFunc()
}

// ByEnteredDateTime orders the results by the entered_date_time field.
func ByEnteredDateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnteredDateTime, opts...).ToFunc()
}

// ByOrderedAmount orders the results by the ordered_amount field.
func ByOrderedAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderedAmount, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// ByVolume orders the results by the volume field.
func ByVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolume, opts...).ToFunc()
}

// ByRadioactivityConcentration orders the results by the radioactivity_concentration field.
func ByRadioactivityConcentration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadioactivityConcentration, opts...).ToFunc()
}

// ByLabelImageURL orders the results by the label_image_url field.
func ByLabelImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelImageURL, opts...).ToFunc()
}

// ByCoaImageURL orders the results by the coa_image_url field.
func ByCoaImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoaImageURL, opts...).ToFunc()
}

// ByVialImageURL orders the results by the vial_image_url field.
func ByVialImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVialImageURL, opts...).ToFunc()
}

// ByNewLabelImageURL orders the results by the new_label_image_url field.
func ByNewLabelImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewLabelImageURL, opts...).ToFunc()
}

// ByNewVialImageURL orders the results by the new_vial_image_url field.
func ByNewVialImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewVialImageURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDoseDetailsCount orders the results by dose_details count.
func ByDoseDetailsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDoseDetailsStep(), opts...)
	}
}

// ByDoseDetails orders the results by dose_details terms.
func ByDoseDetails(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoseDetailsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDoseDetailsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoseDetailsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DoseDetailsTable, DoseDetailsColumn),
	)
}
