// Code generated by ent, DO NOT EDIT.

package dosedetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dosedetail type in the database.
	Label = "dose_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVialID holds the string denoting the vial_id field in the database.
	FieldVialID = "vial_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldStudyName holds the string denoting the study_name field in the database.
	FieldStudyName = "study_name"
	// FieldDateCalibration holds the string denoting the date_calibration field in the database.
	FieldDateCalibration = "date_calibration"
	// FieldTimeCalibration holds the string denoting the time_calibration field in the database.
	FieldTimeCalibration = "time_calibration"
	// FieldRac holds the string denoting the rac field in the database.
	FieldRac = "rac"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldRxBatch holds the string denoting the rx_batch field in the database.
	FieldRxBatch = "rx_batch"
	// FieldLotBatch holds the string denoting the lot_batch field in the database.
	FieldLotBatch = "lot_batch"
	// FieldVolume holds the string denoting the volume field in the database.
	FieldVolume = "volume"
	// FieldDos holds the string denoting the dos field in the database.
	FieldDos = "dos"
	// EdgeVial holds the string denoting the vial edge name in mutations.
	EdgeVial = "vial"
	// Table holds the table name of the dosedetail in the database.
	Table = "dos_details"
	// VialTable is the table that holds the vial relation/edge.
	VialTable = "dos_details"
	// VialInverseTable is the table name for the Vial entity.
	// It exists in this package in order to avoid circular dependency with the "vial" package.
	VialInverseTable = "vial"
	// VialColumn is the table column denoting the vial relation/edge.
	VialColumn = "vial_id"
)

// Columns holds all SQL columns for dosedetail fields.
var Columns = []string{
	FieldID,
	FieldVialID,
	FieldPatientID,
	FieldStudyName,
	FieldDateCalibration,
	FieldTimeCalibration,
	FieldRac,
	FieldManufacturer,
	FieldRxBatch,
	FieldLotBatch,
	FieldVolume,
	FieldDos,
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
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// RxBatchValidator is a validator for the "rx_batch" field. It is called by the builders before save.
	RxBatchValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DoseDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVialID orders the results by the vial_id field.
func ByVialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVialID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByStudyName orders the results by the study_name field.
func ByStudyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyName, opts...).ToFunc()
}

// ByDateCalibration orders the results by the date_calibration field.
func ByDateCalibration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateCalibration, opts...).ToFunc()
}

// ByTimeCalibration orders the results by the time_calibration field.
func ByTimeCalibration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeCalibration, opts...).ToFunc()
}

// ByRac orders the results by the rac field.
func ByRac(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRac, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// ByRxBatch orders the results by the rx_batch field.
func ByRxBatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRxBatch, opts...).ToFunc()
}

// ByLotBatch orders the results by the lot_batch field.
func ByLotBatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLotBatch, opts...).ToFunc()
}

// ByVolume orders the results by the volume field.
func ByVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolume, opts...).ToFunc()
}

// ByDos orders the results by the dos field.
func ByDos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDos, opts...).ToFunc()
}

// ByVialField orders the results by vial field.
func ByVialField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVialStep(), sql.OrderByField(field, opts...))
	}
}
func newVialStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VialInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VialTable, VialColumn),
	)
}
