// Code generated by ent, DO NOT EDIT.

package dosedetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldID, id))
}

// VialID applies equality check predicate on the "vial_id" field. It's identical to VialIDEQ.
func VialID(v uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldVialID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldPatientID, v))
}

// StudyName applies equality check predicate on the "study_name" field. It's identical to StudyNameEQ.
func StudyName(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldStudyName, v))
}

// DateCalibration applies equality check predicate on the "date_calibration" field. It's identical to DateCalibrationEQ.
func DateCalibration(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldDateCalibration, v))
}

// TimeCalibration applies equality check predicate on the "time_calibration" field. It's identical to TimeCalibrationEQ.
func TimeCalibration(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldTimeCalibration, v))
}

// Rac applies equality check predicate on the "rac" field. It's identical to RacEQ.
func Rac(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldRac, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldManufacturer, v))
}

// RxBatch applies equality check predicate on the "rx_batch" field. It's identical to RxBatchEQ.
func RxBatch(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldRxBatch, v))
}

// LotBatch applies equality check predicate on the "lot_batch" field. It's identical to LotBatchEQ.
func LotBatch(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldLotBatch, v))
}

// Volume applies equality check predicate on the "volume" field. It's identical to VolumeEQ.
func Volume(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldVolume, v))
}

// Dos applies equality check predicate on the "dos" field. It's identical to DosEQ.
func Dos(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldDos, v))
}

// VialIDEQ applies the EQ predicate on the "vial_id" field.
func VialIDEQ(v uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldVialID, v))
}

// VialIDNEQ applies the NEQ predicate on the "vial_id" field.
func VialIDNEQ(v uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldVialID, v))
}

// VialIDIn applies the In predicate on the "vial_id" field.
func VialIDIn(vs ...uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldVialID, vs...))
}

// VialIDNotIn applies the NotIn predicate on the "vial_id" field.
func VialIDNotIn(vs ...uuid.UUID) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldVialID, vs...))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldPatientID, v))
}

// StudyNameEQ applies the EQ predicate on the "study_name" field.
func StudyNameEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldStudyName, v))
}

// StudyNameNEQ applies the NEQ predicate on the "study_name" field.
func StudyNameNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldStudyName, v))
}

// StudyNameIn applies the In predicate on the "study_name" field.
func StudyNameIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldStudyName, vs...))
}

// StudyNameNotIn applies the NotIn predicate on the "study_name" field.
func StudyNameNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldStudyName, vs...))
}

// StudyNameGT applies the GT predicate on the "study_name" field.
func StudyNameGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldStudyName, v))
}

// StudyNameGTE applies the GTE predicate on the "study_name" field.
func StudyNameGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldStudyName, v))
}

// StudyNameLT applies the LT predicate on the "study_name" field.
func StudyNameLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldStudyName, v))
}

// StudyNameLTE applies the LTE predicate on the "study_name" field.
func StudyNameLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldStudyName, v))
}

// StudyNameContains applies the Contains predicate on the "study_name" field.
func StudyNameContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldStudyName, v))
}

// StudyNameHasPrefix applies the HasPrefix predicate on the "study_name" field.
func StudyNameHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldStudyName, v))
}

// StudyNameHasSuffix applies the HasSuffix predicate on the "study_name" field.
func StudyNameHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldStudyName, v))
}

// StudyNameIsNil applies the IsNil predicate on the "study_name" field.
func StudyNameIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldStudyName))
}

// StudyNameNotNil applies the NotNil predicate on the "study_name" field.
func StudyNameNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldStudyName))
}

// StudyNameEqualFold applies the EqualFold predicate on the "study_name" field.
func StudyNameEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldStudyName, v))
}

// StudyNameContainsFold applies the ContainsFold predicate on the "study_name" field.
func StudyNameContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldStudyName, v))
}

// DateCalibrationEQ applies the EQ predicate on the "date_calibration" field.
func DateCalibrationEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldDateCalibration, v))
}

// DateCalibrationNEQ applies the NEQ predicate on the "date_calibration" field.
func DateCalibrationNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldDateCalibration, v))
}

// DateCalibrationIn applies the In predicate on the "date_calibration" field.
func DateCalibrationIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldDateCalibration, vs...))
}

// DateCalibrationNotIn applies the NotIn predicate on the "date_calibration" field.
func DateCalibrationNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldDateCalibration, vs...))
}

// DateCalibrationGT applies the GT predicate on the "date_calibration" field.
func DateCalibrationGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldDateCalibration, v))
}

// DateCalibrationGTE applies the GTE predicate on the "date_calibration" field.
func DateCalibrationGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldDateCalibration, v))
}

// DateCalibrationLT applies the LT predicate on the "date_calibration" field.
func DateCalibrationLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldDateCalibration, v))
}

// DateCalibrationLTE applies the LTE predicate on the "date_calibration" field.
func DateCalibrationLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldDateCalibration, v))
}

// DateCalibrationContains applies the Contains predicate on the "date_calibration" field.
func DateCalibrationContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldDateCalibration, v))
}

// DateCalibrationHasPrefix applies the HasPrefix predicate on the "date_calibration" field.
func DateCalibrationHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldDateCalibration, v))
}

// DateCalibrationHasSuffix applies the HasSuffix predicate on the "date_calibration" field.
func DateCalibrationHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldDateCalibration, v))
}

// DateCalibrationIsNil applies the IsNil predicate on the "date_calibration" field.
func DateCalibrationIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldDateCalibration))
}

// DateCalibrationNotNil applies the NotNil predicate on the "date_calibration" field.
func DateCalibrationNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldDateCalibration))
}

// DateCalibrationEqualFold applies the EqualFold predicate on the "date_calibration" field.
func DateCalibrationEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldDateCalibration, v))
}

// DateCalibrationContainsFold applies the ContainsFold predicate on the "date_calibration" field.
func DateCalibrationContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldDateCalibration, v))
}

// TimeCalibrationEQ applies the EQ predicate on the "time_calibration" field.
func TimeCalibrationEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldTimeCalibration, v))
}

// TimeCalibrationNEQ applies the NEQ predicate on the "time_calibration" field.
func TimeCalibrationNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldTimeCalibration, v))
}

// TimeCalibrationIn applies the In predicate on the "time_calibration" field.
func TimeCalibrationIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldTimeCalibration, vs...))
}

// TimeCalibrationNotIn applies the NotIn predicate on the "time_calibration" field.
func TimeCalibrationNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldTimeCalibration, vs...))
}

// TimeCalibrationGT applies the GT predicate on the "time_calibration" field.
func TimeCalibrationGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldTimeCalibration, v))
}

// TimeCalibrationGTE applies the GTE predicate on the "time_calibration" field.
func TimeCalibrationGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldTimeCalibration, v))
}

// TimeCalibrationLT applies the LT predicate on the "time_calibration" field.
func TimeCalibrationLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldTimeCalibration, v))
}

// TimeCalibrationLTE applies the LTE predicate on the "time_calibration" field.
func TimeCalibrationLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldTimeCalibration, v))
}

// TimeCalibrationContains applies the Contains predicate on the "time_calibration" field.
func TimeCalibrationContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldTimeCalibration, v))
}

// TimeCalibrationHasPrefix applies the HasPrefix predicate on the "time_calibration" field.
func TimeCalibrationHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldTimeCalibration, v))
}

// TimeCalibrationHasSuffix applies the HasSuffix predicate on the "time_calibration" field.
func TimeCalibrationHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldTimeCalibration, v))
}

// TimeCalibrationIsNil applies the IsNil predicate on the "time_calibration" field.
func TimeCalibrationIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldTimeCalibration))
}

// TimeCalibrationNotNil applies the NotNil predicate on the "time_calibration" field.
func TimeCalibrationNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldTimeCalibration))
}

// TimeCalibrationEqualFold applies the EqualFold predicate on the "time_calibration" field.
func TimeCalibrationEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldTimeCalibration, v))
}

// TimeCalibrationContainsFold applies the ContainsFold predicate on the "time_calibration" field.
func TimeCalibrationContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldTimeCalibration, v))
}

// RacEQ applies the EQ predicate on the "rac" field.
func RacEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldRac, v))
}

// RacNEQ applies the NEQ predicate on the "rac" field.
func RacNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldRac, v))
}

// RacIn applies the In predicate on the "rac" field.
func RacIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldRac, vs...))
}

// RacNotIn applies the NotIn predicate on the "rac" field.
func RacNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldRac, vs...))
}

// RacGT applies the GT predicate on the "rac" field.
func RacGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldRac, v))
}

// RacGTE applies the GTE predicate on the "rac" field.
func RacGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldRac, v))
}

// RacLT applies the LT predicate on the "rac" field.
func RacLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldRac, v))
}

// RacLTE applies the LTE predicate on the "rac" field.
func RacLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldRac, v))
}

// RacContains applies the Contains predicate on the "rac" field.
func RacContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldRac, v))
}

// RacHasPrefix applies the HasPrefix predicate on the "rac" field.
func RacHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldRac, v))
}

// RacHasSuffix applies the HasSuffix predicate on the "rac" field.
func RacHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldRac, v))
}

// RacIsNil applies the IsNil predicate on the "rac" field.
func RacIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldRac))
}

// RacNotNil applies the NotNil predicate on the "rac" field.
func RacNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldRac))
}

// RacEqualFold applies the EqualFold predicate on the "rac" field.
func RacEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldRac, v))
}

// RacContainsFold applies the ContainsFold predicate on the "rac" field.
func RacContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldRac, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldManufacturer, v))
}

// RxBatchEQ applies the EQ predicate on the "rx_batch" field.
func RxBatchEQ(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldRxBatch, v))
}

// RxBatchNEQ applies the NEQ predicate on the "rx_batch" field.
func RxBatchNEQ(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldRxBatch, v))
}

// RxBatchIn applies the In predicate on the "rx_batch" field.
func RxBatchIn(vs ...int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldRxBatch, vs...))
}

// RxBatchNotIn applies the NotIn predicate on the "rx_batch" field.
func RxBatchNotIn(vs ...int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldRxBatch, vs...))
}

// RxBatchGT applies the GT predicate on the "rx_batch" field.
func RxBatchGT(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldRxBatch, v))
}

// RxBatchGTE applies the GTE predicate on the "rx_batch" field.
func RxBatchGTE(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldRxBatch, v))
}

// RxBatchLT applies the LT predicate on the "rx_batch" field.
func RxBatchLT(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldRxBatch, v))
}

// RxBatchLTE applies the LTE predicate on the "rx_batch" field.
func RxBatchLTE(v int) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldRxBatch, v))
}

// LotBatchEQ applies the EQ predicate on the "lot_batch" field.
func LotBatchEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldLotBatch, v))
}

// LotBatchNEQ applies the NEQ predicate on the "lot_batch" field.
func LotBatchNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldLotBatch, v))
}

// LotBatchIn applies the In predicate on the "lot_batch" field.
func LotBatchIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldLotBatch, vs...))
}

// LotBatchNotIn applies the NotIn predicate on the "lot_batch" field.
func LotBatchNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldLotBatch, vs...))
}

// LotBatchGT applies the GT predicate on the "lot_batch" field.
func LotBatchGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldLotBatch, v))
}

// LotBatchGTE applies the GTE predicate on the "lot_batch" field.
func LotBatchGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldLotBatch, v))
}

// LotBatchLT applies the LT predicate on the "lot_batch" field.
func LotBatchLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldLotBatch, v))
}

// LotBatchLTE applies the LTE predicate on the "lot_batch" field.
func LotBatchLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldLotBatch, v))
}

// LotBatchContains applies the Contains predicate on the "lot_batch" field.
func LotBatchContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldLotBatch, v))
}

// LotBatchHasPrefix applies the HasPrefix predicate on the "lot_batch" field.
func LotBatchHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldLotBatch, v))
}

// LotBatchHasSuffix applies the HasSuffix predicate on the "lot_batch" field.
func LotBatchHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldLotBatch, v))
}

// LotBatchIsNil applies the IsNil predicate on the "lot_batch" field.
func LotBatchIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldLotBatch))
}

// LotBatchNotNil applies the NotNil predicate on the "lot_batch" field.
func LotBatchNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldLotBatch))
}

// LotBatchEqualFold applies the EqualFold predicate on the "lot_batch" field.
func LotBatchEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldLotBatch, v))
}

// LotBatchContainsFold applies the ContainsFold predicate on the "lot_batch" field.
func LotBatchContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldLotBatch, v))
}

// VolumeEQ applies the EQ predicate on the "volume" field.
func VolumeEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldVolume, v))
}

// VolumeNEQ applies the NEQ predicate on the "volume" field.
func VolumeNEQ(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldVolume, v))
}

// VolumeIn applies the In predicate on the "volume" field.
func VolumeIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldVolume, vs...))
}

// VolumeNotIn applies the NotIn predicate on the "volume" field.
func VolumeNotIn(vs ...string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldVolume, vs...))
}

// VolumeGT applies the GT predicate on the "volume" field.
func VolumeGT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldVolume, v))
}

// VolumeGTE applies the GTE predicate on the "volume" field.
func VolumeGTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldVolume, v))
}

// VolumeLT applies the LT predicate on the "volume" field.
func VolumeLT(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldVolume, v))
}

// VolumeLTE applies the LTE predicate on the "volume" field.
func VolumeLTE(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldVolume, v))
}

// VolumeContains applies the Contains predicate on the "volume" field.
func VolumeContains(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContains(FieldVolume, v))
}

// VolumeHasPrefix applies the HasPrefix predicate on the "volume" field.
func VolumeHasPrefix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasPrefix(FieldVolume, v))
}

// VolumeHasSuffix applies the HasSuffix predicate on the "volume" field.
func VolumeHasSuffix(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldHasSuffix(FieldVolume, v))
}

// VolumeIsNil applies the IsNil predicate on the "volume" field.
func VolumeIsNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIsNull(FieldVolume))
}

// VolumeNotNil applies the NotNil predicate on the "volume" field.
func VolumeNotNil() predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotNull(FieldVolume))
}

// VolumeEqualFold applies the EqualFold predicate on the "volume" field.
func VolumeEqualFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEqualFold(FieldVolume, v))
}

// VolumeContainsFold applies the ContainsFold predicate on the "volume" field.
func VolumeContainsFold(v string) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldContainsFold(FieldVolume, v))
}

// DosEQ applies the EQ predicate on the "dos" field.
func DosEQ(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldEQ(FieldDos, v))
}

// DosNEQ applies the NEQ predicate on the "dos" field.
func DosNEQ(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNEQ(FieldDos, v))
}

// DosIn applies the In predicate on the "dos" field.
func DosIn(vs ...time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldIn(FieldDos, vs...))
}

// DosNotIn applies the NotIn predicate on the "dos" field.
func DosNotIn(vs ...time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldNotIn(FieldDos, vs...))
}

// DosGT applies the GT predicate on the "dos" field.
func DosGT(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGT(FieldDos, v))
}

// DosGTE applies the GTE predicate on the "dos" field.
func DosGTE(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldGTE(FieldDos, v))
}

// DosLT applies the LT predicate on the "dos" field.
func DosLT(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLT(FieldDos, v))
}

// DosLTE applies the LTE predicate on the "dos" field.
func DosLTE(v time.Time) predicate.DoseDetail {
	return predicate.DoseDetail(sql.FieldLTE(FieldDos, v))
}

// HasVial applies the HasEdge predicate on the "vial" edge.
func HasVial() predicate.DoseDetail {
	return predicate.DoseDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VialTable, VialColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVialWith applies the HasEdge predicate on the "vial" edge with a given conditions (other predicates).
func HasVialWith(preds ...predicate.Vial) predicate.DoseDetail {
	return predicate.DoseDetail(func(s *sql.Selector) {
		step := newVialStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoseDetail) predicate.DoseDetail {
	return predicate.DoseDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoseDetail) predicate.DoseDetail {
	return predicate.DoseDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoseDetail) predicate.DoseDetail {
	return predicate.DoseDetail(sql.NotPredicates(p))
}
