// Code generated by ent, DO NOT EDIT.

package vial

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldID, id))
}

// Radiopharmaceutical applies equality check predicate on the "radiopharmaceutical" field. It's identical to RadiopharmaceuticalEQ.
func Radiopharmaceutical(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRadiopharmaceutical, v))
}

// RxNumber applies equality check predicate on the "rx_number" field. It's identical to RxNumberEQ.
func RxNumber(v int) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRxNumber, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldPatientID, v))
}

// ActualAmount applies equality check predicate on the "actual_amount" field. It's identical to ActualAmountEQ.
func ActualAmount(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldActualAmount, v))
}

// CalibrationDate applies equality check predicate on the "calibration_date" field. It's identical to CalibrationDateEQ.
func CalibrationDate(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCalibrationDate, v))
}

// LotNumber applies equality check predicate on the "lot_number" field. It's identical to LotNumberEQ.
func LotNumber(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldLotNumber, v))
}

// EnteredBy applies equality check predicate on the "entered_by" field. It's identical to EnteredByEQ.
func EnteredBy(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldEnteredBy, v))
}

// EnteredDateTime applies equality check predicate on the "entered_date_time" field. It's identical to EnteredDateTimeEQ.
func EnteredDateTime(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldEnteredDateTime, v))
}

// OrderedAmount applies equality check predicate on the "ordered_amount" field. It's identical to OrderedAmountEQ.
func OrderedAmount(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldOrderedAmount, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldManufacturer, v))
}

// Volume applies equality check predicate on the "volume" field. It's identical to VolumeEQ.
func Volume(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldVolume, v))
}

// RadioactivityConcentration applies equality check predicate on the "radioactivity_concentration" field. It's identical to RadioactivityConcentrationEQ.
func RadioactivityConcentration(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRadioactivityConcentration, v))
}

// LabelImageURL applies equality check predicate on the "label_image_url" field. It's identical to LabelImageURLEQ.
func LabelImageURL(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldLabelImageURL, v))
}

// CoaImageURL applies equality check predicate on the "coa_image_url" field. It's identical to CoaImageURLEQ.
func CoaImageURL(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCoaImageURL, v))
}

// VialImageURL applies equality check predicate on the "vial_image_url" field. It's identical to VialImageURLEQ.
func VialImageURL(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldVialImageURL, v))
}

// NewLabelImageURL applies equality check predicate on the "new_label_image_url" field. It's identical to NewLabelImageURLEQ.
func NewLabelImageURL(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldNewLabelImageURL, v))
}

// NewVialImageURL applies equality check predicate on the "new_vial_image_url" field. It's identical to NewVialImageURLEQ.
func NewVialImageURL(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldNewVialImageURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldUpdatedAt, v))
}

// RadiopharmaceuticalEQ applies the EQ predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalNEQ applies the NEQ predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalIn applies the In predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldRadiopharmaceutical, vs...))
}

// RadiopharmaceuticalNotIn applies the NotIn predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldRadiopharmaceutical, vs...))
}

// RadiopharmaceuticalGT applies the GT predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalGTE applies the GTE predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalLT applies the LT predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalLTE applies the LTE predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalContains applies the Contains predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalHasPrefix applies the HasPrefix predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalHasSuffix applies the HasSuffix predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalEqualFold applies the EqualFold predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldRadiopharmaceutical, v))
}

// RadiopharmaceuticalContainsFold applies the ContainsFold predicate on the "radiopharmaceutical" field.
func RadiopharmaceuticalContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldRadiopharmaceutical, v))
}

// RxNumberEQ applies the EQ predicate on the "rx_number" field.
func RxNumberEQ(v int) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRxNumber, v))
}

// RxNumberNEQ applies the NEQ predicate on the "rx_number" field.
func RxNumberNEQ(v int) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldRxNumber, v))
}

// RxNumberIn applies the In predicate on the "rx_number" field.
func RxNumberIn(vs ...int) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldRxNumber, vs...))
}

// RxNumberNotIn applies the NotIn predicate on the "rx_number" field.
func RxNumberNotIn(vs ...int) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldRxNumber, vs...))
}

// RxNumberGT applies the GT predicate on the "rx_number" field.
func RxNumberGT(v int) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldRxNumber, v))
}

// RxNumberGTE applies the GTE predicate on the "rx_number" field.
func RxNumberGTE(v int) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldRxNumber, v))
}

// RxNumberLT applies the LT predicate on the "rx_number" field.
func RxNumberLT(v int) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldRxNumber, v))
}

// RxNumberLTE applies the LTE predicate on the "rx_number" field.
func RxNumberLTE(v int) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldRxNumber, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldPatientID, v))
}

// ActualAmountEQ applies the EQ predicate on the "actual_amount" field.
func ActualAmountEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldActualAmount, v))
}

// ActualAmountNEQ applies the NEQ predicate on the "actual_amount" field.
func ActualAmountNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldActualAmount, v))
}

// ActualAmountIn applies the In predicate on the "actual_amount" field.
func ActualAmountIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldActualAmount, vs...))
}

// ActualAmountNotIn applies the NotIn predicate on the "actual_amount" field.
func ActualAmountNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldActualAmount, vs...))
}

// ActualAmountGT applies the GT predicate on the "actual_amount" field.
func ActualAmountGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldActualAmount, v))
}

// ActualAmountGTE applies the GTE predicate on the "actual_amount" field.
func ActualAmountGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldActualAmount, v))
}

// ActualAmountLT applies the LT predicate on the "actual_amount" field.
func ActualAmountLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldActualAmount, v))
}

// ActualAmountLTE applies the LTE predicate on the "actual_amount" field.
func ActualAmountLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldActualAmount, v))
}

// ActualAmountContains applies the Contains predicate on the "actual_amount" field.
func ActualAmountContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldActualAmount, v))
}

// ActualAmountHasPrefix applies the HasPrefix predicate on the "actual_amount" field.
func ActualAmountHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldActualAmount, v))
}

// ActualAmountHasSuffix applies the HasSuffix predicate on the "actual_amount" field.
func ActualAmountHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldActualAmount, v))
}

// ActualAmountIsNil applies the IsNil predicate on the "actual_amount" field.
func ActualAmountIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldActualAmount))
}

// ActualAmountNotNil applies the NotNil predicate on the "actual_amount" field.
func ActualAmountNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldActualAmount))
}

// ActualAmountEqualFold applies the EqualFold predicate on the "actual_amount" field.
func ActualAmountEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldActualAmount, v))
}

// ActualAmountContainsFold applies the ContainsFold predicate on the "actual_amount" field.
func ActualAmountContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldActualAmount, v))
}

// CalibrationDateEQ applies the EQ predicate on the "calibration_date" field.
func CalibrationDateEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCalibrationDate, v))
}

// CalibrationDateNEQ applies the NEQ predicate on the "calibration_date" field.
func CalibrationDateNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldCalibrationDate, v))
}

// CalibrationDateIn applies the In predicate on the "calibration_date" field.
func CalibrationDateIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldCalibrationDate, vs...))
}

// CalibrationDateNotIn applies the NotIn predicate on the "calibration_date" field.
func CalibrationDateNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldCalibrationDate, vs...))
}

// CalibrationDateGT applies the GT predicate on the "calibration_date" field.
func CalibrationDateGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldCalibrationDate, v))
}

// CalibrationDateGTE applies the GTE predicate on the "calibration_date" field.
func CalibrationDateGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldCalibrationDate, v))
}

// CalibrationDateLT applies the LT predicate on the "calibration_date" field.
func CalibrationDateLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldCalibrationDate, v))
}

// CalibrationDateLTE applies the LTE predicate on the "calibration_date" field.
func CalibrationDateLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldCalibrationDate, v))
}

// CalibrationDateContains applies the Contains predicate on the "calibration_date" field.
func CalibrationDateContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldCalibrationDate, v))
}

// CalibrationDateHasPrefix applies the HasPrefix predicate on the "calibration_date" field.
func CalibrationDateHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldCalibrationDate, v))
}

// CalibrationDateHasSuffix applies the HasSuffix predicate on the "calibration_date" field.
func CalibrationDateHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldCalibrationDate, v))
}

// CalibrationDateIsNil applies the IsNil predicate on the "calibration_date" field.
func CalibrationDateIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldCalibrationDate))
}

// CalibrationDateNotNil applies the NotNil predicate on the "calibration_date" field.
func CalibrationDateNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldCalibrationDate))
}

// CalibrationDateEqualFold applies the EqualFold predicate on the "calibration_date" field.
func CalibrationDateEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldCalibrationDate, v))
}

// CalibrationDateContainsFold applies the ContainsFold predicate on the "calibration_date" field.
func CalibrationDateContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldCalibrationDate, v))
}

// LotNumberEQ applies the EQ predicate on the "lot_number" field.
func LotNumberEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldLotNumber, v))
}

// LotNumberNEQ applies the NEQ predicate on the "lot_number" field.
func LotNumberNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldLotNumber, v))
}

// LotNumberIn applies the In predicate on the "lot_number" field.
func LotNumberIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldLotNumber, vs...))
}

// LotNumberNotIn applies the NotIn predicate on the "lot_number" field.
func LotNumberNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldLotNumber, vs...))
}

// LotNumberGT applies the GT predicate on the "lot_number" field.
func LotNumberGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldLotNumber, v))
}

// LotNumberGTE applies the GTE predicate on the "lot_number" field.
func LotNumberGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldLotNumber, v))
}

// LotNumberLT applies the LT predicate on the "lot_number" field.
func LotNumberLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldLotNumber, v))
}

// LotNumberLTE applies the LTE predicate on the "lot_number" field.
func LotNumberLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldLotNumber, v))
}

// LotNumberContains applies the Contains predicate on the "lot_number" field.
func LotNumberContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldLotNumber, v))
}

// LotNumberHasPrefix applies the HasPrefix predicate on the "lot_number" field.
func LotNumberHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldLotNumber, v))
}

// LotNumberHasSuffix applies the HasSuffix predicate on the "lot_number" field.
func LotNumberHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldLotNumber, v))
}

// LotNumberIsNil applies the IsNil predicate on the "lot_number" field.
func LotNumberIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldLotNumber))
}

// LotNumberNotNil applies the NotNil predicate on the "lot_number" field.
func LotNumberNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldLotNumber))
}

// LotNumberEqualFold applies the EqualFold predicate on the "lot_number" field.
func LotNumberEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldLotNumber, v))
}

// LotNumberContainsFold applies the ContainsFold predicate on the "lot_number" field.
func LotNumberContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldLotNumber, v))
}

// EnteredByEQ applies the EQ predicate on the "entered_by" field.
func EnteredByEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldEnteredBy, v))
}

// EnteredByNEQ applies the NEQ predicate on the "entered_by" field.
func EnteredByNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldEnteredBy, v))
}

// EnteredByIn applies the In predicate on the "entered_by" field.
func EnteredByIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldEnteredBy, vs...))
}

// EnteredByNotIn applies the NotIn predicate on the "entered_by" field.
func EnteredByNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldEnteredBy, vs...))
}

// EnteredByGT applies the GT predicate on the "entered_by" field.
func EnteredByGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldEnteredBy, v))
}

// EnteredByGTE applies the GTE predicate on the "entered_by" field.
func EnteredByGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldEnteredBy, v))
}

// EnteredByLT applies the LT predicate on the "entered_by" field.
func EnteredByLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldEnteredBy, v))
}

// EnteredByLTE applies the LTE predicate on the "entered_by" field.
func EnteredByLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldEnteredBy, v))
}

// EnteredByContains applies the Contains predicate on the "entered_by" field.
func EnteredByContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldEnteredBy, v))
}

// EnteredByHasPrefix applies the HasPrefix predicate on the "entered_by" field.
func EnteredByHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldEnteredBy, v))
}

// EnteredByHasSuffix applies the HasSuffix predicate on the "entered_by" field.
func EnteredByHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldEnteredBy, v))
}

// EnteredByEqualFold applies the EqualFold predicate on the "entered_by" field.
func EnteredByEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldEnteredBy, v))
}

// EnteredByContainsFold applies the ContainsFold predicate on the "entered_by" field.
func EnteredByContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldEnteredBy, v))
}

// EnteredDateTimeEQ applies the EQ predicate on the "entered_date_time" field.
func EnteredDateTimeEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldEnteredDateTime, v))
}

// EnteredDateTimeNEQ applies the NEQ predicate on the "entered_date_time" field.
func EnteredDateTimeNEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldEnteredDateTime, v))
}

// EnteredDateTimeIn applies the In predicate on the "entered_date_time" field.
func EnteredDateTimeIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldEnteredDateTime, vs...))
}

// EnteredDateTimeNotIn applies the NotIn predicate on the "entered_date_time" field.
func EnteredDateTimeNotIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldEnteredDateTime, vs...))
}

// EnteredDateTimeGT applies the GT predicate on the "entered_date_time" field.
func EnteredDateTimeGT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldEnteredDateTime, v))
}

// EnteredDateTimeGTE applies the GTE predicate on the "entered_date_time" field.
func EnteredDateTimeGTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldEnteredDateTime, v))
}

// EnteredDateTimeLT applies the LT predicate on the "entered_date_time" field.
func EnteredDateTimeLT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldEnteredDateTime, v))
}

// EnteredDateTimeLTE applies the LTE predicate on the "entered_date_time" field.
func EnteredDateTimeLTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldEnteredDateTime, v))
}

// OrderedAmountEQ applies the EQ predicate on the "ordered_amount" field.
func OrderedAmountEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldOrderedAmount, v))
}

// OrderedAmountNEQ applies the NEQ predicate on the "ordered_amount" field.
func OrderedAmountNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldOrderedAmount, v))
}

// OrderedAmountIn applies the In predicate on the "ordered_amount" field.
func OrderedAmountIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldOrderedAmount, vs...))
}

// OrderedAmountNotIn applies the NotIn predicate on the "ordered_amount" field.
func OrderedAmountNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldOrderedAmount, vs...))
}

// OrderedAmountGT applies the GT predicate on the "ordered_amount" field.
func OrderedAmountGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldOrderedAmount, v))
}

// OrderedAmountGTE applies the GTE predicate on the "ordered_amount" field.
func OrderedAmountGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldOrderedAmount, v))
}

// OrderedAmountLT applies the LT predicate on the "ordered_amount" field.
func OrderedAmountLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldOrderedAmount, v))
}

// OrderedAmountLTE applies the LTE predicate on the "ordered_amount" field.
func OrderedAmountLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldOrderedAmount, v))
}

// OrderedAmountContains applies the Contains predicate on the "ordered_amount" field.
func OrderedAmountContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldOrderedAmount, v))
}

// OrderedAmountHasPrefix applies the HasPrefix predicate on the "ordered_amount" field.
func OrderedAmountHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldOrderedAmount, v))
}

// OrderedAmountHasSuffix applies the HasSuffix predicate on the "ordered_amount" field.
func OrderedAmountHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldOrderedAmount, v))
}

// OrderedAmountIsNil applies the IsNil predicate on the "ordered_amount" field.
func OrderedAmountIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldOrderedAmount))
}

// OrderedAmountNotNil applies the NotNil predicate on the "ordered_amount" field.
func OrderedAmountNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldOrderedAmount))
}

// OrderedAmountEqualFold applies the EqualFold predicate on the "ordered_amount" field.
func OrderedAmountEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldOrderedAmount, v))
}

// OrderedAmountContainsFold applies the ContainsFold predicate on the "ordered_amount" field.
func OrderedAmountContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldOrderedAmount, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldManufacturer, v))
}

// VolumeEQ applies the EQ predicate on the "volume" field.
func VolumeEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldVolume, v))
}

// VolumeNEQ applies the NEQ predicate on the "volume" field.
func VolumeNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldVolume, v))
}

// VolumeIn applies the In predicate on the "volume" field.
func VolumeIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldVolume, vs...))
}

// VolumeNotIn applies the NotIn predicate on the "volume" field.
func VolumeNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldVolume, vs...))
}

// VolumeGT applies the GT predicate on the "volume" field.
func VolumeGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldVolume, v))
}

// VolumeGTE applies the GTE predicate on the "volume" field.
func VolumeGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldVolume, v))
}

// VolumeLT applies the LT predicate on the "volume" field.
func VolumeLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldVolume, v))
}

// VolumeLTE applies the LTE predicate on the "volume" field.
func VolumeLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldVolume, v))
}

// VolumeContains applies the Contains predicate on the "volume" field.
func VolumeContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldVolume, v))
}

// VolumeHasPrefix applies the HasPrefix predicate on the "volume" field.
func VolumeHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldVolume, v))
}

// VolumeHasSuffix applies the HasSuffix predicate on the "volume" field.
func VolumeHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldVolume, v))
}

// VolumeIsNil applies the IsNil predicate on the "volume" field.
func VolumeIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldVolume))
}

// VolumeNotNil applies the NotNil predicate on the "volume" field.
func VolumeNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldVolume))
}

// VolumeEqualFold applies the EqualFold predicate on the "volume" field.
func VolumeEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldVolume, v))
}

// VolumeContainsFold applies the ContainsFold predicate on the "volume" field.
func VolumeContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldVolume, v))
}

// RadioactivityConcentrationEQ applies the EQ predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationNEQ applies the NEQ predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationIn applies the In predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldRadioactivityConcentration, vs...))
}

// RadioactivityConcentrationNotIn applies the NotIn predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldRadioactivityConcentration, vs...))
}

// RadioactivityConcentrationGT applies the GT predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationGTE applies the GTE predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationLT applies the LT predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationLTE applies the LTE predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationContains applies the Contains predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationHasPrefix applies the HasPrefix predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationHasSuffix applies the HasSuffix predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationIsNil applies the IsNil predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldRadioactivityConcentration))
}

// RadioactivityConcentrationNotNil applies the NotNil predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldRadioactivityConcentration))
}

// RadioactivityConcentrationEqualFold applies the EqualFold predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldRadioactivityConcentration, v))
}

// RadioactivityConcentrationContainsFold applies the ContainsFold predicate on the "radioactivity_concentration" field.
func RadioactivityConcentrationContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldRadioactivityConcentration, v))
}

// LabelImageURLEQ applies the EQ predicate on the "label_image_url" field.
func LabelImageURLEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldLabelImageURL, v))
}

// LabelImageURLNEQ applies the NEQ predicate on the "label_image_url" field.
func LabelImageURLNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldLabelImageURL, v))
}

// LabelImageURLIn applies the In predicate on the "label_image_url" field.
func LabelImageURLIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldLabelImageURL, vs...))
}

// LabelImageURLNotIn applies the NotIn predicate on the "label_image_url" field.
func LabelImageURLNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldLabelImageURL, vs...))
}

// LabelImageURLGT applies the GT predicate on the "label_image_url" field.
func LabelImageURLGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldLabelImageURL, v))
}

// LabelImageURLGTE applies the GTE predicate on the "label_image_url" field.
func LabelImageURLGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldLabelImageURL, v))
}

// LabelImageURLLT applies the LT predicate on the "label_image_url" field.
func LabelImageURLLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldLabelImageURL, v))
}

// LabelImageURLLTE applies the LTE predicate on the "label_image_url" field.
func LabelImageURLLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldLabelImageURL, v))
}

// LabelImageURLContains applies the Contains predicate on the "label_image_url" field.
func LabelImageURLContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldLabelImageURL, v))
}

// LabelImageURLHasPrefix applies the HasPrefix predicate on the "label_image_url" field.
func LabelImageURLHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldLabelImageURL, v))
}

// LabelImageURLHasSuffix applies the HasSuffix predicate on the "label_image_url" field.
func LabelImageURLHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldLabelImageURL, v))
}

// LabelImageURLIsNil applies the IsNil predicate on the "label_image_url" field.
func LabelImageURLIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldLabelImageURL))
}

// LabelImageURLNotNil applies the NotNil predicate on the "label_image_url" field.
func LabelImageURLNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldLabelImageURL))
}

// LabelImageURLEqualFold applies the EqualFold predicate on the "label_image_url" field.
func LabelImageURLEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldLabelImageURL, v))
}

// LabelImageURLContainsFold applies the ContainsFold predicate on the "label_image_url" field.
func LabelImageURLContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldLabelImageURL, v))
}

// CoaImageURLEQ applies the EQ predicate on the "coa_image_url" field.
func CoaImageURLEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCoaImageURL, v))
}

// CoaImageURLNEQ applies the NEQ predicate on the "coa_image_url" field.
func CoaImageURLNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldCoaImageURL, v))
}

// CoaImageURLIn applies the In predicate on the "coa_image_url" field.
func CoaImageURLIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldCoaImageURL, vs...))
}

// CoaImageURLNotIn applies the NotIn predicate on the "coa_image_url" field.
func CoaImageURLNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldCoaImageURL, vs...))
}

// CoaImageURLGT applies the GT predicate on the "coa_image_url" field.
func CoaImageURLGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldCoaImageURL, v))
}

// CoaImageURLGTE applies the GTE predicate on the "coa_image_url" field.
func CoaImageURLGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldCoaImageURL, v))
}

// CoaImageURLLT applies the LT predicate on the "coa_image_url" field.
func CoaImageURLLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldCoaImageURL, v))
}

// CoaImageURLLTE applies the LTE predicate on the "coa_image_url" field.
func CoaImageURLLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldCoaImageURL, v))
}

// CoaImageURLContains applies the Contains predicate on the "coa_image_url" field.
func CoaImageURLContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldCoaImageURL, v))
}

// CoaImageURLHasPrefix applies the HasPrefix predicate on the "coa_image_url" field.
func CoaImageURLHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldCoaImageURL, v))
}

// CoaImageURLHasSuffix applies the HasSuffix predicate on the "coa_image_url" field.
func CoaImageURLHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldCoaImageURL, v))
}

// CoaImageURLIsNil applies the IsNil predicate on the "coa_image_url" field.
func CoaImageURLIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldCoaImageURL))
}

// CoaImageURLNotNil applies the NotNil predicate on the "coa_image_url" field.
func CoaImageURLNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldCoaImageURL))
}

// CoaImageURLEqualFold applies the EqualFold predicate on the "coa_image_url" field.
func CoaImageURLEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldCoaImageURL, v))
}

// CoaImageURLContainsFold applies the ContainsFold predicate on the "coa_image_url" field.
func CoaImageURLContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldCoaImageURL, v))
}

// VialImageURLEQ applies the EQ predicate on the "vial_image_url" field.
func VialImageURLEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldVialImageURL, v))
}

// VialImageURLNEQ applies the NEQ predicate on the "vial_image_url" field.
func VialImageURLNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldVialImageURL, v))
}

// VialImageURLIn applies the In predicate on the "vial_image_url" field.
func VialImageURLIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldVialImageURL, vs...))
}

// VialImageURLNotIn applies the NotIn predicate on the "vial_image_url" field.
func VialImageURLNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldVialImageURL, vs...))
}

// VialImageURLGT applies the GT predicate on the "vial_image_url" field.
func VialImageURLGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldVialImageURL, v))
}

// VialImageURLGTE applies the GTE predicate on the "vial_image_url" field.
func VialImageURLGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldVialImageURL, v))
}

// VialImageURLLT applies the LT predicate on the "vial_image_url" field.
func VialImageURLLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldVialImageURL, v))
}

// VialImageURLLTE applies the LTE predicate on the "vial_image_url" field.
func VialImageURLLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldVialImageURL, v))
}

// VialImageURLContains applies the Contains predicate on the "vial_image_url" field.
func VialImageURLContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldVialImageURL, v))
}

// VialImageURLHasPrefix applies the HasPrefix predicate on the "vial_image_url" field.
func VialImageURLHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldVialImageURL, v))
}

// VialImageURLHasSuffix applies the HasSuffix predicate on the "vial_image_url" field.
func VialImageURLHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldVialImageURL, v))
}

// VialImageURLIsNil applies the IsNil predicate on the "vial_image_url" field.
func VialImageURLIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldVialImageURL))
}

// VialImageURLNotNil applies the NotNil predicate on the "vial_image_url" field.
func VialImageURLNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldVialImageURL))
}

// VialImageURLEqualFold applies the EqualFold predicate on the "vial_image_url" field.
func VialImageURLEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldVialImageURL, v))
}

// VialImageURLContainsFold applies the ContainsFold predicate on the "vial_image_url" field.
func VialImageURLContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldVialImageURL, v))
}

// NewLabelImageURLEQ applies the EQ predicate on the "new_label_image_url" field.
func NewLabelImageURLEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldNewLabelImageURL, v))
}

// NewLabelImageURLNEQ applies the NEQ predicate on the "new_label_image_url" field.
func NewLabelImageURLNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldNewLabelImageURL, v))
}

// NewLabelImageURLIn applies the In predicate on the "new_label_image_url" field.
func NewLabelImageURLIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldNewLabelImageURL, vs...))
}

// NewLabelImageURLNotIn applies the NotIn predicate on the "new_label_image_url" field.
func NewLabelImageURLNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldNewLabelImageURL, vs...))
}

// NewLabelImageURLGT applies the GT predicate on the "new_label_image_url" field.
func NewLabelImageURLGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldNewLabelImageURL, v))
}

// NewLabelImageURLGTE applies the GTE predicate on the "new_label_image_url" field.
func NewLabelImageURLGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldNewLabelImageURL, v))
}

// NewLabelImageURLLT applies the LT predicate on the "new_label_image_url" field.
func NewLabelImageURLLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldNewLabelImageURL, v))
}

// NewLabelImageURLLTE applies the LTE predicate on the "new_label_image_url" field.
func NewLabelImageURLLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldNewLabelImageURL, v))
}

// NewLabelImageURLContains applies the Contains predicate on the "new_label_image_url" field.
func NewLabelImageURLContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldNewLabelImageURL, v))
}

// NewLabelImageURLHasPrefix applies the HasPrefix predicate on the "new_label_image_url" field.
func NewLabelImageURLHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldNewLabelImageURL, v))
}

// NewLabelImageURLHasSuffix applies the HasSuffix predicate on the "new_label_image_url" field.
func NewLabelImageURLHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldNewLabelImageURL, v))
}

// NewLabelImageURLIsNil applies the IsNil predicate on the "new_label_image_url" field.
func NewLabelImageURLIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldNewLabelImageURL))
}

// NewLabelImageURLNotNil applies the NotNil predicate on the "new_label_image_url" field.
func NewLabelImageURLNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldNewLabelImageURL))
}

// NewLabelImageURLEqualFold applies the EqualFold predicate on the "new_label_image_url" field.
func NewLabelImageURLEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldNewLabelImageURL, v))
}

// NewLabelImageURLContainsFold applies the ContainsFold predicate on the "new_label_image_url" field.
func NewLabelImageURLContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldNewLabelImageURL, v))
}

// NewVialImageURLEQ applies the EQ predicate on the "new_vial_image_url" field.
func NewVialImageURLEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldNewVialImageURL, v))
}

// NewVialImageURLNEQ applies the NEQ predicate on the "new_vial_image_url" field.
func NewVialImageURLNEQ(v string) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldNewVialImageURL, v))
}

// NewVialImageURLIn applies the In predicate on the "new_vial_image_url" field.
func NewVialImageURLIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldNewVialImageURL, vs...))
}

// NewVialImageURLNotIn applies the NotIn predicate on the "new_vial_image_url" field.
func NewVialImageURLNotIn(vs ...string) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldNewVialImageURL, vs...))
}

// NewVialImageURLGT applies the GT predicate on the "new_vial_image_url" field.
func NewVialImageURLGT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldNewVialImageURL, v))
}

// NewVialImageURLGTE applies the GTE predicate on the "new_vial_image_url" field.
func NewVialImageURLGTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldNewVialImageURL, v))
}

// NewVialImageURLLT applies the LT predicate on the "new_vial_image_url" field.
func NewVialImageURLLT(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldNewVialImageURL, v))
}

// NewVialImageURLLTE applies the LTE predicate on the "new_vial_image_url" field.
func NewVialImageURLLTE(v string) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldNewVialImageURL, v))
}

// NewVialImageURLContains applies the Contains predicate on the "new_vial_image_url" field.
func NewVialImageURLContains(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContains(FieldNewVialImageURL, v))
}

// NewVialImageURLHasPrefix applies the HasPrefix predicate on the "new_vial_image_url" field.
func NewVialImageURLHasPrefix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasPrefix(FieldNewVialImageURL, v))
}

// NewVialImageURLHasSuffix applies the HasSuffix predicate on the "new_vial_image_url" field.
func NewVialImageURLHasSuffix(v string) predicate.Vial {
	return predicate.Vial(sql.FieldHasSuffix(FieldNewVialImageURL, v))
}

// NewVialImageURLIsNil applies the IsNil predicate on the "new_vial_image_url" field.
func NewVialImageURLIsNil() predicate.Vial {
	return predicate.Vial(sql.FieldIsNull(FieldNewVialImageURL))
}

// NewVialImageURLNotNil applies the NotNil predicate on the "new_vial_image_url" field.
func NewVialImageURLNotNil() predicate.Vial {
	return predicate.Vial(sql.FieldNotNull(FieldNewVialImageURL))
}

// NewVialImageURLEqualFold applies the EqualFold predicate on the "new_vial_image_url" field.
func NewVialImageURLEqualFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldEqualFold(FieldNewVialImageURL, v))
}

// NewVialImageURLContainsFold applies the ContainsFold predicate on the "new_vial_image_url" field.
func NewVialImageURLContainsFold(v string) predicate.Vial {
	return predicate.Vial(sql.FieldContainsFold(FieldNewVialImageURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vial {
	return predicate.Vial(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDoseDetails applies the HasEdge predicate on the "dose_details" edge.
func HasDoseDetails() predicate.Vial {
	return predicate.Vial(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DoseDetailsTable, DoseDetailsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoseDetailsWith applies the HasEdge predicate on the "dose_details" edge with a given conditions (other predicates).
func HasDoseDetailsWith(preds ...predicate.DoseDetail) predicate.Vial {
	return predicate.Vial(func(s *sql.Selector) {
		step := newDoseDetailsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vial) predicate.Vial {
	return predicate.Vial(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vial) predicate.Vial {
	return predicate.Vial(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vial) predicate.Vial {
	return predicate.Vial(sql.NotPredicates(p))
}
