// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/unithera/vialscan/db/ent/schema"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/scanjob"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dosedetailFields := schema.DoseDetail{}.Fields()
	_ = dosedetailFields
	// dosedetailDescPatientID is the schema descriptor for patient_id field.
	dosedetailDescPatientID := dosedetailFields[2].Descriptor()
	// dosedetail.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	dosedetail.PatientIDValidator = dosedetailDescPatientID.Validators[0].(func(string) error)
	// dosedetailDescRxBatch is the schema descriptor for rx_batch field.
	dosedetailDescRxBatch := dosedetailFields[8].Descriptor()
	// dosedetail.RxBatchValidator is a validator for the "rx_batch" field. It is called by the builders before save.
	dosedetail.RxBatchValidator = dosedetailDescRxBatch.Validators[0].(func(int) error)
	// dosedetailDescID is the schema descriptor for id field.
	dosedetailDescID := dosedetailFields[0].Descriptor()
	// dosedetail.DefaultID holds the default value on creation for the id field.
	dosedetail.DefaultID = dosedetailDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescScanType is the schema descriptor for scan_type field.
	scanjobDescScanType := scanjobFields[2].Descriptor()
	// scanjob.ScanTypeValidator is a validator for the "scan_type" field. It is called by the builders before save.
	scanjob.ScanTypeValidator = scanjobDescScanType.Validators[0].(func(string) error)
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[3].Descriptor()
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[4].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescLineCount is the schema descriptor for line_count field.
	scanjobDescLineCount := scanjobFields[6].Descriptor()
	// scanjob.DefaultLineCount holds the default value on creation for the line_count field.
	scanjob.DefaultLineCount = scanjobDescLineCount.Default.(int)
	// scanjobDescActor is the schema descriptor for actor field.
	scanjobDescActor := scanjobFields[11].Descriptor()
	// scanjob.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	scanjob.ActorValidator = scanjobDescActor.Validators[0].(func(string) error)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
	vialFields := schema.Vial{}.Fields()
	_ = vialFields
	// vialDescRadiopharmaceutical is the schema descriptor for radiopharmaceutical field.
	vialDescRadiopharmaceutical := vialFields[1].Descriptor()
	// vial.RadiopharmaceuticalValidator is a validator for the "radiopharmaceutical" field. It is called by the builders before save.
	vial.RadiopharmaceuticalValidator = vialDescRadiopharmaceutical.Validators[0].(func(string) error)
	// vialDescRxNumber is the schema descriptor for rx_number field.
	vialDescRxNumber := vialFields[2].Descriptor()
	// vial.RxNumberValidator is a validator for the "rx_number" field. It is called by the builders before save.
	vial.RxNumberValidator = vialDescRxNumber.Validators[0].(func(int) error)
	// vialDescPatientID is the schema descriptor for patient_id field.
	vialDescPatientID := vialFields[3].Descriptor()
	// vial.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	vial.PatientIDValidator = vialDescPatientID.Validators[0].(func(string) error)
	// vialDescEnteredBy is the schema descriptor for entered_by field.
	vialDescEnteredBy := vialFields[7].Descriptor()
	// vial.EnteredByValidator is a validator for the "entered_by" field. It is called by the builders before save.
	vial.EnteredByValidator = vialDescEnteredBy.Validators[0].(func(string) error)
	// vialDescEnteredDateTime is the schema descriptor for entered_date_time field.
	vialDescEnteredDateTime := vialFields[8].Descriptor()
	// vial.DefaultEnteredDateTime holds the default value on creation for the entered_date_time field.
	vial.DefaultEnteredDateTime = vialDescEnteredDateTime.Default.(func() time.Time)
	// vialDescCreatedAt is the schema descriptor for created_at field.
	vialDescCreatedAt := vialFields[18].Descriptor()
	// vial.DefaultCreatedAt holds the default value on creation for the created_at field.
	vial.DefaultCreatedAt = vialDescCreatedAt.Default.(func() time.Time)
	// vialDescUpdatedAt is the schema descriptor for updated_at field.
	vialDescUpdatedAt := vialFields[19].Descriptor()
	// vial.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vial.DefaultUpdatedAt = vialDescUpdatedAt.Default.(func() time.Time)
	// vial.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vial.UpdateDefaultUpdatedAt = vialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vialDescID is the schema descriptor for id field.
	vialDescID := vialFields[0].Descriptor()
	// vial.DefaultID holds the default value on creation for the id field.
	vial.DefaultID = vialDescID.Default.(func() uuid.UUID)
}
