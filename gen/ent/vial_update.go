// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/predicate"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// VialUpdate is the builder for updating Vial entities.
type VialUpdate struct {
	config
	hooks    []Hook
	mutation *VialMutation
}

// Where appends a list predicates to the VialUpdate builder.
func (_u *VialUpdate) Where(ps ...predicate.Vial) *VialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRadiopharmaceutical sets the "radiopharmaceutical" field.
func (_u *VialUpdate) SetRadiopharmaceutical(v string) *VialUpdate {
	_u.mutation.SetRadiopharmaceutical(v)
	return _u
}

// SetNillableRadiopharmaceutical sets the "radiopharmaceutical" field if the given value is not nil.
func (_u *VialUpdate) SetNillableRadiopharmaceutical(v *string) *VialUpdate {
	if v != nil {
		_u.SetRadiopharmaceutical(*v)
	}
	return _u
}

// SetRxNumber sets the "rx_number" field.
func (_u *VialUpdate) SetRxNumber(v int) *VialUpdate {
	_u.mutation.ResetRxNumber()
	_u.mutation.SetRxNumber(v)
	return _u
}

// SetNillableRxNumber sets the "rx_number" field if the given value is not nil.
func (_u *VialUpdate) SetNillableRxNumber(v *int) *VialUpdate {
	if v != nil {
		_u.SetRxNumber(*v)
	}
	return _u
}

// AddRxNumber adds value to the "rx_number" field.
func (_u *VialUpdate) AddRxNumber(v int) *VialUpdate {
	_u.mutation.AddRxNumber(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VialUpdate) SetPatientID(v string) *VialUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VialUpdate) SetNillablePatientID(v *string) *VialUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetActualAmount sets the "actual_amount" field.
func (_u *VialUpdate) SetActualAmount(v string) *VialUpdate {
	_u.mutation.SetActualAmount(v)
	return _u
}

// SetNillableActualAmount sets the "actual_amount" field if the given value is not nil.
func (_u *VialUpdate) SetNillableActualAmount(v *string) *VialUpdate {
	if v != nil {
		_u.SetActualAmount(*v)
	}
	return _u
}

// ClearActualAmount clears the value of the "actual_amount" field.
func (_u *VialUpdate) ClearActualAmount() *VialUpdate {
	_u.mutation.ClearActualAmount()
	return _u
}

// SetCalibrationDate sets the "calibration_date" field.
func (_u *VialUpdate) SetCalibrationDate(v string) *VialUpdate {
	_u.mutation.SetCalibrationDate(v)
	return _u
}

// SetNillableCalibrationDate sets the "calibration_date" field if the given value is not nil.
func (_u *VialUpdate) SetNillableCalibrationDate(v *string) *VialUpdate {
	if v != nil {
		_u.SetCalibrationDate(*v)
	}
	return _u
}

// ClearCalibrationDate clears the value of the "calibration_date" field.
func (_u *VialUpdate) ClearCalibrationDate() *VialUpdate {
	_u.mutation.ClearCalibrationDate()
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *VialUpdate) SetLotNumber(v string) *VialUpdate {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *VialUpdate) SetNillableLotNumber(v *string) *VialUpdate {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// ClearLotNumber clears the value of the "lot_number" field.
func (_u *VialUpdate) ClearLotNumber() *VialUpdate {
	_u.mutation.ClearLotNumber()
	return _u
}

// SetEnteredBy sets the "entered_by" field.
func (_u *VialUpdate) SetEnteredBy(v string) *VialUpdate {
	_u.mutation.SetEnteredBy(v)
	return _u
}

// SetNillableEnteredBy sets the "entered_by" field if the given value is not nil.
func (_u *VialUpdate) SetNillableEnteredBy(v *string) *VialUpdate {
	if v != nil {
		_u.SetEnteredBy(*v)
	}
	return _u
}

// SetEnteredDateTime sets the "entered_date_time" field.
func (_u *VialUpdate) SetEnteredDateTime(v time.Time) *VialUpdate {
	_u.mutation.SetEnteredDateTime(v)
	return _u
}

// SetNillableEnteredDateTime sets the "entered_date_time" field if the given value is not nil.
func (_u *VialUpdate) SetNillableEnteredDateTime(v *time.Time) *VialUpdate {
	if v != nil {
		_u.SetEnteredDateTime(*v)
	}
	return _u
}

// SetOrderedAmount sets the "ordered_amount" field.
func (_u *VialUpdate) SetOrderedAmount(v string) *VialUpdate {
	_u.mutation.SetOrderedAmount(v)
	return _u
}

// SetNillableOrderedAmount sets the "ordered_amount" field if the given value is not nil.
func (_u *VialUpdate) SetNillableOrderedAmount(v *string) *VialUpdate {
	if v != nil {
		_u.SetOrderedAmount(*v)
	}
	return _u
}

// ClearOrderedAmount clears the value of the "ordered_amount" field.
func (_u *VialUpdate) ClearOrderedAmount() *VialUpdate {
	_u.mutation.ClearOrderedAmount()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *VialUpdate) SetManufacturer(v string) *VialUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *VialUpdate) SetNillableManufacturer(v *string) *VialUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *VialUpdate) ClearManufacturer() *VialUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetVolume sets the "volume" field.
func (_u *VialUpdate) SetVolume(v string) *VialUpdate {
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *VialUpdate) SetNillableVolume(v *string) *VialUpdate {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// ClearVolume clears the value of the "volume" field.
func (_u *VialUpdate) ClearVolume() *VialUpdate {
	_u.mutation.ClearVolume()
	return _u
}

// SetRadioactivityConcentration sets the "radioactivity_concentration" field.
func (_u *VialUpdate) SetRadioactivityConcentration(v string) *VialUpdate {
	_u.mutation.SetRadioactivityConcentration(v)
	return _u
}

// SetNillableRadioactivityConcentration sets the "radioactivity_concentration" field if the given value is not nil.
func (_u *VialUpdate) SetNillableRadioactivityConcentration(v *string) *VialUpdate {
	if v != nil {
		_u.SetRadioactivityConcentration(*v)
	}
	return _u
}

// ClearRadioactivityConcentration clears the value of the "radioactivity_concentration" field.
func (_u *VialUpdate) ClearRadioactivityConcentration() *VialUpdate {
	_u.mutation.ClearRadioactivityConcentration()
	return _u
}

// SetLabelImageURL sets the "label_image_url" field.
func (_u *VialUpdate) SetLabelImageURL(v string) *VialUpdate {
	_u.mutation.SetLabelImageURL(v)
	return _u
}

// SetNillableLabelImageURL sets the "label_image_url" field if the given value is not nil.
func (_u *VialUpdate) SetNillableLabelImageURL(v *string) *VialUpdate {
	if v != nil {
		_u.SetLabelImageURL(*v)
	}
	return _u
}

// ClearLabelImageURL clears the value of the "label_image_url" field.
func (_u *VialUpdate) ClearLabelImageURL() *VialUpdate {
	_u.mutation.ClearLabelImageURL()
	return _u
}

// SetCoaImageURL sets the "coa_image_url" field.
func (_u *VialUpdate) SetCoaImageURL(v string) *VialUpdate {
	_u.mutation.SetCoaImageURL(v)
	return _u
}

// SetNillableCoaImageURL sets the "coa_image_url" field if the given value is not nil.
func (_u *VialUpdate) SetNillableCoaImageURL(v *string) *VialUpdate {
	if v != nil {
		_u.SetCoaImageURL(*v)
	}
	return _u
}

// ClearCoaImageURL clears the value of the "coa_image_url" field.
func (_u *VialUpdate) ClearCoaImageURL() *VialUpdate {
	_u.mutation.ClearCoaImageURL()
	return _u
}

// SetVialImageURL sets the "vial_image_url" field.
func (_u *VialUpdate) SetVialImageURL(v string) *VialUpdate {
	_u.mutation.SetVialImageURL(v)
	return _u
}

// SetNillableVialImageURL sets the "vial_image_url" field if the given value is not nil.
func (_u *VialUpdate) SetNillableVialImageURL(v *string) *VialUpdate {
	if v != nil {
		_u.SetVialImageURL(*v)
	}
	return _u
}

// ClearVialImageURL clears the value of the "vial_image_url" field.
func (_u *VialUpdate) ClearVialImageURL() *VialUpdate {
	_u.mutation.ClearVialImageURL()
	return _u
}

// SetNewLabelImageURL sets the "new_label_image_url" field.
func (_u *VialUpdate) SetNewLabelImageURL(v string) *VialUpdate {
	_u.mutation.SetNewLabelImageURL(v)
	return _u
}

// SetNillableNewLabelImageURL sets the "new_label_image_url" field if the given value is not nil.
func (_u *VialUpdate) SetNillableNewLabelImageURL(v *string) *VialUpdate {
	if v != nil {
		_u.SetNewLabelImageURL(*v)
	}
	return _u
}

// ClearNewLabelImageURL clears the value of the "new_label_image_url" field.
func (_u *VialUpdate) ClearNewLabelImageURL() *VialUpdate {
	_u.mutation.ClearNewLabelImageURL()
	return _u
}

// SetNewVialImageURL sets the "new_vial_image_url" field.
func (_u *VialUpdate) SetNewVialImageURL(v string) *VialUpdate {
	_u.mutation.SetNewVialImageURL(v)
	return _u
}

// SetNillableNewVialImageURL sets the "new_vial_image_url" field if the given value is not nil.
func (_u *VialUpdate) SetNillableNewVialImageURL(v *string) *VialUpdate {
	if v != nil {
		_u.SetNewVialImageURL(*v)
	}
	return _u
}

// ClearNewVialImageURL clears the value of the "new_vial_image_url" field.
func (_u *VialUpdate) ClearNewVialImageURL() *VialUpdate {
	_u.mutation.ClearNewVialImageURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VialUpdate) SetCreatedAt(v time.Time) *VialUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VialUpdate) SetNillableCreatedAt(v *time.Time) *VialUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VialUpdate) SetUpdatedAt(v time.Time) *VialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDoseDetailIDs adds the "dose_details" edge to the DoseDetail entity by IDs.
func (_u *VialUpdate) AddDoseDetailIDs(ids ...uuid.UUID) *VialUpdate {
	_u.mutation.AddDoseDetailIDs(ids...)
	return _u
}

// AddDoseDetails adds the "dose_details" edges to the DoseDetail entity.
func (_u *VialUpdate) AddDoseDetails(v ...*DoseDetail) *VialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDoseDetailIDs(ids...)
}

// Mutation returns the VialMutation object of the builder.
func (_u *VialUpdate) Mutation() *VialMutation {
	return _u.mutation
}

// ClearDoseDetails clears all "dose_details" edges to the DoseDetail entity.
func (_u *VialUpdate) ClearDoseDetails() *VialUpdate {
	_u.mutation.ClearDoseDetails()
	return _u
}

// RemoveDoseDetailIDs removes the "dose_details" edge to DoseDetail entities by IDs.
func (_u *VialUpdate) RemoveDoseDetailIDs(ids ...uuid.UUID) *VialUpdate {
	_u.mutation.RemoveDoseDetailIDs(ids...)
	return _u
}

// RemoveDoseDetails removes "dose_details" edges to DoseDetail entities.
func (_u *VialUpdate) RemoveDoseDetails(v ...*DoseDetail) *VialUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDoseDetailIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VialUpdate) check() error {
	if v, ok := _u.mutation.Radiopharmaceutical(); ok {
		if err := vial.RadiopharmaceuticalValidator(v); err != nil {
			return &ValidationError{Name: "radiopharmaceutical", err: fmt.Errorf(`ent: validator failed for field "Vial.radiopharmaceutical": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RxNumber(); ok {
		if err := vial.RxNumberValidator(v); err != nil {
			return &ValidationError{Name: "rx_number", err: fmt.Errorf(`ent: validator failed for field "Vial.rx_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientID(); ok {
		if err := vial.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Vial.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnteredBy(); ok {
		if err := vial.EnteredByValidator(v); err != nil {
			return &ValidationError{Name: "entered_by", err: fmt.Errorf(`ent: validator failed for field "Vial.entered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *VialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vial.Table, vial.Columns, sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Radiopharmaceutical(); ok {
		_spec.SetField(vial.FieldRadiopharmaceutical, field.TypeString, value)
	}
	if value, ok := _u.mutation.RxNumber(); ok {
		_spec.SetField(vial.FieldRxNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRxNumber(); ok {
		_spec.AddField(vial.FieldRxNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(vial.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualAmount(); ok {
		_spec.SetField(vial.FieldActualAmount, field.TypeString, value)
	}
	if _u.mutation.ActualAmountCleared() {
		_spec.ClearField(vial.FieldActualAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CalibrationDate(); ok {
		_spec.SetField(vial.FieldCalibrationDate, field.TypeString, value)
	}
	if _u.mutation.CalibrationDateCleared() {
		_spec.ClearField(vial.FieldCalibrationDate, field.TypeString)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(vial.FieldLotNumber, field.TypeString, value)
	}
	if _u.mutation.LotNumberCleared() {
		_spec.ClearField(vial.FieldLotNumber, field.TypeString)
	}
	if value, ok := _u.mutation.EnteredBy(); ok {
		_spec.SetField(vial.FieldEnteredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredDateTime(); ok {
		_spec.SetField(vial.FieldEnteredDateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderedAmount(); ok {
		_spec.SetField(vial.FieldOrderedAmount, field.TypeString, value)
	}
	if _u.mutation.OrderedAmountCleared() {
		_spec.ClearField(vial.FieldOrderedAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(vial.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(vial.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(vial.FieldVolume, field.TypeString, value)
	}
	if _u.mutation.VolumeCleared() {
		_spec.ClearField(vial.FieldVolume, field.TypeString)
	}
	if value, ok := _u.mutation.RadioactivityConcentration(); ok {
		_spec.SetField(vial.FieldRadioactivityConcentration, field.TypeString, value)
	}
	if _u.mutation.RadioactivityConcentrationCleared() {
		_spec.ClearField(vial.FieldRadioactivityConcentration, field.TypeString)
	}
	if value, ok := _u.mutation.LabelImageURL(); ok {
		_spec.SetField(vial.FieldLabelImageURL, field.TypeString, value)
	}
	if _u.mutation.LabelImageURLCleared() {
		_spec.ClearField(vial.FieldLabelImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CoaImageURL(); ok {
		_spec.SetField(vial.FieldCoaImageURL, field.TypeString, value)
	}
	if _u.mutation.CoaImageURLCleared() {
		_spec.ClearField(vial.FieldCoaImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.VialImageURL(); ok {
		_spec.SetField(vial.FieldVialImageURL, field.TypeString, value)
	}
	if _u.mutation.VialImageURLCleared() {
		_spec.ClearField(vial.FieldVialImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.NewLabelImageURL(); ok {
		_spec.SetField(vial.FieldNewLabelImageURL, field.TypeString, value)
	}
	if _u.mutation.NewLabelImageURLCleared() {
		_spec.ClearField(vial.FieldNewLabelImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.NewVialImageURL(); ok {
		_spec.SetField(vial.FieldNewVialImageURL, field.TypeString, value)
	}
	if _u.mutation.NewVialImageURLCleared() {
		_spec.ClearField(vial.FieldNewVialImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vial.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vial.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DoseDetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDoseDetailsIDs(); len(nodes) > 0 && !_u.mutation.DoseDetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoseDetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VialUpdateOne is the builder for updating a single Vial entity.
type VialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VialMutation
}

// SetRadiopharmaceutical sets the "radiopharmaceutical" field.
func (_u *VialUpdateOne) SetRadiopharmaceutical(v string) *VialUpdateOne {
	_u.mutation.SetRadiopharmaceutical(v)
	return _u
}

// SetNillableRadiopharmaceutical sets the "radiopharmaceutical" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableRadiopharmaceutical(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetRadiopharmaceutical(*v)
	}
	return _u
}

// SetRxNumber sets the "rx_number" field.
func (_u *VialUpdateOne) SetRxNumber(v int) *VialUpdateOne {
	_u.mutation.ResetRxNumber()
	_u.mutation.SetRxNumber(v)
	return _u
}

// SetNillableRxNumber sets the "rx_number" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableRxNumber(v *int) *VialUpdateOne {
	if v != nil {
		_u.SetRxNumber(*v)
	}
	return _u
}

// AddRxNumber adds value to the "rx_number" field.
func (_u *VialUpdateOne) AddRxNumber(v int) *VialUpdateOne {
	_u.mutation.AddRxNumber(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *VialUpdateOne) SetPatientID(v string) *VialUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillablePatientID(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetActualAmount sets the "actual_amount" field.
func (_u *VialUpdateOne) SetActualAmount(v string) *VialUpdateOne {
	_u.mutation.SetActualAmount(v)
	return _u
}

// SetNillableActualAmount sets the "actual_amount" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableActualAmount(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetActualAmount(*v)
	}
	return _u
}

// ClearActualAmount clears the value of the "actual_amount" field.
func (_u *VialUpdateOne) ClearActualAmount() *VialUpdateOne {
	_u.mutation.ClearActualAmount()
	return _u
}

// SetCalibrationDate sets the "calibration_date" field.
func (_u *VialUpdateOne) SetCalibrationDate(v string) *VialUpdateOne {
	_u.mutation.SetCalibrationDate(v)
	return _u
}

// SetNillableCalibrationDate sets the "calibration_date" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableCalibrationDate(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetCalibrationDate(*v)
	}
	return _u
}

// ClearCalibrationDate clears the value of the "calibration_date" field.
func (_u *VialUpdateOne) ClearCalibrationDate() *VialUpdateOne {
	_u.mutation.ClearCalibrationDate()
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *VialUpdateOne) SetLotNumber(v string) *VialUpdateOne {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableLotNumber(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// ClearLotNumber clears the value of the "lot_number" field.
func (_u *VialUpdateOne) ClearLotNumber() *VialUpdateOne {
	_u.mutation.ClearLotNumber()
	return _u
}

// SetEnteredBy sets the "entered_by" field.
func (_u *VialUpdateOne) SetEnteredBy(v string) *VialUpdateOne {
	_u.mutation.SetEnteredBy(v)
	return _u
}

// SetNillableEnteredBy sets the "entered_by" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableEnteredBy(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetEnteredBy(*v)
	}
	return _u
}

// SetEnteredDateTime sets the "entered_date_time" field.
func (_u *VialUpdateOne) SetEnteredDateTime(v time.Time) *VialUpdateOne {
	_u.mutation.SetEnteredDateTime(v)
	return _u
}

// SetNillableEnteredDateTime sets the "entered_date_time" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableEnteredDateTime(v *time.Time) *VialUpdateOne {
	if v != nil {
		_u.SetEnteredDateTime(*v)
	}
	return _u
}

// SetOrderedAmount sets the "ordered_amount" field.
func (_u *VialUpdateOne) SetOrderedAmount(v string) *VialUpdateOne {
	_u.mutation.SetOrderedAmount(v)
	return _u
}

// SetNillableOrderedAmount sets the "ordered_amount" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableOrderedAmount(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetOrderedAmount(*v)
	}
	return _u
}

// ClearOrderedAmount clears the value of the "ordered_amount" field.
func (_u *VialUpdateOne) ClearOrderedAmount() *VialUpdateOne {
	_u.mutation.ClearOrderedAmount()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *VialUpdateOne) SetManufacturer(v string) *VialUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableManufacturer(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *VialUpdateOne) ClearManufacturer() *VialUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetVolume sets the "volume" field.
func (_u *VialUpdateOne) SetVolume(v string) *VialUpdateOne {
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableVolume(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// ClearVolume clears the value of the "volume" field.
func (_u *VialUpdateOne) ClearVolume() *VialUpdateOne {
	_u.mutation.ClearVolume()
	return _u
}

// SetRadioactivityConcentration sets the "radioactivity_concentration" field.
func (_u *VialUpdateOne) SetRadioactivityConcentration(v string) *VialUpdateOne {
	_u.mutation.SetRadioactivityConcentration(v)
	return _u
}

// SetNillableRadioactivityConcentration sets the "radioactivity_concentration" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableRadioactivityConcentration(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetRadioactivityConcentration(*v)
	}
	return _u
}

// ClearRadioactivityConcentration clears the value of the "radioactivity_concentration" field.
func (_u *VialUpdateOne) ClearRadioactivityConcentration() *VialUpdateOne {
	_u.mutation.ClearRadioactivityConcentration()
	return _u
}

// SetLabelImageURL sets the "label_image_url" field.
func (_u *VialUpdateOne) SetLabelImageURL(v string) *VialUpdateOne {
	_u.mutation.SetLabelImageURL(v)
	return _u
}

// SetNillableLabelImageURL sets the "label_image_url" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableLabelImageURL(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetLabelImageURL(*v)
	}
	return _u
}

// ClearLabelImageURL clears the value of the "label_image_url" field.
func (_u *VialUpdateOne) ClearLabelImageURL() *VialUpdateOne {
	_u.mutation.ClearLabelImageURL()
	return _u
}

// SetCoaImageURL sets the "coa_image_url" field.
func (_u *VialUpdateOne) SetCoaImageURL(v string) *VialUpdateOne {
	_u.mutation.SetCoaImageURL(v)
	return _u
}

// SetNillableCoaImageURL sets the "coa_image_url" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableCoaImageURL(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetCoaImageURL(*v)
	}
	return _u
}

// ClearCoaImageURL clears the value of the "coa_image_url" field.
func (_u *VialUpdateOne) ClearCoaImageURL() *VialUpdateOne {
	_u.mutation.ClearCoaImageURL()
	return _u
}

// SetVialImageURL sets the "vial_image_url" field.
func (_u *VialUpdateOne) SetVialImageURL(v string) *VialUpdateOne {
	_u.mutation.SetVialImageURL(v)
	return _u
}

// SetNillableVialImageURL sets the "vial_image_url" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableVialImageURL(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetVialImageURL(*v)
	}
	return _u
}

// ClearVialImageURL clears the value of the "vial_image_url" field.
func (_u *VialUpdateOne) ClearVialImageURL() *VialUpdateOne {
	_u.mutation.ClearVialImageURL()
	return _u
}

// SetNewLabelImageURL sets the "new_label_image_url" field.
func (_u *VialUpdateOne) SetNewLabelImageURL(v string) *VialUpdateOne {
	_u.mutation.SetNewLabelImageURL(v)
	return _u
}

// SetNillableNewLabelImageURL sets the "new_label_image_url" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableNewLabelImageURL(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetNewLabelImageURL(*v)
	}
	return _u
}

// ClearNewLabelImageURL clears the value of the "new_label_image_url" field.
func (_u *VialUpdateOne) ClearNewLabelImageURL() *VialUpdateOne {
	_u.mutation.ClearNewLabelImageURL()
	return _u
}

// SetNewVialImageURL sets the "new_vial_image_url" field.
func (_u *VialUpdateOne) SetNewVialImageURL(v string) *VialUpdateOne {
	_u.mutation.SetNewVialImageURL(v)
	return _u
}

// SetNillableNewVialImageURL sets the "new_vial_image_url" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableNewVialImageURL(v *string) *VialUpdateOne {
	if v != nil {
		_u.SetNewVialImageURL(*v)
	}
	return _u
}

// ClearNewVialImageURL clears the value of the "new_vial_image_url" field.
func (_u *VialUpdateOne) ClearNewVialImageURL() *VialUpdateOne {
	_u.mutation.ClearNewVialImageURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VialUpdateOne) SetCreatedAt(v time.Time) *VialUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VialUpdateOne) SetNillableCreatedAt(v *time.Time) *VialUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VialUpdateOne) SetUpdatedAt(v time.Time) *VialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDoseDetailIDs adds the "dose_details" edge to the DoseDetail entity by IDs.
func (_u *VialUpdateOne) AddDoseDetailIDs(ids ...uuid.UUID) *VialUpdateOne {
	_u.mutation.AddDoseDetailIDs(ids...)
	return _u
}

// AddDoseDetails adds the "dose_details" edges to the DoseDetail entity.
func (_u *VialUpdateOne) AddDoseDetails(v ...*DoseDetail) *VialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDoseDetailIDs(ids...)
}

// Mutation returns the VialMutation object of the builder.
func (_u *VialUpdateOne) Mutation() *VialMutation {
	return _u.mutation
}

// ClearDoseDetails clears all "dose_details" edges to the DoseDetail entity.
func (_u *VialUpdateOne) ClearDoseDetails() *VialUpdateOne {
	_u.mutation.ClearDoseDetails()
	return _u
}

// RemoveDoseDetailIDs removes the "dose_details" edge to DoseDetail entities by IDs.
func (_u *VialUpdateOne) RemoveDoseDetailIDs(ids ...uuid.UUID) *VialUpdateOne {
	_u.mutation.RemoveDoseDetailIDs(ids...)
	return _u
}

// RemoveDoseDetails removes "dose_details" edges to DoseDetail entities.
func (_u *VialUpdateOne) RemoveDoseDetails(v ...*DoseDetail) *VialUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDoseDetailIDs(ids...)
}

// Where appends a list predicates to the VialUpdate builder.
func (_u *VialUpdateOne) Where(ps ...predicate.Vial) *VialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VialUpdateOne) Select(field string, fields ...string) *VialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vial entity.
func (_u *VialUpdateOne) Save(ctx context.Context) (*Vial, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VialUpdateOne) SaveX(ctx context.Context) *Vial {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vial.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VialUpdateOne) check() error {
	if v, ok := _u.mutation.Radiopharmaceutical(); ok {
		if err := vial.RadiopharmaceuticalValidator(v); err != nil {
			return &ValidationError{Name: "radiopharmaceutical", err: fmt.Errorf(`ent: validator failed for field "Vial.radiopharmaceutical": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RxNumber(); ok {
		if err := vial.RxNumberValidator(v); err != nil {
			return &ValidationError{Name: "rx_number", err: fmt.Errorf(`ent: validator failed for field "Vial.rx_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientID(); ok {
		if err := vial.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Vial.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnteredBy(); ok {
		if err := vial.EnteredByValidator(v); err != nil {
			return &ValidationError{Name: "entered_by", err: fmt.Errorf(`ent: validator failed for field "Vial.entered_by": %w`, err)}
		}
	}
	return nil
}

func (_u *VialUpdateOne) sqlSave(ctx context.Context) (_node *Vial, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vial.Table, vial.Columns, sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vial.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vial.FieldID)
		for _, f := range fields {
			if !vial.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vial.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Radiopharmaceutical(); ok {
		_spec.SetField(vial.FieldRadiopharmaceutical, field.TypeString, value)
	}
	if value, ok := _u.mutation.RxNumber(); ok {
		_spec.SetField(vial.FieldRxNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRxNumber(); ok {
		_spec.AddField(vial.FieldRxNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(vial.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualAmount(); ok {
		_spec.SetField(vial.FieldActualAmount, field.TypeString, value)
	}
	if _u.mutation.ActualAmountCleared() {
		_spec.ClearField(vial.FieldActualAmount, field.TypeString)
	}
	if value, ok := _u.mutation.CalibrationDate(); ok {
		_spec.SetField(vial.FieldCalibrationDate, field.TypeString, value)
	}
	if _u.mutation.CalibrationDateCleared() {
		_spec.ClearField(vial.FieldCalibrationDate, field.TypeString)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(vial.FieldLotNumber, field.TypeString, value)
	}
	if _u.mutation.LotNumberCleared() {
		_spec.ClearField(vial.FieldLotNumber, field.TypeString)
	}
	if value, ok := _u.mutation.EnteredBy(); ok {
		_spec.SetField(vial.FieldEnteredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredDateTime(); ok {
		_spec.SetField(vial.FieldEnteredDateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderedAmount(); ok {
		_spec.SetField(vial.FieldOrderedAmount, field.TypeString, value)
	}
	if _u.mutation.OrderedAmountCleared() {
		_spec.ClearField(vial.FieldOrderedAmount, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(vial.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(vial.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(vial.FieldVolume, field.TypeString, value)
	}
	if _u.mutation.VolumeCleared() {
		_spec.ClearField(vial.FieldVolume, field.TypeString)
	}
	if value, ok := _u.mutation.RadioactivityConcentration(); ok {
		_spec.SetField(vial.FieldRadioactivityConcentration, field.TypeString, value)
	}
	if _u.mutation.RadioactivityConcentrationCleared() {
		_spec.ClearField(vial.FieldRadioactivityConcentration, field.TypeString)
	}
	if value, ok := _u.mutation.LabelImageURL(); ok {
		_spec.SetField(vial.FieldLabelImageURL, field.TypeString, value)
	}
	if _u.mutation.LabelImageURLCleared() {
		_spec.ClearField(vial.FieldLabelImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CoaImageURL(); ok {
		_spec.SetField(vial.FieldCoaImageURL, field.TypeString, value)
	}
	if _u.mutation.CoaImageURLCleared() {
		_spec.ClearField(vial.FieldCoaImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.VialImageURL(); ok {
		_spec.SetField(vial.FieldVialImageURL, field.TypeString, value)
	}
	if _u.mutation.VialImageURLCleared() {
		_spec.ClearField(vial.FieldVialImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.NewLabelImageURL(); ok {
		_spec.SetField(vial.FieldNewLabelImageURL, field.TypeString, value)
	}
	if _u.mutation.NewLabelImageURLCleared() {
		_spec.ClearField(vial.FieldNewLabelImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.NewVialImageURL(); ok {
		_spec.SetField(vial.FieldNewVialImageURL, field.TypeString, value)
	}
	if _u.mutation.NewVialImageURLCleared() {
		_spec.ClearField(vial.FieldNewVialImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vial.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vial.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DoseDetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDoseDetailsIDs(); len(nodes) > 0 && !_u.mutation.DoseDetailsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoseDetailsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vial.DoseDetailsTable,
			Columns: []string{vial.DoseDetailsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vial{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vial.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
