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

// DoseDetailUpdate is the builder for updating DoseDetail entities.
type DoseDetailUpdate struct {
	config
	hooks    []Hook
	mutation *DoseDetailMutation
}

// Where appends a list predicates to the DoseDetailUpdate builder.
func (_u *DoseDetailUpdate) Where(ps ...predicate.DoseDetail) *DoseDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVialID sets the "vial_id" field.
func (_u *DoseDetailUpdate) SetVialID(v uuid.UUID) *DoseDetailUpdate {
	_u.mutation.SetVialID(v)
	return _u
}

// SetNillableVialID sets the "vial_id" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableVialID(v *uuid.UUID) *DoseDetailUpdate {
	if v != nil {
		_u.SetVialID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoseDetailUpdate) SetPatientID(v string) *DoseDetailUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillablePatientID(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStudyName sets the "study_name" field.
func (_u *DoseDetailUpdate) SetStudyName(v string) *DoseDetailUpdate {
	_u.mutation.SetStudyName(v)
	return _u
}

// SetNillableStudyName sets the "study_name" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableStudyName(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetStudyName(*v)
	}
	return _u
}

// ClearStudyName clears the value of the "study_name" field.
func (_u *DoseDetailUpdate) ClearStudyName() *DoseDetailUpdate {
	_u.mutation.ClearStudyName()
	return _u
}

// SetDateCalibration sets the "date_calibration" field.
func (_u *DoseDetailUpdate) SetDateCalibration(v string) *DoseDetailUpdate {
	_u.mutation.SetDateCalibration(v)
	return _u
}

// SetNillableDateCalibration sets the "date_calibration" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableDateCalibration(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetDateCalibration(*v)
	}
	return _u
}

// ClearDateCalibration clears the value of the "date_calibration" field.
func (_u *DoseDetailUpdate) ClearDateCalibration() *DoseDetailUpdate {
	_u.mutation.ClearDateCalibration()
	return _u
}

// SetTimeCalibration sets the "time_calibration" field.
func (_u *DoseDetailUpdate) SetTimeCalibration(v string) *DoseDetailUpdate {
	_u.mutation.SetTimeCalibration(v)
	return _u
}

// SetNillableTimeCalibration sets the "time_calibration" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableTimeCalibration(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetTimeCalibration(*v)
	}
	return _u
}

// ClearTimeCalibration clears the value of the "time_calibration" field.
func (_u *DoseDetailUpdate) ClearTimeCalibration() *DoseDetailUpdate {
	_u.mutation.ClearTimeCalibration()
	return _u
}

// SetRac sets the "rac" field.
func (_u *DoseDetailUpdate) SetRac(v string) *DoseDetailUpdate {
	_u.mutation.SetRac(v)
	return _u
}

// SetNillableRac sets the "rac" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableRac(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetRac(*v)
	}
	return _u
}

// ClearRac clears the value of the "rac" field.
func (_u *DoseDetailUpdate) ClearRac() *DoseDetailUpdate {
	_u.mutation.ClearRac()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *DoseDetailUpdate) SetManufacturer(v string) *DoseDetailUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableManufacturer(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *DoseDetailUpdate) ClearManufacturer() *DoseDetailUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetRxBatch sets the "rx_batch" field.
func (_u *DoseDetailUpdate) SetRxBatch(v int) *DoseDetailUpdate {
	_u.mutation.ResetRxBatch()
	_u.mutation.SetRxBatch(v)
	return _u
}

// SetNillableRxBatch sets the "rx_batch" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableRxBatch(v *int) *DoseDetailUpdate {
	if v != nil {
		_u.SetRxBatch(*v)
	}
	return _u
}

// AddRxBatch adds value to the "rx_batch" field.
func (_u *DoseDetailUpdate) AddRxBatch(v int) *DoseDetailUpdate {
	_u.mutation.AddRxBatch(v)
	return _u
}

// SetLotBatch sets the "lot_batch" field.
func (_u *DoseDetailUpdate) SetLotBatch(v string) *DoseDetailUpdate {
	_u.mutation.SetLotBatch(v)
	return _u
}

// SetNillableLotBatch sets the "lot_batch" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableLotBatch(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetLotBatch(*v)
	}
	return _u
}

// ClearLotBatch clears the value of the "lot_batch" field.
func (_u *DoseDetailUpdate) ClearLotBatch() *DoseDetailUpdate {
	_u.mutation.ClearLotBatch()
	return _u
}

// SetVolume sets the "volume" field.
func (_u *DoseDetailUpdate) SetVolume(v string) *DoseDetailUpdate {
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableVolume(v *string) *DoseDetailUpdate {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// ClearVolume clears the value of the "volume" field.
func (_u *DoseDetailUpdate) ClearVolume() *DoseDetailUpdate {
	_u.mutation.ClearVolume()
	return _u
}

// SetDos sets the "dos" field.
func (_u *DoseDetailUpdate) SetDos(v time.Time) *DoseDetailUpdate {
	_u.mutation.SetDos(v)
	return _u
}

// SetNillableDos sets the "dos" field if the given value is not nil.
func (_u *DoseDetailUpdate) SetNillableDos(v *time.Time) *DoseDetailUpdate {
	if v != nil {
		_u.SetDos(*v)
	}
	return _u
}

// SetVial sets the "vial" edge to the Vial entity.
func (_u *DoseDetailUpdate) SetVial(v *Vial) *DoseDetailUpdate {
	return _u.SetVialID(v.ID)
}

// Mutation returns the DoseDetailMutation object of the builder.
func (_u *DoseDetailUpdate) Mutation() *DoseDetailMutation {
	return _u.mutation
}

// ClearVial clears the "vial" edge to the Vial entity.
func (_u *DoseDetailUpdate) ClearVial() *DoseDetailUpdate {
	_u.mutation.ClearVial()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoseDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoseDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoseDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoseDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoseDetailUpdate) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := dosedetail.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RxBatch(); ok {
		if err := dosedetail.RxBatchValidator(v); err != nil {
			return &ValidationError{Name: "rx_batch", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.rx_batch": %w`, err)}
		}
	}
	if _u.mutation.VialCleared() && len(_u.mutation.VialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DoseDetail.vial"`)
	}
	return nil
}

func (_u *DoseDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dosedetail.Table, dosedetail.Columns, sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(dosedetail.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyName(); ok {
		_spec.SetField(dosedetail.FieldStudyName, field.TypeString, value)
	}
	if _u.mutation.StudyNameCleared() {
		_spec.ClearField(dosedetail.FieldStudyName, field.TypeString)
	}
	if value, ok := _u.mutation.DateCalibration(); ok {
		_spec.SetField(dosedetail.FieldDateCalibration, field.TypeString, value)
	}
	if _u.mutation.DateCalibrationCleared() {
		_spec.ClearField(dosedetail.FieldDateCalibration, field.TypeString)
	}
	if value, ok := _u.mutation.TimeCalibration(); ok {
		_spec.SetField(dosedetail.FieldTimeCalibration, field.TypeString, value)
	}
	if _u.mutation.TimeCalibrationCleared() {
		_spec.ClearField(dosedetail.FieldTimeCalibration, field.TypeString)
	}
	if value, ok := _u.mutation.Rac(); ok {
		_spec.SetField(dosedetail.FieldRac, field.TypeString, value)
	}
	if _u.mutation.RacCleared() {
		_spec.ClearField(dosedetail.FieldRac, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(dosedetail.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(dosedetail.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.RxBatch(); ok {
		_spec.SetField(dosedetail.FieldRxBatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRxBatch(); ok {
		_spec.AddField(dosedetail.FieldRxBatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotBatch(); ok {
		_spec.SetField(dosedetail.FieldLotBatch, field.TypeString, value)
	}
	if _u.mutation.LotBatchCleared() {
		_spec.ClearField(dosedetail.FieldLotBatch, field.TypeString)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(dosedetail.FieldVolume, field.TypeString, value)
	}
	if _u.mutation.VolumeCleared() {
		_spec.ClearField(dosedetail.FieldVolume, field.TypeString)
	}
	if value, ok := _u.mutation.Dos(); ok {
		_spec.SetField(dosedetail.FieldDos, field.TypeTime, value)
	}
	if _u.mutation.VialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dosedetail.VialTable,
			Columns: []string{dosedetail.VialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dosedetail.VialTable,
			Columns: []string{dosedetail.VialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dosedetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoseDetailUpdateOne is the builder for updating a single DoseDetail entity.
type DoseDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoseDetailMutation
}

// SetVialID sets the "vial_id" field.
func (_u *DoseDetailUpdateOne) SetVialID(v uuid.UUID) *DoseDetailUpdateOne {
	_u.mutation.SetVialID(v)
	return _u
}

// SetNillableVialID sets the "vial_id" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableVialID(v *uuid.UUID) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetVialID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoseDetailUpdateOne) SetPatientID(v string) *DoseDetailUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillablePatientID(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStudyName sets the "study_name" field.
func (_u *DoseDetailUpdateOne) SetStudyName(v string) *DoseDetailUpdateOne {
	_u.mutation.SetStudyName(v)
	return _u
}

// SetNillableStudyName sets the "study_name" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableStudyName(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetStudyName(*v)
	}
	return _u
}

// ClearStudyName clears the value of the "study_name" field.
func (_u *DoseDetailUpdateOne) ClearStudyName() *DoseDetailUpdateOne {
	_u.mutation.ClearStudyName()
	return _u
}

// SetDateCalibration sets the "date_calibration" field.
func (_u *DoseDetailUpdateOne) SetDateCalibration(v string) *DoseDetailUpdateOne {
	_u.mutation.SetDateCalibration(v)
	return _u
}

// SetNillableDateCalibration sets the "date_calibration" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableDateCalibration(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetDateCalibration(*v)
	}
	return _u
}

// ClearDateCalibration clears the value of the "date_calibration" field.
func (_u *DoseDetailUpdateOne) ClearDateCalibration() *DoseDetailUpdateOne {
	_u.mutation.ClearDateCalibration()
	return _u
}

// SetTimeCalibration sets the "time_calibration" field.
func (_u *DoseDetailUpdateOne) SetTimeCalibration(v string) *DoseDetailUpdateOne {
	_u.mutation.SetTimeCalibration(v)
	return _u
}

// SetNillableTimeCalibration sets the "time_calibration" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableTimeCalibration(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetTimeCalibration(*v)
	}
	return _u
}

// ClearTimeCalibration clears the value of the "time_calibration" field.
func (_u *DoseDetailUpdateOne) ClearTimeCalibration() *DoseDetailUpdateOne {
	_u.mutation.ClearTimeCalibration()
	return _u
}

// SetRac sets the "rac" field.
func (_u *DoseDetailUpdateOne) SetRac(v string) *DoseDetailUpdateOne {
	_u.mutation.SetRac(v)
	return _u
}

// SetNillableRac sets the "rac" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableRac(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetRac(*v)
	}
	return _u
}

// ClearRac clears the value of the "rac" field.
func (_u *DoseDetailUpdateOne) ClearRac() *DoseDetailUpdateOne {
	_u.mutation.ClearRac()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *DoseDetailUpdateOne) SetManufacturer(v string) *DoseDetailUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableManufacturer(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *DoseDetailUpdateOne) ClearManufacturer() *DoseDetailUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetRxBatch sets the "rx_batch" field.
func (_u *DoseDetailUpdateOne) SetRxBatch(v int) *DoseDetailUpdateOne {
	_u.mutation.ResetRxBatch()
	_u.mutation.SetRxBatch(v)
	return _u
}

// SetNillableRxBatch sets the "rx_batch" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableRxBatch(v *int) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetRxBatch(*v)
	}
	return _u
}

// AddRxBatch adds value to the "rx_batch" field.
func (_u *DoseDetailUpdateOne) AddRxBatch(v int) *DoseDetailUpdateOne {
	_u.mutation.AddRxBatch(v)
	return _u
}

// SetLotBatch sets the "lot_batch" field.
func (_u *DoseDetailUpdateOne) SetLotBatch(v string) *DoseDetailUpdateOne {
	_u.mutation.SetLotBatch(v)
	return _u
}

// SetNillableLotBatch sets the "lot_batch" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableLotBatch(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetLotBatch(*v)
	}
	return _u
}

// ClearLotBatch clears the value of the "lot_batch" field.
func (_u *DoseDetailUpdateOne) ClearLotBatch() *DoseDetailUpdateOne {
	_u.mutation.ClearLotBatch()
	return _u
}

// SetVolume sets the "volume" field.
func (_u *DoseDetailUpdateOne) SetVolume(v string) *DoseDetailUpdateOne {
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableVolume(v *string) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// ClearVolume clears the value of the "volume" field.
func (_u *DoseDetailUpdateOne) ClearVolume() *DoseDetailUpdateOne {
	_u.mutation.ClearVolume()
	return _u
}

// SetDos sets the "dos" field.
func (_u *DoseDetailUpdateOne) SetDos(v time.Time) *DoseDetailUpdateOne {
	_u.mutation.SetDos(v)
	return _u
}

// SetNillableDos sets the "dos" field if the given value is not nil.
func (_u *DoseDetailUpdateOne) SetNillableDos(v *time.Time) *DoseDetailUpdateOne {
	if v != nil {
		_u.SetDos(*v)
	}
	return _u
}

// SetVial sets the "vial" edge to the Vial entity.
func (_u *DoseDetailUpdateOne) SetVial(v *Vial) *DoseDetailUpdateOne {
	return _u.SetVialID(v.ID)
}

// Mutation returns the DoseDetailMutation object of the builder.
func (_u *DoseDetailUpdateOne) Mutation() *DoseDetailMutation {
	return _u.mutation
}

// ClearVial clears the "vial" edge to the Vial entity.
func (_u *DoseDetailUpdateOne) ClearVial() *DoseDetailUpdateOne {
	_u.mutation.ClearVial()
	return _u
}

// Where appends a list predicates to the DoseDetailUpdate builder.
func (_u *DoseDetailUpdateOne) Where(ps ...predicate.DoseDetail) *DoseDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoseDetailUpdateOne) Select(field string, fields ...string) *DoseDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoseDetail entity.
func (_u *DoseDetailUpdateOne) Save(ctx context.Context) (*DoseDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoseDetailUpdateOne) SaveX(ctx context.Context) *DoseDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoseDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoseDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoseDetailUpdateOne) check() error {
	if v, ok := _u.mutation.PatientID(); ok {
		if err := dosedetail.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RxBatch(); ok {
		if err := dosedetail.RxBatchValidator(v); err != nil {
			return &ValidationError{Name: "rx_batch", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.rx_batch": %w`, err)}
		}
	}
	if _u.mutation.VialCleared() && len(_u.mutation.VialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DoseDetail.vial"`)
	}
	return nil
}

func (_u *DoseDetailUpdateOne) sqlSave(ctx context.Context) (_node *DoseDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dosedetail.Table, dosedetail.Columns, sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DoseDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dosedetail.FieldID)
		for _, f := range fields {
			if !dosedetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dosedetail.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(dosedetail.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyName(); ok {
		_spec.SetField(dosedetail.FieldStudyName, field.TypeString, value)
	}
	if _u.mutation.StudyNameCleared() {
		_spec.ClearField(dosedetail.FieldStudyName, field.TypeString)
	}
	if value, ok := _u.mutation.DateCalibration(); ok {
		_spec.SetField(dosedetail.FieldDateCalibration, field.TypeString, value)
	}
	if _u.mutation.DateCalibrationCleared() {
		_spec.ClearField(dosedetail.FieldDateCalibration, field.TypeString)
	}
	if value, ok := _u.mutation.TimeCalibration(); ok {
		_spec.SetField(dosedetail.FieldTimeCalibration, field.TypeString, value)
	}
	if _u.mutation.TimeCalibrationCleared() {
		_spec.ClearField(dosedetail.FieldTimeCalibration, field.TypeString)
	}
	if value, ok := _u.mutation.Rac(); ok {
		_spec.SetField(dosedetail.FieldRac, field.TypeString, value)
	}
	if _u.mutation.RacCleared() {
		_spec.ClearField(dosedetail.FieldRac, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(dosedetail.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(dosedetail.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.RxBatch(); ok {
		_spec.SetField(dosedetail.FieldRxBatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRxBatch(); ok {
		_spec.AddField(dosedetail.FieldRxBatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotBatch(); ok {
		_spec.SetField(dosedetail.FieldLotBatch, field.TypeString, value)
	}
	if _u.mutation.LotBatchCleared() {
		_spec.ClearField(dosedetail.FieldLotBatch, field.TypeString)
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(dosedetail.FieldVolume, field.TypeString, value)
	}
	if _u.mutation.VolumeCleared() {
		_spec.ClearField(dosedetail.FieldVolume, field.TypeString)
	}
	if value, ok := _u.mutation.Dos(); ok {
		_spec.SetField(dosedetail.FieldDos, field.TypeTime, value)
	}
	if _u.mutation.VialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dosedetail.VialTable,
			Columns: []string{dosedetail.VialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dosedetail.VialTable,
			Columns: []string{dosedetail.VialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoseDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dosedetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
