// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/vial"
)

// DoseDetailCreate is the builder for creating a DoseDetail entity.
type DoseDetailCreate struct {
	config
	mutation *DoseDetailMutation
	hooks    []Hook
}

// SetVialID sets the "vial_id" field.
func (_c *DoseDetailCreate) SetVialID(v uuid.UUID) *DoseDetailCreate {
	_c.mutation.SetVialID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DoseDetailCreate) SetPatientID(v string) *DoseDetailCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetStudyName sets the "study_name" field.
func (_c *DoseDetailCreate) SetStudyName(v string) *DoseDetailCreate {
	_c.mutation.SetStudyName(v)
	return _c
}

// SetNillableStudyName sets the "study_name" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableStudyName(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetStudyName(*v)
	}
	return _c
}

// SetDateCalibration sets the "date_calibration" field.
func (_c *DoseDetailCreate) SetDateCalibration(v string) *DoseDetailCreate {
	_c.mutation.SetDateCalibration(v)
	return _c
}

// SetNillableDateCalibration sets the "date_calibration" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableDateCalibration(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetDateCalibration(*v)
	}
	return _c
}

// SetTimeCalibration sets the "time_calibration" field.
func (_c *DoseDetailCreate) SetTimeCalibration(v string) *DoseDetailCreate {
	_c.mutation.SetTimeCalibration(v)
	return _c
}

// SetNillableTimeCalibration sets the "time_calibration" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableTimeCalibration(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetTimeCalibration(*v)
	}
	return _c
}

// SetRac sets the "rac" field.
func (_c *DoseDetailCreate) SetRac(v string) *DoseDetailCreate {
	_c.mutation.SetRac(v)
	return _c
}

// SetNillableRac sets the "rac" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableRac(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetRac(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *DoseDetailCreate) SetManufacturer(v string) *DoseDetailCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableManufacturer(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetRxBatch sets the "rx_batch" field.
func (_c *DoseDetailCreate) SetRxBatch(v int) *DoseDetailCreate {
	_c.mutation.SetRxBatch(v)
	return _c
}

// SetLotBatch sets the "lot_batch" field.
func (_c *DoseDetailCreate) SetLotBatch(v string) *DoseDetailCreate {
	_c.mutation.SetLotBatch(v)
	return _c
}

// SetNillableLotBatch sets the "lot_batch" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableLotBatch(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetLotBatch(*v)
	}
	return _c
}

// SetVolume sets the "volume" field.
func (_c *DoseDetailCreate) SetVolume(v string) *DoseDetailCreate {
	_c.mutation.SetVolume(v)
	return _c
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableVolume(v *string) *DoseDetailCreate {
	if v != nil {
		_c.SetVolume(*v)
	}
	return _c
}

// SetDos sets the "dos" field.
func (_c *DoseDetailCreate) SetDos(v time.Time) *DoseDetailCreate {
	_c.mutation.SetDos(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DoseDetailCreate) SetID(v uuid.UUID) *DoseDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoseDetailCreate) SetNillableID(v *uuid.UUID) *DoseDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVial sets the "vial" edge to the Vial entity.
func (_c *DoseDetailCreate) SetVial(v *Vial) *DoseDetailCreate {
	return _c.SetVialID(v.ID)
}

// Mutation returns the DoseDetailMutation object of the builder.
func (_c *DoseDetailCreate) Mutation() *DoseDetailMutation {
	return _c.mutation
}

// Save creates the DoseDetail in the database.
func (_c *DoseDetailCreate) Save(ctx context.Context) (*DoseDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoseDetailCreate) SaveX(ctx context.Context) *DoseDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoseDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoseDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoseDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := dosedetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoseDetailCreate) check() error {
	if _, ok := _c.mutation.VialID(); !ok {
		return &ValidationError{Name: "vial_id", err: errors.New(`ent: missing required field "DoseDetail.vial_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "DoseDetail.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := dosedetail.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RxBatch(); !ok {
		return &ValidationError{Name: "rx_batch", err: errors.New(`ent: missing required field "DoseDetail.rx_batch"`)}
	}
	if v, ok := _c.mutation.RxBatch(); ok {
		if err := dosedetail.RxBatchValidator(v); err != nil {
			return &ValidationError{Name: "rx_batch", err: fmt.Errorf(`ent: validator failed for field "DoseDetail.rx_batch": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dos(); !ok {
		return &ValidationError{Name: "dos", err: errors.New(`ent: missing required field "DoseDetail.dos"`)}
	}
	if len(_c.mutation.VialIDs()) == 0 {
		return &ValidationError{Name: "vial", err: errors.New(`ent: missing required edge "DoseDetail.vial"`)}
	}
	return nil
}

func (_c *DoseDetailCreate) sqlSave(ctx context.Context) (*DoseDetail, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoseDetailCreate) createSpec() (*DoseDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &DoseDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dosedetail.Table, sqlgraph.NewFieldSpec(dosedetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(dosedetail.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.StudyName(); ok {
		_spec.SetField(dosedetail.FieldStudyName, field.TypeString, value)
		_node.StudyName = value
	}
	if value, ok := _c.mutation.DateCalibration(); ok {
		_spec.SetField(dosedetail.FieldDateCalibration, field.TypeString, value)
		_node.DateCalibration = value
	}
	if value, ok := _c.mutation.TimeCalibration(); ok {
		_spec.SetField(dosedetail.FieldTimeCalibration, field.TypeString, value)
		_node.TimeCalibration = value
	}
	if value, ok := _c.mutation.Rac(); ok {
		_spec.SetField(dosedetail.FieldRac, field.TypeString, value)
		_node.Rac = value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(dosedetail.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = value
	}
	if value, ok := _c.mutation.RxBatch(); ok {
		_spec.SetField(dosedetail.FieldRxBatch, field.TypeInt, value)
		_node.RxBatch = value
	}
	if value, ok := _c.mutation.LotBatch(); ok {
		_spec.SetField(dosedetail.FieldLotBatch, field.TypeString, value)
		_node.LotBatch = value
	}
	if value, ok := _c.mutation.Volume(); ok {
		_spec.SetField(dosedetail.FieldVolume, field.TypeString, value)
		_node.Volume = value
	}
	if value, ok := _c.mutation.Dos(); ok {
		_spec.SetField(dosedetail.FieldDos, field.TypeTime, value)
		_node.Dos = value
	}
	if nodes := _c.mutation.VialIDs(); len(nodes) > 0 {
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
		_node.VialID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DoseDetailCreateBulk is the builder for creating many DoseDetail entities in bulk.
type DoseDetailCreateBulk struct {
	config
	err      error
	builders []*DoseDetailCreate
}

// Save creates the DoseDetail entities in the database.
func (_c *DoseDetailCreateBulk) Save(ctx context.Context) ([]*DoseDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoseDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoseDetailMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoseDetailCreateBulk) SaveX(ctx context.Context) []*DoseDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoseDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoseDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
