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

// VialCreate is the builder for creating a Vial entity.
type VialCreate struct {
	config
	mutation *VialMutation
	hooks    []Hook
}

// SetRadiopharmaceutical sets the "radiopharmaceutical" field.
func (_c *VialCreate) SetRadiopharmaceutical(v string) *VialCreate {
	_c.mutation.SetRadiopharmaceutical(v)
	return _c
}

// SetRxNumber sets the "rx_number" field.
func (_c *VialCreate) SetRxNumber(v int) *VialCreate {
	_c.mutation.SetRxNumber(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *VialCreate) SetPatientID(v string) *VialCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetActualAmount sets the "actual_amount" field.
func (_c *VialCreate) SetActualAmount(v string) *VialCreate {
	_c.mutation.SetActualAmount(v)
	return _c
}

// SetNillableActualAmount sets the "actual_amount" field if the given value is not nil.
func (_c *VialCreate) SetNillableActualAmount(v *string) *VialCreate {
	if v != nil {
		_c.SetActualAmount(*v)
	}
	return _c
}

// SetCalibrationDate sets the "calibration_date" field.
func (_c *VialCreate) SetCalibrationDate(v string) *VialCreate {
	_c.mutation.SetCalibrationDate(v)
	return _c
}

// SetNillableCalibrationDate sets the "calibration_date" field if the given value is not nil.
func (_c *VialCreate) SetNillableCalibrationDate(v *string) *VialCreate {
	if v != nil {
		_c.SetCalibrationDate(*v)
	}
	return _c
}

// SetLotNumber sets the "lot_number" field.
func (_c *VialCreate) SetLotNumber(v string) *VialCreate {
	_c.mutation.SetLotNumber(v)
	return _c
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_c *VialCreate) SetNillableLotNumber(v *string) *VialCreate {
	if v != nil {
		_c.SetLotNumber(*v)
	}
	return _c
}

// SetEnteredBy sets the "entered_by" field.
func (_c *VialCreate) SetEnteredBy(v string) *VialCreate {
	_c.mutation.SetEnteredBy(v)
	return _c
}

// SetEnteredDateTime sets the "entered_date_time" field.
func (_c *VialCreate) SetEnteredDateTime(v time.Time) *VialCreate {
	_c.mutation.SetEnteredDateTime(v)
	return _c
}

// SetNillableEnteredDateTime sets the "entered_date_time" field if the given value is not nil.
func (_c *VialCreate) SetNillableEnteredDateTime(v *time.Time) *VialCreate {
	if v != nil {
		_c.SetEnteredDateTime(*v)
	}
	return _c
}

// SetOrderedAmount sets the "ordered_amount" field.
func (_c *VialCreate) SetOrderedAmount(v string) *VialCreate {
	_c.mutation.SetOrderedAmount(v)
	return _c
}

// SetNillableOrderedAmount sets the "ordered_amount" field if the given value is not nil.
func (_c *VialCreate) SetNillableOrderedAmount(v *string) *VialCreate {
	if v != nil {
		_c.SetOrderedAmount(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *VialCreate) SetManufacturer(v string) *VialCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *VialCreate) SetNillableManufacturer(v *string) *VialCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetVolume sets the "volume" field.
func (_c *VialCreate) SetVolume(v string) *VialCreate {
	_c.mutation.SetVolume(v)
	return _c
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_c *VialCreate) SetNillableVolume(v *string) *VialCreate {
	if v != nil {
		_c.SetVolume(*v)
	}
	return _c
}

// SetRadioactivityConcentration sets the "radioactivity_concentration" field.
func (_c *VialCreate) SetRadioactivityConcentration(v string) *VialCreate {
	_c.mutation.SetRadioactivityConcentration(v)
	return _c
}

// SetNillableRadioactivityConcentration sets the "radioactivity_concentration" field if the given value is not nil.
func (_c *VialCreate) SetNillableRadioactivityConcentration(v *string) *VialCreate {
	if v != nil {
		_c.SetRadioactivityConcentration(*v)
	}
	return _c
}

// SetLabelImageURL sets the "label_image_url" field.
func (_c *VialCreate) SetLabelImageURL(v string) *VialCreate {
	_c.mutation.SetLabelImageURL(v)
	return _c
}

// SetNillableLabelImageURL sets the "label_image_url" field if the given value is not nil.
func (_c *VialCreate) SetNillableLabelImageURL(v *string) *VialCreate {
	if v != nil {
		_c.SetLabelImageURL(*v)
	}
	return _c
}

// SetCoaImageURL sets the "coa_image_url" field.
func (_c *VialCreate) SetCoaImageURL(v string) *VialCreate {
	_c.mutation.SetCoaImageURL(v)
	return _c
}

// SetNillableCoaImageURL sets the "coa_image_url" field if the given value is not nil.
func (_c *VialCreate) SetNillableCoaImageURL(v *string) *VialCreate {
	if v != nil {
		_c.SetCoaImageURL(*v)
	}
	return _c
}

// SetVialImageURL sets the "vial_image_url" field.
func (_c *VialCreate) SetVialImageURL(v string) *VialCreate {
	_c.mutation.SetVialImageURL(v)
	return _c
}

// SetNillableVialImageURL sets the "vial_image_url" field if the given value is not nil.
func (_c *VialCreate) SetNillableVialImageURL(v *string) *VialCreate {
	if v != nil {
		_c.SetVialImageURL(*v)
	}
	return _c
}

// SetNewLabelImageURL sets the "new_label_image_url" field.
func (_c *VialCreate) SetNewLabelImageURL(v string) *VialCreate {
	_c.mutation.SetNewLabelImageURL(v)
	return _c
}

// SetNillableNewLabelImageURL sets the "new_label_image_url" field if the given value is not nil.
func (_c *VialCreate) SetNillableNewLabelImageURL(v *string) *VialCreate {
	if v != nil {
		_c.SetNewLabelImageURL(*v)
	}
	return _c
}

// SetNewVialImageURL sets the "new_vial_image_url" field.
func (_c *VialCreate) SetNewVialImageURL(v string) *VialCreate {
	_c.mutation.SetNewVialImageURL(v)
	return _c
}

// SetNillableNewVialImageURL sets the "new_vial_image_url" field if the given value is not nil.
func (_c *VialCreate) SetNillableNewVialImageURL(v *string) *VialCreate {
	if v != nil {
		_c.SetNewVialImageURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VialCreate) SetCreatedAt(v time.Time) *VialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VialCreate) SetNillableCreatedAt(v *time.Time) *VialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VialCreate) SetUpdatedAt(v time.Time) *VialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VialCreate) SetNillableUpdatedAt(v *time.Time) *VialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VialCreate) SetID(v uuid.UUID) *VialCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VialCreate) SetNillableID(v *uuid.UUID) *VialCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDoseDetailIDs adds the "dose_details" edge to the DoseDetail entity by IDs.
func (_c *VialCreate) AddDoseDetailIDs(ids ...uuid.UUID) *VialCreate {
	_c.mutation.AddDoseDetailIDs(ids...)
	return _c
}

// AddDoseDetails adds the "dose_details" edges to the DoseDetail entity.
func (_c *VialCreate) AddDoseDetails(v ...*DoseDetail) *VialCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDoseDetailIDs(ids...)
}

// Mutation returns the VialMutation object of the builder.
func (_c *VialCreate) Mutation() *VialMutation {
	return _c.mutation
}

// Save creates the Vial in the database.
func (_c *VialCreate) Save(ctx context.Context) (*Vial, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VialCreate) SaveX(ctx context.Context) *Vial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VialCreate) defaults() {
	if _, ok := _c.mutation.EnteredDateTime(); !ok {
		v := vial.DefaultEnteredDateTime()
		_c.mutation.SetEnteredDateTime(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vial.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vial.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vial.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VialCreate) check() error {
	if _, ok := _c.mutation.Radiopharmaceutical(); !ok {
		return &ValidationError{Name: "radiopharmaceutical", err: errors.New(`ent: missing required field "Vial.radiopharmaceutical"`)}
	}
	if v, ok := _c.mutation.Radiopharmaceutical(); ok {
		if err := vial.RadiopharmaceuticalValidator(v); err != nil {
			return &ValidationError{Name: "radiopharmaceutical", err: fmt.Errorf(`ent: validator failed for field "Vial.radiopharmaceutical": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RxNumber(); !ok {
		return &ValidationError{Name: "rx_number", err: errors.New(`ent: missing required field "Vial.rx_number"`)}
	}
	if v, ok := _c.mutation.RxNumber(); ok {
		if err := vial.RxNumberValidator(v); err != nil {
			return &ValidationError{Name: "rx_number", err: fmt.Errorf(`ent: validator failed for field "Vial.rx_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Vial.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := vial.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Vial.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnteredBy(); !ok {
		return &ValidationError{Name: "entered_by", err: errors.New(`ent: missing required field "Vial.entered_by"`)}
	}
	if v, ok := _c.mutation.EnteredBy(); ok {
		if err := vial.EnteredByValidator(v); err != nil {
			return &ValidationError{Name: "entered_by", err: fmt.Errorf(`ent: validator failed for field "Vial.entered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnteredDateTime(); !ok {
		return &ValidationError{Name: "entered_date_time", err: errors.New(`ent: missing required field "Vial.entered_date_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vial.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vial.updated_at"`)}
	}
	return nil
}

func (_c *VialCreate) sqlSave(ctx context.Context) (*Vial, error) {
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

func (_c *VialCreate) createSpec() (*Vial, *sqlgraph.CreateSpec) {
	var (
		_node = &Vial{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vial.Table, sqlgraph.NewFieldSpec(vial.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Radiopharmaceutical(); ok {
		_spec.SetField(vial.FieldRadiopharmaceutical, field.TypeString, value)
		_node.Radiopharmaceutical = value
	}
	if value, ok := _c.mutation.RxNumber(); ok {
		_spec.SetField(vial.FieldRxNumber, field.TypeInt, value)
		_node.RxNumber = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(vial.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.ActualAmount(); ok {
		_spec.SetField(vial.FieldActualAmount, field.TypeString, value)
		_node.ActualAmount = value
	}
	if value, ok := _c.mutation.CalibrationDate(); ok {
		_spec.SetField(vial.FieldCalibrationDate, field.TypeString, value)
		_node.CalibrationDate = value
	}
	if value, ok := _c.mutation.LotNumber(); ok {
		_spec.SetField(vial.FieldLotNumber, field.TypeString, value)
		_node.LotNumber = value
	}
	if value, ok := _c.mutation.EnteredBy(); ok {
		_spec.SetField(vial.FieldEnteredBy, field.TypeString, value)
		_node.EnteredBy = value
	}
	if value, ok := _c.mutation.EnteredDateTime(); ok {
		_spec.SetField(vial.FieldEnteredDateTime, field.TypeTime, value)
		_node.EnteredDateTime = value
	}
	if value, ok := _c.mutation.OrderedAmount(); ok {
		_spec.SetField(vial.FieldOrderedAmount, field.TypeString, value)
		_node.OrderedAmount = value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(vial.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = value
	}
	if value, ok := _c.mutation.Volume(); ok {
		_spec.SetField(vial.FieldVolume, field.TypeString, value)
		_node.Volume = value
	}
	if value, ok := _c.mutation.RadioactivityConcentration(); ok {
		_spec.SetField(vial.FieldRadioactivityConcentration, field.TypeString, value)
		_node.RadioactivityConcentration = value
	}
	if value, ok := _c.mutation.LabelImageURL(); ok {
		_spec.SetField(vial.FieldLabelImageURL, field.TypeString, value)
		_node.LabelImageURL = value
	}
	if value, ok := _c.mutation.CoaImageURL(); ok {
		_spec.SetField(vial.FieldCoaImageURL, field.TypeString, value)
		_node.CoaImageURL = value
	}
	if value, ok := _c.mutation.VialImageURL(); ok {
		_spec.SetField(vial.FieldVialImageURL, field.TypeString, value)
		_node.VialImageURL = value
	}
	if value, ok := _c.mutation.NewLabelImageURL(); ok {
		_spec.SetField(vial.FieldNewLabelImageURL, field.TypeString, value)
		_node.NewLabelImageURL = value
	}
	if value, ok := _c.mutation.NewVialImageURL(); ok {
		_spec.SetField(vial.FieldNewVialImageURL, field.TypeString, value)
		_node.NewVialImageURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vial.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vial.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DoseDetailsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VialCreateBulk is the builder for creating many Vial entities in bulk.
type VialCreateBulk struct {
	config
	err      error
	builders []*VialCreate
}

// Save creates the Vial entities in the database.
func (_c *VialCreateBulk) Save(ctx context.Context) ([]*Vial, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vial, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VialMutation)
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
func (_c *VialCreateBulk) SaveX(ctx context.Context) []*Vial {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
