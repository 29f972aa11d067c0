// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/unithera/vialscan/gen/ent/dosedetail"
	"github.com/unithera/vialscan/gen/ent/predicate"
	"github.com/unithera/vialscan/gen/ent/scanjob"
	"github.com/unithera/vialscan/gen/ent/vial"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDoseDetail = "DoseDetail"
	TypeScanJob    = "ScanJob"
	TypeVial       = "Vial"
)

// DoseDetailMutation represents an operation that mutates the DoseDetail nodes in the graph.
type DoseDetailMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	patient_id       *string
	study_name       *string
	date_calibration *string
	time_calibration *string
	rac              *string
	manufacturer     *string
	rx_batch         *int
	addrx_batch      *int
	lot_batch        *string
	volume           *string
	dos              *time.Time
	clearedFields    map[string]struct{}
	vial             *uuid.UUID
	clearedvial      bool
	done             bool
	oldValue         func(context.Context) (*DoseDetail, error)
	predicates       []predicate.DoseDetail
}

var _ ent.Mutation = (*DoseDetailMutation)(nil)

// dosedetailOption allows management of the mutation configuration using functional options.
type dosedetailOption func(*DoseDetailMutation)

// newDoseDetailMutation creates new mutation for the DoseDetail entity.
func newDoseDetailMutation(c config, op Op, opts ...dosedetailOption) *DoseDetailMutation {
	m := &DoseDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeDoseDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoseDetailID sets the ID field of the mutation.
func withDoseDetailID(id uuid.UUID) dosedetailOption {
	return func(m *DoseDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *DoseDetail
		)
		m.oldValue = func(ctx context.Context) (*DoseDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DoseDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoseDetail sets the old DoseDetail of the mutation.
func withDoseDetail(node *DoseDetail) dosedetailOption {
	return func(m *DoseDetailMutation) {
		m.oldValue = func(context.Context) (*DoseDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoseDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoseDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DoseDetail entities.
func (m *DoseDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoseDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoseDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DoseDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVialID sets the "vial_id" field.
func (m *DoseDetailMutation) SetVialID(u uuid.UUID) {
	m.vial = &u
}

// VialID returns the value of the "vial_id" field in the mutation.
func (m *DoseDetailMutation) VialID() (r uuid.UUID, exists bool) {
	v := m.vial
	if v == nil {
		return
	}
	return *v, true
}

// OldVialID returns the old "vial_id" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldVialID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVialID: %w", err)
	}
	return oldValue.VialID, nil
}

// ResetVialID resets all changes to the "vial_id" field.
func (m *DoseDetailMutation) ResetVialID() {
	m.vial = nil
}

// SetPatientID sets the "patient_id" field.
func (m *DoseDetailMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *DoseDetailMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *DoseDetailMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetStudyName sets the "study_name" field.
func (m *DoseDetailMutation) SetStudyName(s string) {
	m.study_name = &s
}

// StudyName returns the value of the "study_name" field in the mutation.
func (m *DoseDetailMutation) StudyName() (r string, exists bool) {
	v := m.study_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyName returns the old "study_name" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldStudyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyName: %w", err)
	}
	return oldValue.StudyName, nil
}

// ClearStudyName clears the value of the "study_name" field.
func (m *DoseDetailMutation) ClearStudyName() {
	m.study_name = nil
	m.clearedFields[dosedetail.FieldStudyName] = struct{}{}
}

// StudyNameCleared returns if the "study_name" field was cleared in this mutation.
func (m *DoseDetailMutation) StudyNameCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldStudyName]
	return ok
}

// ResetStudyName resets all changes to the "study_name" field.
func (m *DoseDetailMutation) ResetStudyName() {
	m.study_name = nil
	delete(m.clearedFields, dosedetail.FieldStudyName)
}

// SetDateCalibration sets the "date_calibration" field.
func (m *DoseDetailMutation) SetDateCalibration(s string) {
	m.date_calibration = &s
}

// DateCalibration returns the value of the "date_calibration" field in the mutation.
func (m *DoseDetailMutation) DateCalibration() (r string, exists bool) {
	v := m.date_calibration
	if v == nil {
		return
	}
	return *v, true
}

// OldDateCalibration returns the old "date_calibration" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldDateCalibration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateCalibration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateCalibration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateCalibration: %w", err)
	}
	return oldValue.DateCalibration, nil
}

// ClearDateCalibration clears the value of the "date_calibration" field.
func (m *DoseDetailMutation) ClearDateCalibration() {
	m.date_calibration = nil
	m.clearedFields[dosedetail.FieldDateCalibration] = struct{}{}
}

// DateCalibrationCleared returns if the "date_calibration" field was cleared in this mutation.
func (m *DoseDetailMutation) DateCalibrationCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldDateCalibration]
	return ok
}

// ResetDateCalibration resets all changes to the "date_calibration" field.
func (m *DoseDetailMutation) ResetDateCalibration() {
	m.date_calibration = nil
	delete(m.clearedFields, dosedetail.FieldDateCalibration)
}

// SetTimeCalibration sets the "time_calibration" field.
func (m *DoseDetailMutation) SetTimeCalibration(s string) {
	m.time_calibration = &s
}

// TimeCalibration returns the value of the "time_calibration" field in the mutation.
func (m *DoseDetailMutation) TimeCalibration() (r string, exists bool) {
	v := m.time_calibration
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeCalibration returns the old "time_calibration" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldTimeCalibration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeCalibration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeCalibration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeCalibration: %w", err)
	}
	return oldValue.TimeCalibration, nil
}

// ClearTimeCalibration clears the value of the "time_calibration" field.
func (m *DoseDetailMutation) ClearTimeCalibration() {
	m.time_calibration = nil
	m.clearedFields[dosedetail.FieldTimeCalibration] = struct{}{}
}

// TimeCalibrationCleared returns if the "time_calibration" field was cleared in this mutation.
func (m *DoseDetailMutation) TimeCalibrationCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldTimeCalibration]
	return ok
}

// ResetTimeCalibration resets all changes to the "time_calibration" field.
func (m *DoseDetailMutation) ResetTimeCalibration() {
	m.time_calibration = nil
	delete(m.clearedFields, dosedetail.FieldTimeCalibration)
}

// SetRac sets the "rac" field.
func (m *DoseDetailMutation) SetRac(s string) {
	m.rac = &s
}

// Rac returns the value of the "rac" field in the mutation.
func (m *DoseDetailMutation) Rac() (r string, exists bool) {
	v := m.rac
	if v == nil {
		return
	}
	return *v, true
}

// OldRac returns the old "rac" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldRac(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRac is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRac requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRac: %w", err)
	}
	return oldValue.Rac, nil
}

// ClearRac clears the value of the "rac" field.
func (m *DoseDetailMutation) ClearRac() {
	m.rac = nil
	m.clearedFields[dosedetail.FieldRac] = struct{}{}
}

// RacCleared returns if the "rac" field was cleared in this mutation.
func (m *DoseDetailMutation) RacCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldRac]
	return ok
}

// ResetRac resets all changes to the "rac" field.
func (m *DoseDetailMutation) ResetRac() {
	m.rac = nil
	delete(m.clearedFields, dosedetail.FieldRac)
}

// SetManufacturer sets the "manufacturer" field.
func (m *DoseDetailMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *DoseDetailMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldManufacturer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *DoseDetailMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[dosedetail.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *DoseDetailMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *DoseDetailMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, dosedetail.FieldManufacturer)
}

// SetRxBatch sets the "rx_batch" field.
func (m *DoseDetailMutation) SetRxBatch(i int) {
	m.rx_batch = &i
	m.addrx_batch = nil
}

// RxBatch returns the value of the "rx_batch" field in the mutation.
func (m *DoseDetailMutation) RxBatch() (r int, exists bool) {
	v := m.rx_batch
	if v == nil {
		return
	}
	return *v, true
}

// OldRxBatch returns the old "rx_batch" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldRxBatch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRxBatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRxBatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRxBatch: %w", err)
	}
	return oldValue.RxBatch, nil
}

// AddRxBatch adds i to the "rx_batch" field.
func (m *DoseDetailMutation) AddRxBatch(i int) {
	if m.addrx_batch != nil {
		*m.addrx_batch += i
	} else {
		m.addrx_batch = &i
	}
}

// AddedRxBatch returns the value that was added to the "rx_batch" field in this mutation.
func (m *DoseDetailMutation) AddedRxBatch() (r int, exists bool) {
	v := m.addrx_batch
	if v == nil {
		return
	}
	return *v, true
}

// ResetRxBatch resets all changes to the "rx_batch" field.
func (m *DoseDetailMutation) ResetRxBatch() {
	m.rx_batch = nil
	m.addrx_batch = nil
}

// SetLotBatch sets the "lot_batch" field.
func (m *DoseDetailMutation) SetLotBatch(s string) {
	m.lot_batch = &s
}

// LotBatch returns the value of the "lot_batch" field in the mutation.
func (m *DoseDetailMutation) LotBatch() (r string, exists bool) {
	v := m.lot_batch
	if v == nil {
		return
	}
	return *v, true
}

// OldLotBatch returns the old "lot_batch" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldLotBatch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotBatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotBatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotBatch: %w", err)
	}
	return oldValue.LotBatch, nil
}

// ClearLotBatch clears the value of the "lot_batch" field.
func (m *DoseDetailMutation) ClearLotBatch() {
	m.lot_batch = nil
	m.clearedFields[dosedetail.FieldLotBatch] = struct{}{}
}

// LotBatchCleared returns if the "lot_batch" field was cleared in this mutation.
func (m *DoseDetailMutation) LotBatchCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldLotBatch]
	return ok
}

// ResetLotBatch resets all changes to the "lot_batch" field.
func (m *DoseDetailMutation) ResetLotBatch() {
	m.lot_batch = nil
	delete(m.clearedFields, dosedetail.FieldLotBatch)
}

// SetVolume sets the "volume" field.
func (m *DoseDetailMutation) SetVolume(s string) {
	m.volume = &s
}

// Volume returns the value of the "volume" field in the mutation.
func (m *DoseDetailMutation) Volume() (r string, exists bool) {
	v := m.volume
	if v == nil {
		return
	}
	return *v, true
}

// OldVolume returns the old "volume" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldVolume(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolume: %w", err)
	}
	return oldValue.Volume, nil
}

// ClearVolume clears the value of the "volume" field.
func (m *DoseDetailMutation) ClearVolume() {
	m.volume = nil
	m.clearedFields[dosedetail.FieldVolume] = struct{}{}
}

// VolumeCleared returns if the "volume" field was cleared in this mutation.
func (m *DoseDetailMutation) VolumeCleared() bool {
	_, ok := m.clearedFields[dosedetail.FieldVolume]
	return ok
}

// ResetVolume resets all changes to the "volume" field.
func (m *DoseDetailMutation) ResetVolume() {
	m.volume = nil
	delete(m.clearedFields, dosedetail.FieldVolume)
}

// SetDos sets the "dos" field.
func (m *DoseDetailMutation) SetDos(t time.Time) {
	m.dos = &t
}

// Dos returns the value of the "dos" field in the mutation.
func (m *DoseDetailMutation) Dos() (r time.Time, exists bool) {
	v := m.dos
	if v == nil {
		return
	}
	return *v, true
}

// OldDos returns the old "dos" field's value of the DoseDetail entity.
// If the DoseDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoseDetailMutation) OldDos(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDos: %w", err)
	}
	return oldValue.Dos, nil
}

// ResetDos resets all changes to the "dos" field.
func (m *DoseDetailMutation) ResetDos() {
	m.dos = nil
}

// ClearVial clears the "vial" edge to the Vial entity.
func (m *DoseDetailMutation) ClearVial() {
	m.clearedvial = true
	m.clearedFields[dosedetail.FieldVialID] = struct{}{}
}

// VialCleared reports if the "vial" edge to the Vial entity was cleared.
func (m *DoseDetailMutation) VialCleared() bool {
	return m.clearedvial
}

// VialIDs returns the "vial" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VialID instead. It exists only for internal usage by the builders.
func (m *DoseDetailMutation) VialIDs() (ids []uuid.UUID) {
	if id := m.vial; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVial resets all changes to the "vial" edge.
func (m *DoseDetailMutation) ResetVial() {
	m.vial = nil
	m.clearedvial = false
}

// Where appends a list predicates to the DoseDetailMutation builder.
func (m *DoseDetailMutation) Where(ps ...predicate.DoseDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoseDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoseDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DoseDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoseDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoseDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DoseDetail).
func (m *DoseDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoseDetailMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.vial != nil {
		fields = append(fields, dosedetail.FieldVialID)
	}
	if m.patient_id != nil {
		fields = append(fields, dosedetail.FieldPatientID)
	}
	if m.study_name != nil {
		fields = append(fields, dosedetail.FieldStudyName)
	}
	if m.date_calibration != nil {
		fields = append(fields, dosedetail.FieldDateCalibration)
	}
	if m.time_calibration != nil {
		fields = append(fields, dosedetail.FieldTimeCalibration)
	}
	if m.rac != nil {
		fields = append(fields, dosedetail.FieldRac)
	}
	if m.manufacturer != nil {
		fields = append(fields, dosedetail.FieldManufacturer)
	}
	if m.rx_batch != nil {
		fields = append(fields, dosedetail.FieldRxBatch)
	}
	if m.lot_batch != nil {
		fields = append(fields, dosedetail.FieldLotBatch)
	}
	if m.volume != nil {
		fields = append(fields, dosedetail.FieldVolume)
	}
	if m.dos != nil {
		fields = append(fields, dosedetail.FieldDos)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoseDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dosedetail.FieldVialID:
		return m.VialID()
	case dosedetail.FieldPatientID:
		return m.PatientID()
	case dosedetail.FieldStudyName:
		return m.StudyName()
	case dosedetail.FieldDateCalibration:
		return m.DateCalibration()
	case dosedetail.FieldTimeCalibration:
		return m.TimeCalibration()
	case dosedetail.FieldRac:
		return m.Rac()
	case dosedetail.FieldManufacturer:
		return m.Manufacturer()
	case dosedetail.FieldRxBatch:
		return m.RxBatch()
	case dosedetail.FieldLotBatch:
		return m.LotBatch()
	case dosedetail.FieldVolume:
		return m.Volume()
	case dosedetail.FieldDos:
		return m.Dos()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoseDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dosedetail.FieldVialID:
		return m.OldVialID(ctx)
	case dosedetail.FieldPatientID:
		return m.OldPatientID(ctx)
	case dosedetail.FieldStudyName:
		return m.OldStudyName(ctx)
	case dosedetail.FieldDateCalibration:
		return m.OldDateCalibration(ctx)
	case dosedetail.FieldTimeCalibration:
		return m.OldTimeCalibration(ctx)
	case dosedetail.FieldRac:
		return m.OldRac(ctx)
	case dosedetail.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case dosedetail.FieldRxBatch:
		return m.OldRxBatch(ctx)
	case dosedetail.FieldLotBatch:
		return m.OldLotBatch(ctx)
	case dosedetail.FieldVolume:
		return m.OldVolume(ctx)
	case dosedetail.FieldDos:
		return m.OldDos(ctx)
	}
	return nil, fmt.Errorf("unknown DoseDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoseDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dosedetail.FieldVialID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVialID(v)
		return nil
	case dosedetail.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case dosedetail.FieldStudyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyName(v)
		return nil
	case dosedetail.FieldDateCalibration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateCalibration(v)
		return nil
	case dosedetail.FieldTimeCalibration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeCalibration(v)
		return nil
	case dosedetail.FieldRac:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRac(v)
		return nil
	case dosedetail.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case dosedetail.FieldRxBatch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRxBatch(v)
		return nil
	case dosedetail.FieldLotBatch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotBatch(v)
		return nil
	case dosedetail.FieldVolume:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolume(v)
		return nil
	case dosedetail.FieldDos:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDos(v)
		return nil
	}
	return fmt.Errorf("unknown DoseDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoseDetailMutation) AddedFields() []string {
	var fields []string
	if m.addrx_batch != nil {
		fields = append(fields, dosedetail.FieldRxBatch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoseDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dosedetail.FieldRxBatch:
		return m.AddedRxBatch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoseDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dosedetail.FieldRxBatch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRxBatch(v)
		return nil
	}
	return fmt.Errorf("unknown DoseDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoseDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dosedetail.FieldStudyName) {
		fields = append(fields, dosedetail.FieldStudyName)
	}
	if m.FieldCleared(dosedetail.FieldDateCalibration) {
		fields = append(fields, dosedetail.FieldDateCalibration)
	}
	if m.FieldCleared(dosedetail.FieldTimeCalibration) {
		fields = append(fields, dosedetail.FieldTimeCalibration)
	}
	if m.FieldCleared(dosedetail.FieldRac) {
		fields = append(fields, dosedetail.FieldRac)
	}
	if m.FieldCleared(dosedetail.FieldManufacturer) {
		fields = append(fields, dosedetail.FieldManufacturer)
	}
	if m.FieldCleared(dosedetail.FieldLotBatch) {
		fields = append(fields, dosedetail.FieldLotBatch)
	}
	if m.FieldCleared(dosedetail.FieldVolume) {
		fields = append(fields, dosedetail.FieldVolume)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoseDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoseDetailMutation) ClearField(name string) error {
	switch name {
	case dosedetail.FieldStudyName:
		m.ClearStudyName()
		return nil
	case dosedetail.FieldDateCalibration:
		m.ClearDateCalibration()
		return nil
	case dosedetail.FieldTimeCalibration:
		m.ClearTimeCalibration()
		return nil
	case dosedetail.FieldRac:
		m.ClearRac()
		return nil
	case dosedetail.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case dosedetail.FieldLotBatch:
		m.ClearLotBatch()
		return nil
	case dosedetail.FieldVolume:
		m.ClearVolume()
		return nil
	}
	return fmt.Errorf("unknown DoseDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoseDetailMutation) ResetField(name string) error {
	switch name {
	case dosedetail.FieldVialID:
		m.ResetVialID()
		return nil
	case dosedetail.FieldPatientID:
		m.ResetPatientID()
		return nil
	case dosedetail.FieldStudyName:
		m.ResetStudyName()
		return nil
	case dosedetail.FieldDateCalibration:
		m.ResetDateCalibration()
		return nil
	case dosedetail.FieldTimeCalibration:
		m.ResetTimeCalibration()
		return nil
	case dosedetail.FieldRac:
		m.ResetRac()
		return nil
	case dosedetail.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case dosedetail.FieldRxBatch:
		m.ResetRxBatch()
		return nil
	case dosedetail.FieldLotBatch:
		m.ResetLotBatch()
		return nil
	case dosedetail.FieldVolume:
		m.ResetVolume()
		return nil
	case dosedetail.FieldDos:
		m.ResetDos()
		return nil
	}
	return fmt.Errorf("unknown DoseDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoseDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.vial != nil {
		edges = append(edges, dosedetail.EdgeVial)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoseDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dosedetail.EdgeVial:
		if id := m.vial; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoseDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoseDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoseDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvial {
		edges = append(edges, dosedetail.EdgeVial)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoseDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case dosedetail.EdgeVial:
		return m.clearedvial
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoseDetailMutation) ClearEdge(name string) error {
	switch name {
	case dosedetail.EdgeVial:
		m.ClearVial()
		return nil
	}
	return fmt.Errorf("unknown DoseDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoseDetailMutation) ResetEdge(name string) error {
	switch name {
	case dosedetail.EdgeVial:
		m.ResetVial()
		return nil
	}
	return fmt.Errorf("unknown DoseDetail edge %s", name)
}

// ScanJobMutation represents an operation that mutates the ScanJob nodes in the graph.
type ScanJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	session_id     *uuid.UUID
	scan_type      *string
	status         *string
	started_at     *time.Time
	finished_at    *time.Time
	line_count     *int
	addline_count  *int
	ocr_text       *string
	extracted_json *[]byte
	image_url      *string
	error_message  *string
	actor          *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ScanJob, error)
	predicates     []predicate.ScanJob
}

var _ ent.Mutation = (*ScanJobMutation)(nil)

// scanjobOption allows management of the mutation configuration using functional options.
type scanjobOption func(*ScanJobMutation)

// newScanJobMutation creates new mutation for the ScanJob entity.
func newScanJobMutation(c config, op Op, opts ...scanjobOption) *ScanJobMutation {
	m := &ScanJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScanJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanJobID sets the ID field of the mutation.
func withScanJobID(id uuid.UUID) scanjobOption {
	return func(m *ScanJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanJob
		)
		m.oldValue = func(ctx context.Context) (*ScanJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanJob sets the old ScanJob of the mutation.
func withScanJob(node *ScanJob) scanjobOption {
	return func(m *ScanJobMutation) {
		m.oldValue = func(context.Context) (*ScanJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanJob entities.
func (m *ScanJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ScanJobMutation) SetSessionID(u uuid.UUID) {
	m.session_id = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScanJobMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ScanJobMutation) ResetSessionID() {
	m.session_id = nil
}

// SetScanType sets the "scan_type" field.
func (m *ScanJobMutation) SetScanType(s string) {
	m.scan_type = &s
}

// ScanType returns the value of the "scan_type" field in the mutation.
func (m *ScanJobMutation) ScanType() (r string, exists bool) {
	v := m.scan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScanType returns the old "scan_type" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldScanType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanType: %w", err)
	}
	return oldValue.ScanType, nil
}

// ResetScanType resets all changes to the "scan_type" field.
func (m *ScanJobMutation) ResetScanType() {
	m.scan_type = nil
}

// SetStatus sets the "status" field.
func (m *ScanJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScanJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScanJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScanJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScanJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scanjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScanJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScanJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scanjob.FieldFinishedAt)
}

// SetLineCount sets the "line_count" field.
func (m *ScanJobMutation) SetLineCount(i int) {
	m.line_count = &i
	m.addline_count = nil
}

// LineCount returns the value of the "line_count" field in the mutation.
func (m *ScanJobMutation) LineCount() (r int, exists bool) {
	v := m.line_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLineCount returns the old "line_count" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldLineCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineCount: %w", err)
	}
	return oldValue.LineCount, nil
}

// AddLineCount adds i to the "line_count" field.
func (m *ScanJobMutation) AddLineCount(i int) {
	if m.addline_count != nil {
		*m.addline_count += i
	} else {
		m.addline_count = &i
	}
}

// AddedLineCount returns the value that was added to the "line_count" field in this mutation.
func (m *ScanJobMutation) AddedLineCount() (r int, exists bool) {
	v := m.addline_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineCount resets all changes to the "line_count" field.
func (m *ScanJobMutation) ResetLineCount() {
	m.line_count = nil
	m.addline_count = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ScanJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ScanJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ScanJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[scanjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ScanJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ScanJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, scanjob.FieldOcrText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ScanJobMutation) SetExtractedJSON(b []byte) {
	m.extracted_json = &b
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ScanJobMutation) ExtractedJSON() (r []byte, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldExtractedJSON(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ScanJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.clearedFields[scanjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ScanJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ScanJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	delete(m.clearedFields, scanjob.FieldExtractedJSON)
}

// SetImageURL sets the "image_url" field.
func (m *ScanJobMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *ScanJobMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *ScanJobMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[scanjob.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *ScanJobMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *ScanJobMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, scanjob.FieldImageURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanjob.FieldErrorMessage)
}

// SetActor sets the "actor" field.
func (m *ScanJobMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *ScanJobMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *ScanJobMutation) ResetActor() {
	m.actor = nil
}

// Where appends a list predicates to the ScanJobMutation builder.
func (m *ScanJobMutation) Where(ps ...predicate.ScanJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanJob).
func (m *ScanJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session_id != nil {
		fields = append(fields, scanjob.FieldSessionID)
	}
	if m.scan_type != nil {
		fields = append(fields, scanjob.FieldScanType)
	}
	if m.status != nil {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, scanjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.line_count != nil {
		fields = append(fields, scanjob.FieldLineCount)
	}
	if m.ocr_text != nil {
		fields = append(fields, scanjob.FieldOcrText)
	}
	if m.extracted_json != nil {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	if m.image_url != nil {
		fields = append(fields, scanjob.FieldImageURL)
	}
	if m.error_message != nil {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.actor != nil {
		fields = append(fields, scanjob.FieldActor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldSessionID:
		return m.SessionID()
	case scanjob.FieldScanType:
		return m.ScanType()
	case scanjob.FieldStatus:
		return m.Status()
	case scanjob.FieldStartedAt:
		return m.StartedAt()
	case scanjob.FieldFinishedAt:
		return m.FinishedAt()
	case scanjob.FieldLineCount:
		return m.LineCount()
	case scanjob.FieldOcrText:
		return m.OcrText()
	case scanjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case scanjob.FieldImageURL:
		return m.ImageURL()
	case scanjob.FieldErrorMessage:
		return m.ErrorMessage()
	case scanjob.FieldActor:
		return m.Actor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanjob.FieldSessionID:
		return m.OldSessionID(ctx)
	case scanjob.FieldScanType:
		return m.OldScanType(ctx)
	case scanjob.FieldStatus:
		return m.OldStatus(ctx)
	case scanjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scanjob.FieldLineCount:
		return m.OldLineCount(ctx)
	case scanjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case scanjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case scanjob.FieldImageURL:
		return m.OldImageURL(ctx)
	case scanjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scanjob.FieldActor:
		return m.OldActor(ctx)
	}
	return nil, fmt.Errorf("unknown ScanJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scanjob.FieldScanType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanType(v)
		return nil
	case scanjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scanjob.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineCount(v)
		return nil
	case scanjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case scanjob.FieldExtractedJSON:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case scanjob.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case scanjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scanjob.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanJobMutation) AddedFields() []string {
	var fields []string
	if m.addline_count != nil {
		fields = append(fields, scanjob.FieldLineCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldLineCount:
		return m.AddedLineCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldLineCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanjob.FieldFinishedAt) {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.FieldCleared(scanjob.FieldOcrText) {
		fields = append(fields, scanjob.FieldOcrText)
	}
	if m.FieldCleared(scanjob.FieldExtractedJSON) {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	if m.FieldCleared(scanjob.FieldImageURL) {
		fields = append(fields, scanjob.FieldImageURL)
	}
	if m.FieldCleared(scanjob.FieldErrorMessage) {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanJobMutation) ClearField(name string) error {
	switch name {
	case scanjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scanjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case scanjob.FieldImageURL:
		m.ClearImageURL()
		return nil
	case scanjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScanJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanJobMutation) ResetField(name string) error {
	switch name {
	case scanjob.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scanjob.FieldScanType:
		m.ResetScanType()
		return nil
	case scanjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scanjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scanjob.FieldLineCount:
		m.ResetLineCount()
		return nil
	case scanjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case scanjob.FieldImageURL:
		m.ResetImageURL()
		return nil
	case scanjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scanjob.FieldActor:
		m.ResetActor()
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScanJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScanJob edge %s", name)
}

// VialMutation represents an operation that mutates the Vial nodes in the graph.
type VialMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	radiopharmaceutical         *string
	rx_number                   *int
	addrx_number                *int
	patient_id                  *string
	actual_amount               *string
	calibration_date            *string
	lot_number                  *string
	entered_by                  *string
	entered_date_time           *time.Time
	ordered_amount              *string
	manufacturer                *string
	volume                      *string
	radioactivity_concentration *string
	label_image_url             *string
	coa_image_url               *string
	vial_image_url              *string
	new_label_image_url         *string
	new_vial_image_url          *string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	dose_details                map[uuid.UUID]struct{}
	removeddose_details         map[uuid.UUID]struct{}
	cleareddose_details         bool
	done                        bool
	oldValue                    func(context.Context) (*Vial, error)
	predicates                  []predicate.Vial
}

var _ ent.Mutation = (*VialMutation)(nil)

// vialOption allows management of the mutation configuration using functional options.
type vialOption func(*VialMutation)

// newVialMutation creates new mutation for the Vial entity.
func newVialMutation(c config, op Op, opts ...vialOption) *VialMutation {
	m := &VialMutation{
		config:        c,
		op:            op,
		typ:           TypeVial,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVialID sets the ID field of the mutation.
func withVialID(id uuid.UUID) vialOption {
	return func(m *VialMutation) {
		var (
			err   error
			once  sync.Once
			value *Vial
		)
		m.oldValue = func(ctx context.Context) (*Vial, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vial.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVial sets the old Vial of the mutation.
func withVial(node *Vial) vialOption {
	return func(m *VialMutation) {
		m.oldValue = func(context.Context) (*Vial, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vial entities.
func (m *VialMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VialMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VialMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vial.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRadiopharmaceutical sets the "radiopharmaceutical" field.
func (m *VialMutation) SetRadiopharmaceutical(s string) {
	m.radiopharmaceutical = &s
}

// Radiopharmaceutical returns the value of the "radiopharmaceutical" field in the mutation.
func (m *VialMutation) Radiopharmaceutical() (r string, exists bool) {
	v := m.radiopharmaceutical
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiopharmaceutical returns the old "radiopharmaceutical" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldRadiopharmaceutical(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiopharmaceutical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiopharmaceutical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiopharmaceutical: %w", err)
	}
	return oldValue.Radiopharmaceutical, nil
}

// ResetRadiopharmaceutical resets all changes to the "radiopharmaceutical" field.
func (m *VialMutation) ResetRadiopharmaceutical() {
	m.radiopharmaceutical = nil
}

// SetRxNumber sets the "rx_number" field.
func (m *VialMutation) SetRxNumber(i int) {
	m.rx_number = &i
	m.addrx_number = nil
}

// RxNumber returns the value of the "rx_number" field in the mutation.
func (m *VialMutation) RxNumber() (r int, exists bool) {
	v := m.rx_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRxNumber returns the old "rx_number" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldRxNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRxNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRxNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRxNumber: %w", err)
	}
	return oldValue.RxNumber, nil
}

// AddRxNumber adds i to the "rx_number" field.
func (m *VialMutation) AddRxNumber(i int) {
	if m.addrx_number != nil {
		*m.addrx_number += i
	} else {
		m.addrx_number = &i
	}
}

// AddedRxNumber returns the value that was added to the "rx_number" field in this mutation.
func (m *VialMutation) AddedRxNumber() (r int, exists bool) {
	v := m.addrx_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRxNumber resets all changes to the "rx_number" field.
func (m *VialMutation) ResetRxNumber() {
	m.rx_number = nil
	m.addrx_number = nil
}

// SetPatientID sets the "patient_id" field.
func (m *VialMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *VialMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *VialMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetActualAmount sets the "actual_amount" field.
func (m *VialMutation) SetActualAmount(s string) {
	m.actual_amount = &s
}

// ActualAmount returns the value of the "actual_amount" field in the mutation.
func (m *VialMutation) ActualAmount() (r string, exists bool) {
	v := m.actual_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldActualAmount returns the old "actual_amount" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldActualAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualAmount: %w", err)
	}
	return oldValue.ActualAmount, nil
}

// ClearActualAmount clears the value of the "actual_amount" field.
func (m *VialMutation) ClearActualAmount() {
	m.actual_amount = nil
	m.clearedFields[vial.FieldActualAmount] = struct{}{}
}

// ActualAmountCleared returns if the "actual_amount" field was cleared in this mutation.
func (m *VialMutation) ActualAmountCleared() bool {
	_, ok := m.clearedFields[vial.FieldActualAmount]
	return ok
}

// ResetActualAmount resets all changes to the "actual_amount" field.
func (m *VialMutation) ResetActualAmount() {
	m.actual_amount = nil
	delete(m.clearedFields, vial.FieldActualAmount)
}

// SetCalibrationDate sets the "calibration_date" field.
func (m *VialMutation) SetCalibrationDate(s string) {
	m.calibration_date = &s
}

// CalibrationDate returns the value of the "calibration_date" field in the mutation.
func (m *VialMutation) CalibrationDate() (r string, exists bool) {
	v := m.calibration_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCalibrationDate returns the old "calibration_date" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldCalibrationDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalibrationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalibrationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalibrationDate: %w", err)
	}
	return oldValue.CalibrationDate, nil
}

// ClearCalibrationDate clears the value of the "calibration_date" field.
func (m *VialMutation) ClearCalibrationDate() {
	m.calibration_date = nil
	m.clearedFields[vial.FieldCalibrationDate] = struct{}{}
}

// CalibrationDateCleared returns if the "calibration_date" field was cleared in this mutation.
func (m *VialMutation) CalibrationDateCleared() bool {
	_, ok := m.clearedFields[vial.FieldCalibrationDate]
	return ok
}

// ResetCalibrationDate resets all changes to the "calibration_date" field.
func (m *VialMutation) ResetCalibrationDate() {
	m.calibration_date = nil
	delete(m.clearedFields, vial.FieldCalibrationDate)
}

// SetLotNumber sets the "lot_number" field.
func (m *VialMutation) SetLotNumber(s string) {
	m.lot_number = &s
}

// LotNumber returns the value of the "lot_number" field in the mutation.
func (m *VialMutation) LotNumber() (r string, exists bool) {
	v := m.lot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLotNumber returns the old "lot_number" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldLotNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotNumber: %w", err)
	}
	return oldValue.LotNumber, nil
}

// ClearLotNumber clears the value of the "lot_number" field.
func (m *VialMutation) ClearLotNumber() {
	m.lot_number = nil
	m.clearedFields[vial.FieldLotNumber] = struct{}{}
}

// LotNumberCleared returns if the "lot_number" field was cleared in this mutation.
func (m *VialMutation) LotNumberCleared() bool {
	_, ok := m.clearedFields[vial.FieldLotNumber]
	return ok
}

// ResetLotNumber resets all changes to the "lot_number" field.
func (m *VialMutation) ResetLotNumber() {
	m.lot_number = nil
	delete(m.clearedFields, vial.FieldLotNumber)
}

// SetEnteredBy sets the "entered_by" field.
func (m *VialMutation) SetEnteredBy(s string) {
	m.entered_by = &s
}

// EnteredBy returns the value of the "entered_by" field in the mutation.
func (m *VialMutation) EnteredBy() (r string, exists bool) {
	v := m.entered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredBy returns the old "entered_by" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldEnteredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredBy: %w", err)
	}
	return oldValue.EnteredBy, nil
}

// ResetEnteredBy resets all changes to the "entered_by" field.
func (m *VialMutation) ResetEnteredBy() {
	m.entered_by = nil
}

// SetEnteredDateTime sets the "entered_date_time" field.
func (m *VialMutation) SetEnteredDateTime(t time.Time) {
	m.entered_date_time = &t
}

// EnteredDateTime returns the value of the "entered_date_time" field in the mutation.
func (m *VialMutation) EnteredDateTime() (r time.Time, exists bool) {
	v := m.entered_date_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredDateTime returns the old "entered_date_time" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldEnteredDateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredDateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredDateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredDateTime: %w", err)
	}
	return oldValue.EnteredDateTime, nil
}

// ResetEnteredDateTime resets all changes to the "entered_date_time" field.
func (m *VialMutation) ResetEnteredDateTime() {
	m.entered_date_time = nil
}

// SetOrderedAmount sets the "ordered_amount" field.
func (m *VialMutation) SetOrderedAmount(s string) {
	m.ordered_amount = &s
}

// OrderedAmount returns the value of the "ordered_amount" field in the mutation.
func (m *VialMutation) OrderedAmount() (r string, exists bool) {
	v := m.ordered_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderedAmount returns the old "ordered_amount" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldOrderedAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderedAmount: %w", err)
	}
	return oldValue.OrderedAmount, nil
}

// ClearOrderedAmount clears the value of the "ordered_amount" field.
func (m *VialMutation) ClearOrderedAmount() {
	m.ordered_amount = nil
	m.clearedFields[vial.FieldOrderedAmount] = struct{}{}
}

// OrderedAmountCleared returns if the "ordered_amount" field was cleared in this mutation.
func (m *VialMutation) OrderedAmountCleared() bool {
	_, ok := m.clearedFields[vial.FieldOrderedAmount]
	return ok
}

// ResetOrderedAmount resets all changes to the "ordered_amount" field.
func (m *VialMutation) ResetOrderedAmount() {
	m.ordered_amount = nil
	delete(m.clearedFields, vial.FieldOrderedAmount)
}

// SetManufacturer sets the "manufacturer" field.
func (m *VialMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *VialMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldManufacturer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *VialMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[vial.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *VialMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[vial.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *VialMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, vial.FieldManufacturer)
}

// SetVolume sets the "volume" field.
func (m *VialMutation) SetVolume(s string) {
	m.volume = &s
}

// Volume returns the value of the "volume" field in the mutation.
func (m *VialMutation) Volume() (r string, exists bool) {
	v := m.volume
	if v == nil {
		return
	}
	return *v, true
}

// OldVolume returns the old "volume" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldVolume(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolume: %w", err)
	}
	return oldValue.Volume, nil
}

// ClearVolume clears the value of the "volume" field.
func (m *VialMutation) ClearVolume() {
	m.volume = nil
	m.clearedFields[vial.FieldVolume] = struct{}{}
}

// VolumeCleared returns if the "volume" field was cleared in this mutation.
func (m *VialMutation) VolumeCleared() bool {
	_, ok := m.clearedFields[vial.FieldVolume]
	return ok
}

// ResetVolume resets all changes to the "volume" field.
func (m *VialMutation) ResetVolume() {
	m.volume = nil
	delete(m.clearedFields, vial.FieldVolume)
}

// SetRadioactivityConcentration sets the "radioactivity_concentration" field.
func (m *VialMutation) SetRadioactivityConcentration(s string) {
	m.radioactivity_concentration = &s
}

// RadioactivityConcentration returns the value of the "radioactivity_concentration" field in the mutation.
func (m *VialMutation) RadioactivityConcentration() (r string, exists bool) {
	v := m.radioactivity_concentration
	if v == nil {
		return
	}
	return *v, true
}

// OldRadioactivityConcentration returns the old "radioactivity_concentration" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldRadioactivityConcentration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadioactivityConcentration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadioactivityConcentration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadioactivityConcentration: %w", err)
	}
	return oldValue.RadioactivityConcentration, nil
}

// ClearRadioactivityConcentration clears the value of the "radioactivity_concentration" field.
func (m *VialMutation) ClearRadioactivityConcentration() {
	m.radioactivity_concentration = nil
	m.clearedFields[vial.FieldRadioactivityConcentration] = struct{}{}
}

// RadioactivityConcentrationCleared returns if the "radioactivity_concentration" field was cleared in this mutation.
func (m *VialMutation) RadioactivityConcentrationCleared() bool {
	_, ok := m.clearedFields[vial.FieldRadioactivityConcentration]
	return ok
}

// ResetRadioactivityConcentration resets all changes to the "radioactivity_concentration" field.
func (m *VialMutation) ResetRadioactivityConcentration() {
	m.radioactivity_concentration = nil
	delete(m.clearedFields, vial.FieldRadioactivityConcentration)
}

// SetLabelImageURL sets the "label_image_url" field.
func (m *VialMutation) SetLabelImageURL(s string) {
	m.label_image_url = &s
}

// LabelImageURL returns the value of the "label_image_url" field in the mutation.
func (m *VialMutation) LabelImageURL() (r string, exists bool) {
	v := m.label_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelImageURL returns the old "label_image_url" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldLabelImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelImageURL: %w", err)
	}
	return oldValue.LabelImageURL, nil
}

// ClearLabelImageURL clears the value of the "label_image_url" field.
func (m *VialMutation) ClearLabelImageURL() {
	m.label_image_url = nil
	m.clearedFields[vial.FieldLabelImageURL] = struct{}{}
}

// LabelImageURLCleared returns if the "label_image_url" field was cleared in this mutation.
func (m *VialMutation) LabelImageURLCleared() bool {
	_, ok := m.clearedFields[vial.FieldLabelImageURL]
	return ok
}

// ResetLabelImageURL resets all changes to the "label_image_url" field.
func (m *VialMutation) ResetLabelImageURL() {
	m.label_image_url = nil
	delete(m.clearedFields, vial.FieldLabelImageURL)
}

// SetCoaImageURL sets the "coa_image_url" field.
func (m *VialMutation) SetCoaImageURL(s string) {
	m.coa_image_url = &s
}

// CoaImageURL returns the value of the "coa_image_url" field in the mutation.
func (m *VialMutation) CoaImageURL() (r string, exists bool) {
	v := m.coa_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoaImageURL returns the old "coa_image_url" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldCoaImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoaImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoaImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoaImageURL: %w", err)
	}
	return oldValue.CoaImageURL, nil
}

// ClearCoaImageURL clears the value of the "coa_image_url" field.
func (m *VialMutation) ClearCoaImageURL() {
	m.coa_image_url = nil
	m.clearedFields[vial.FieldCoaImageURL] = struct{}{}
}

// CoaImageURLCleared returns if the "coa_image_url" field was cleared in this mutation.
func (m *VialMutation) CoaImageURLCleared() bool {
	_, ok := m.clearedFields[vial.FieldCoaImageURL]
	return ok
}

// ResetCoaImageURL resets all changes to the "coa_image_url" field.
func (m *VialMutation) ResetCoaImageURL() {
	m.coa_image_url = nil
	delete(m.clearedFields, vial.FieldCoaImageURL)
}

// SetVialImageURL sets the "vial_image_url" field.
func (m *VialMutation) SetVialImageURL(s string) {
	m.vial_image_url = &s
}

// VialImageURL returns the value of the "vial_image_url" field in the mutation.
func (m *VialMutation) VialImageURL() (r string, exists bool) {
	v := m.vial_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVialImageURL returns the old "vial_image_url" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldVialImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVialImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVialImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVialImageURL: %w", err)
	}
	return oldValue.VialImageURL, nil
}

// ClearVialImageURL clears the value of the "vial_image_url" field.
func (m *VialMutation) ClearVialImageURL() {
	m.vial_image_url = nil
	m.clearedFields[vial.FieldVialImageURL] = struct{}{}
}

// VialImageURLCleared returns if the "vial_image_url" field was cleared in this mutation.
func (m *VialMutation) VialImageURLCleared() bool {
	_, ok := m.clearedFields[vial.FieldVialImageURL]
	return ok
}

// ResetVialImageURL resets all changes to the "vial_image_url" field.
func (m *VialMutation) ResetVialImageURL() {
	m.vial_image_url = nil
	delete(m.clearedFields, vial.FieldVialImageURL)
}

// SetNewLabelImageURL sets the "new_label_image_url" field.
func (m *VialMutation) SetNewLabelImageURL(s string) {
	m.new_label_image_url = &s
}

// NewLabelImageURL returns the value of the "new_label_image_url" field in the mutation.
func (m *VialMutation) NewLabelImageURL() (r string, exists bool) {
	v := m.new_label_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldNewLabelImageURL returns the old "new_label_image_url" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldNewLabelImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewLabelImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewLabelImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewLabelImageURL: %w", err)
	}
	return oldValue.NewLabelImageURL, nil
}

// ClearNewLabelImageURL clears the value of the "new_label_image_url" field.
func (m *VialMutation) ClearNewLabelImageURL() {
	m.new_label_image_url = nil
	m.clearedFields[vial.FieldNewLabelImageURL] = struct{}{}
}

// NewLabelImageURLCleared returns if the "new_label_image_url" field was cleared in this mutation.
func (m *VialMutation) NewLabelImageURLCleared() bool {
	_, ok := m.clearedFields[vial.FieldNewLabelImageURL]
	return ok
}

// ResetNewLabelImageURL resets all changes to the "new_label_image_url" field.
func (m *VialMutation) ResetNewLabelImageURL() {
	m.new_label_image_url = nil
	delete(m.clearedFields, vial.FieldNewLabelImageURL)
}

// SetNewVialImageURL sets the "new_vial_image_url" field.
func (m *VialMutation) SetNewVialImageURL(s string) {
	m.new_vial_image_url = &s
}

// NewVialImageURL returns the value of the "new_vial_image_url" field in the mutation.
func (m *VialMutation) NewVialImageURL() (r string, exists bool) {
	v := m.new_vial_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldNewVialImageURL returns the old "new_vial_image_url" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldNewVialImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewVialImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewVialImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewVialImageURL: %w", err)
	}
	return oldValue.NewVialImageURL, nil
}

// ClearNewVialImageURL clears the value of the "new_vial_image_url" field.
func (m *VialMutation) ClearNewVialImageURL() {
	m.new_vial_image_url = nil
	m.clearedFields[vial.FieldNewVialImageURL] = struct{}{}
}

// NewVialImageURLCleared returns if the "new_vial_image_url" field was cleared in this mutation.
func (m *VialMutation) NewVialImageURLCleared() bool {
	_, ok := m.clearedFields[vial.FieldNewVialImageURL]
	return ok
}

// ResetNewVialImageURL resets all changes to the "new_vial_image_url" field.
func (m *VialMutation) ResetNewVialImageURL() {
	m.new_vial_image_url = nil
	delete(m.clearedFields, vial.FieldNewVialImageURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *VialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vial entity.
// If the Vial object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDoseDetailIDs adds the "dose_details" edge to the DoseDetail entity by ids.
func (m *VialMutation) AddDoseDetailIDs(ids ...uuid.UUID) {
	if m.dose_details == nil {
		m.dose_details = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dose_details[ids[i]] = struct{}{}
	}
}

// ClearDoseDetails clears the "dose_details" edge to the DoseDetail entity.
func (m *VialMutation) ClearDoseDetails() {
	m.cleareddose_details = true
}

// DoseDetailsCleared reports if the "dose_details" edge to the DoseDetail entity was cleared.
func (m *VialMutation) DoseDetailsCleared() bool {
	return m.cleareddose_details
}

// RemoveDoseDetailIDs removes the "dose_details" edge to the DoseDetail entity by IDs.
func (m *VialMutation) RemoveDoseDetailIDs(ids ...uuid.UUID) {
	if m.removeddose_details == nil {
		m.removeddose_details = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dose_details, ids[i])
		m.removeddose_details[ids[i]] = struct{}{}
	}
}

// RemovedDoseDetails returns the removed IDs of the "dose_details" edge to the DoseDetail entity.
func (m *VialMutation) RemovedDoseDetailsIDs() (ids []uuid.UUID) {
	for id := range m.removeddose_details {
		ids = append(ids, id)
	}
	return
}

// DoseDetailsIDs returns the "dose_details" edge IDs in the mutation.
func (m *VialMutation) DoseDetailsIDs() (ids []uuid.UUID) {
	for id := range m.dose_details {
		ids = append(ids, id)
	}
	return
}

// ResetDoseDetails resets all changes to the "dose_details" edge.
func (m *VialMutation) ResetDoseDetails() {
	m.dose_details = nil
	m.cleareddose_details = false
	m.removeddose_details = nil
}

// Where appends a list predicates to the VialMutation builder.
func (m *VialMutation) Where(ps ...predicate.Vial) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vial, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vial).
func (m *VialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VialMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.radiopharmaceutical != nil {
		fields = append(fields, vial.FieldRadiopharmaceutical)
	}
	if m.rx_number != nil {
		fields = append(fields, vial.FieldRxNumber)
	}
	if m.patient_id != nil {
		fields = append(fields, vial.FieldPatientID)
	}
	if m.actual_amount != nil {
		fields = append(fields, vial.FieldActualAmount)
	}
	if m.calibration_date != nil {
		fields = append(fields, vial.FieldCalibrationDate)
	}
	if m.lot_number != nil {
		fields = append(fields, vial.FieldLotNumber)
	}
	if m.entered_by != nil {
		fields = append(fields, vial.FieldEnteredBy)
	}
	if m.entered_date_time != nil {
		fields = append(fields, vial.FieldEnteredDateTime)
	}
	if m.ordered_amount != nil {
		fields = append(fields, vial.FieldOrderedAmount)
	}
	if m.manufacturer != nil {
		fields = append(fields, vial.FieldManufacturer)
	}
	if m.volume != nil {
		fields = append(fields, vial.FieldVolume)
	}
	if m.radioactivity_concentration != nil {
		fields = append(fields, vial.FieldRadioactivityConcentration)
	}
	if m.label_image_url != nil {
		fields = append(fields, vial.FieldLabelImageURL)
	}
	if m.coa_image_url != nil {
		fields = append(fields, vial.FieldCoaImageURL)
	}
	if m.vial_image_url != nil {
		fields = append(fields, vial.FieldVialImageURL)
	}
	if m.new_label_image_url != nil {
		fields = append(fields, vial.FieldNewLabelImageURL)
	}
	if m.new_vial_image_url != nil {
		fields = append(fields, vial.FieldNewVialImageURL)
	}
	if m.created_at != nil {
		fields = append(fields, vial.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vial.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vial.FieldRadiopharmaceutical:
		return m.Radiopharmaceutical()
	case vial.FieldRxNumber:
		return m.RxNumber()
	case vial.FieldPatientID:
		return m.PatientID()
	case vial.FieldActualAmount:
		return m.ActualAmount()
	case vial.FieldCalibrationDate:
		return m.CalibrationDate()
	case vial.FieldLotNumber:
		return m.LotNumber()
	case vial.FieldEnteredBy:
		return m.EnteredBy()
	case vial.FieldEnteredDateTime:
		return m.EnteredDateTime()
	case vial.FieldOrderedAmount:
		return m.OrderedAmount()
	case vial.FieldManufacturer:
		return m.Manufacturer()
	case vial.FieldVolume:
		return m.Volume()
	case vial.FieldRadioactivityConcentration:
		return m.RadioactivityConcentration()
	case vial.FieldLabelImageURL:
		return m.LabelImageURL()
	case vial.FieldCoaImageURL:
		return m.CoaImageURL()
	case vial.FieldVialImageURL:
		return m.VialImageURL()
	case vial.FieldNewLabelImageURL:
		return m.NewLabelImageURL()
	case vial.FieldNewVialImageURL:
		return m.NewVialImageURL()
	case vial.FieldCreatedAt:
		return m.CreatedAt()
	case vial.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vial.FieldRadiopharmaceutical:
		return m.OldRadiopharmaceutical(ctx)
	case vial.FieldRxNumber:
		return m.OldRxNumber(ctx)
	case vial.FieldPatientID:
		return m.OldPatientID(ctx)
	case vial.FieldActualAmount:
		return m.OldActualAmount(ctx)
	case vial.FieldCalibrationDate:
		return m.OldCalibrationDate(ctx)
	case vial.FieldLotNumber:
		return m.OldLotNumber(ctx)
	case vial.FieldEnteredBy:
		return m.OldEnteredBy(ctx)
	case vial.FieldEnteredDateTime:
		return m.OldEnteredDateTime(ctx)
	case vial.FieldOrderedAmount:
		return m.OldOrderedAmount(ctx)
	case vial.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case vial.FieldVolume:
		return m.OldVolume(ctx)
	case vial.FieldRadioactivityConcentration:
		return m.OldRadioactivityConcentration(ctx)
	case vial.FieldLabelImageURL:
		return m.OldLabelImageURL(ctx)
	case vial.FieldCoaImageURL:
		return m.OldCoaImageURL(ctx)
	case vial.FieldVialImageURL:
		return m.OldVialImageURL(ctx)
	case vial.FieldNewLabelImageURL:
		return m.OldNewLabelImageURL(ctx)
	case vial.FieldNewVialImageURL:
		return m.OldNewVialImageURL(ctx)
	case vial.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vial.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vial field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vial.FieldRadiopharmaceutical:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiopharmaceutical(v)
		return nil
	case vial.FieldRxNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRxNumber(v)
		return nil
	case vial.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case vial.FieldActualAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualAmount(v)
		return nil
	case vial.FieldCalibrationDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalibrationDate(v)
		return nil
	case vial.FieldLotNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotNumber(v)
		return nil
	case vial.FieldEnteredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredBy(v)
		return nil
	case vial.FieldEnteredDateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredDateTime(v)
		return nil
	case vial.FieldOrderedAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderedAmount(v)
		return nil
	case vial.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case vial.FieldVolume:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolume(v)
		return nil
	case vial.FieldRadioactivityConcentration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadioactivityConcentration(v)
		return nil
	case vial.FieldLabelImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelImageURL(v)
		return nil
	case vial.FieldCoaImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoaImageURL(v)
		return nil
	case vial.FieldVialImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVialImageURL(v)
		return nil
	case vial.FieldNewLabelImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewLabelImageURL(v)
		return nil
	case vial.FieldNewVialImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewVialImageURL(v)
		return nil
	case vial.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vial.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vial field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VialMutation) AddedFields() []string {
	var fields []string
	if m.addrx_number != nil {
		fields = append(fields, vial.FieldRxNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vial.FieldRxNumber:
		return m.AddedRxNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vial.FieldRxNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRxNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Vial numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vial.FieldActualAmount) {
		fields = append(fields, vial.FieldActualAmount)
	}
	if m.FieldCleared(vial.FieldCalibrationDate) {
		fields = append(fields, vial.FieldCalibrationDate)
	}
	if m.FieldCleared(vial.FieldLotNumber) {
		fields = append(fields, vial.FieldLotNumber)
	}
	if m.FieldCleared(vial.FieldOrderedAmount) {
		fields = append(fields, vial.FieldOrderedAmount)
	}
	if m.FieldCleared(vial.FieldManufacturer) {
		fields = append(fields, vial.FieldManufacturer)
	}
	if m.FieldCleared(vial.FieldVolume) {
		fields = append(fields, vial.FieldVolume)
	}
	if m.FieldCleared(vial.FieldRadioactivityConcentration) {
		fields = append(fields, vial.FieldRadioactivityConcentration)
	}
	if m.FieldCleared(vial.FieldLabelImageURL) {
		fields = append(fields, vial.FieldLabelImageURL)
	}
	if m.FieldCleared(vial.FieldCoaImageURL) {
		fields = append(fields, vial.FieldCoaImageURL)
	}
	if m.FieldCleared(vial.FieldVialImageURL) {
		fields = append(fields, vial.FieldVialImageURL)
	}
	if m.FieldCleared(vial.FieldNewLabelImageURL) {
		fields = append(fields, vial.FieldNewLabelImageURL)
	}
	if m.FieldCleared(vial.FieldNewVialImageURL) {
		fields = append(fields, vial.FieldNewVialImageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VialMutation) ClearField(name string) error {
	switch name {
	case vial.FieldActualAmount:
		m.ClearActualAmount()
		return nil
	case vial.FieldCalibrationDate:
		m.ClearCalibrationDate()
		return nil
	case vial.FieldLotNumber:
		m.ClearLotNumber()
		return nil
	case vial.FieldOrderedAmount:
		m.ClearOrderedAmount()
		return nil
	case vial.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case vial.FieldVolume:
		m.ClearVolume()
		return nil
	case vial.FieldRadioactivityConcentration:
		m.ClearRadioactivityConcentration()
		return nil
	case vial.FieldLabelImageURL:
		m.ClearLabelImageURL()
		return nil
	case vial.FieldCoaImageURL:
		m.ClearCoaImageURL()
		return nil
	case vial.FieldVialImageURL:
		m.ClearVialImageURL()
		return nil
	case vial.FieldNewLabelImageURL:
		m.ClearNewLabelImageURL()
		return nil
	case vial.FieldNewVialImageURL:
		m.ClearNewVialImageURL()
		return nil
	}
	return fmt.Errorf("unknown Vial nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VialMutation) ResetField(name string) error {
	switch name {
	case vial.FieldRadiopharmaceutical:
		m.ResetRadiopharmaceutical()
		return nil
	case vial.FieldRxNumber:
		m.ResetRxNumber()
		return nil
	case vial.FieldPatientID:
		m.ResetPatientID()
		return nil
	case vial.FieldActualAmount:
		m.ResetActualAmount()
		return nil
	case vial.FieldCalibrationDate:
		m.ResetCalibrationDate()
		return nil
	case vial.FieldLotNumber:
		m.ResetLotNumber()
		return nil
	case vial.FieldEnteredBy:
		m.ResetEnteredBy()
		return nil
	case vial.FieldEnteredDateTime:
		m.ResetEnteredDateTime()
		return nil
	case vial.FieldOrderedAmount:
		m.ResetOrderedAmount()
		return nil
	case vial.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case vial.FieldVolume:
		m.ResetVolume()
		return nil
	case vial.FieldRadioactivityConcentration:
		m.ResetRadioactivityConcentration()
		return nil
	case vial.FieldLabelImageURL:
		m.ResetLabelImageURL()
		return nil
	case vial.FieldCoaImageURL:
		m.ResetCoaImageURL()
		return nil
	case vial.FieldVialImageURL:
		m.ResetVialImageURL()
		return nil
	case vial.FieldNewLabelImageURL:
		m.ResetNewLabelImageURL()
		return nil
	case vial.FieldNewVialImageURL:
		m.ResetNewVialImageURL()
		return nil
	case vial.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vial.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vial field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VialMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.dose_details != nil {
		edges = append(edges, vial.EdgeDoseDetails)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vial.EdgeDoseDetails:
		ids := make([]ent.Value, 0, len(m.dose_details))
		for id := range m.dose_details {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddose_details != nil {
		edges = append(edges, vial.EdgeDoseDetails)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vial.EdgeDoseDetails:
		ids := make([]ent.Value, 0, len(m.removeddose_details))
		for id := range m.removeddose_details {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddose_details {
		edges = append(edges, vial.EdgeDoseDetails)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VialMutation) EdgeCleared(name string) bool {
	switch name {
	case vial.EdgeDoseDetails:
		return m.cleareddose_details
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VialMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vial unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VialMutation) ResetEdge(name string) error {
	switch name {
	case vial.EdgeDoseDetails:
		m.ResetDoseDetails()
		return nil
	}
	return fmt.Errorf("unknown Vial edge %s", name)
}
