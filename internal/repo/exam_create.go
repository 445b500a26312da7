// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/exam"
)

// ExamCreate is the builder for creating a Exam entity.
type ExamCreate struct {
	config
	mutation *ExamMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamCreate) SetCreatedAt(v time.Time) *ExamCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableCreatedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExamCreate) SetUpdatedAt(v time.Time) *ExamCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExamCreate) SetNillableUpdatedAt(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ExamCreate) SetClientID(v uuid.UUID) *ExamCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetExamTypeID sets the "exam_type_id" field.
func (_c *ExamCreate) SetExamTypeID(v uuid.UUID) *ExamCreate {
	_c.mutation.SetExamTypeID(v)
	return _c
}

// SetRadiologistID sets the "radiologist_id" field.
func (_c *ExamCreate) SetRadiologistID(v uuid.UUID) *ExamCreate {
	_c.mutation.SetRadiologistID(v)
	return _c
}

// SetNillableRadiologistID sets the "radiologist_id" field if the given value is not nil.
func (_c *ExamCreate) SetNillableRadiologistID(v *uuid.UUID) *ExamCreate {
	if v != nil {
		_c.SetRadiologistID(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *ExamCreate) SetPatientName(v string) *ExamCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientBirthDate sets the "patient_birth_date" field.
func (_c *ExamCreate) SetPatientBirthDate(v string) *ExamCreate {
	_c.mutation.SetPatientBirthDate(v)
	return _c
}

// SetNillablePatientBirthDate sets the "patient_birth_date" field if the given value is not nil.
func (_c *ExamCreate) SetNillablePatientBirthDate(v *string) *ExamCreate {
	if v != nil {
		_c.SetPatientBirthDate(*v)
	}
	return _c
}

// SetSoftware sets the "software" field.
func (_c *ExamCreate) SetSoftware(v exam.Software) *ExamCreate {
	_c.mutation.SetSoftware(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExamCreate) SetStatus(v exam.Status) *ExamCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExamCreate) SetNillableStatus(v *exam.Status) *ExamCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUrgent sets the "urgent" field.
func (_c *ExamCreate) SetUrgent(v bool) *ExamCreate {
	_c.mutation.SetUrgent(v)
	return _c
}

// SetNillableUrgent sets the "urgent" field if the given value is not nil.
func (_c *ExamCreate) SetNillableUrgent(v *bool) *ExamCreate {
	if v != nil {
		_c.SetUrgent(*v)
	}
	return _c
}

// SetUrgentDue sets the "urgent_due" field.
func (_c *ExamCreate) SetUrgentDue(v time.Time) *ExamCreate {
	_c.mutation.SetUrgentDue(v)
	return _c
}

// SetNillableUrgentDue sets the "urgent_due" field if the given value is not nil.
func (_c *ExamCreate) SetNillableUrgentDue(v *time.Time) *ExamCreate {
	if v != nil {
		_c.SetUrgentDue(*v)
	}
	return _c
}

// SetObservations sets the "observations" field.
func (_c *ExamCreate) SetObservations(v string) *ExamCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *ExamCreate) SetNillableObservations(v *string) *ExamCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetDentistName sets the "dentist_name" field.
func (_c *ExamCreate) SetDentistName(v string) *ExamCreate {
	_c.mutation.SetDentistName(v)
	return _c
}

// SetNillableDentistName sets the "dentist_name" field if the given value is not nil.
func (_c *ExamCreate) SetNillableDentistName(v *string) *ExamCreate {
	if v != nil {
		_c.SetDentistName(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *ExamCreate) SetPurpose(v string) *ExamCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *ExamCreate) SetNillablePurpose(v *string) *ExamCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetExamDate sets the "exam_date" field.
func (_c *ExamCreate) SetExamDate(v string) *ExamCreate {
	_c.mutation.SetExamDate(v)
	return _c
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_c *ExamCreate) SetNillableExamDate(v *string) *ExamCreate {
	if v != nil {
		_c.SetExamDate(*v)
	}
	return _c
}

// SetSourceFileKey sets the "source_file_key" field.
func (_c *ExamCreate) SetSourceFileKey(v string) *ExamCreate {
	_c.mutation.SetSourceFileKey(v)
	return _c
}

// SetNillableSourceFileKey sets the "source_file_key" field if the given value is not nil.
func (_c *ExamCreate) SetNillableSourceFileKey(v *string) *ExamCreate {
	if v != nil {
		_c.SetSourceFileKey(*v)
	}
	return _c
}

// SetReportFileKey sets the "report_file_key" field.
func (_c *ExamCreate) SetReportFileKey(v string) *ExamCreate {
	_c.mutation.SetReportFileKey(v)
	return _c
}

// SetNillableReportFileKey sets the "report_file_key" field if the given value is not nil.
func (_c *ExamCreate) SetNillableReportFileKey(v *string) *ExamCreate {
	if v != nil {
		_c.SetReportFileKey(*v)
	}
	return _c
}

// SetClientValue sets the "client_value" field.
func (_c *ExamCreate) SetClientValue(v int64) *ExamCreate {
	_c.mutation.SetClientValue(v)
	return _c
}

// SetNillableClientValue sets the "client_value" field if the given value is not nil.
func (_c *ExamCreate) SetNillableClientValue(v *int64) *ExamCreate {
	if v != nil {
		_c.SetClientValue(*v)
	}
	return _c
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_c *ExamCreate) SetRadiologistValue(v int64) *ExamCreate {
	_c.mutation.SetRadiologistValue(v)
	return _c
}

// SetNillableRadiologistValue sets the "radiologist_value" field if the given value is not nil.
func (_c *ExamCreate) SetNillableRadiologistValue(v *int64) *ExamCreate {
	if v != nil {
		_c.SetRadiologistValue(*v)
	}
	return _c
}

// SetMargin sets the "margin" field.
func (_c *ExamCreate) SetMargin(v int64) *ExamCreate {
	_c.mutation.SetMargin(v)
	return _c
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (_c *ExamCreate) SetNillableMargin(v *int64) *ExamCreate {
	if v != nil {
		_c.SetMargin(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExamCreate) SetID(v uuid.UUID) *ExamCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExamCreate) SetNillableID(v *uuid.UUID) *ExamCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExamMutation object of the builder.
func (_c *ExamCreate) Mutation() *ExamMutation {
	return _c.mutation
}

// Save creates the Exam in the database.
func (_c *ExamCreate) Save(ctx context.Context) (*Exam, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamCreate) SaveX(ctx context.Context) *Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exam.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := exam.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := exam.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Urgent(); !ok {
		v := exam.DefaultUrgent
		_c.mutation.SetUrgent(v)
	}
	if _, ok := _c.mutation.ClientValue(); !ok {
		v := exam.DefaultClientValue
		_c.mutation.SetClientValue(v)
	}
	if _, ok := _c.mutation.RadiologistValue(); !ok {
		v := exam.DefaultRadiologistValue
		_c.mutation.SetRadiologistValue(v)
	}
	if _, ok := _c.mutation.Margin(); !ok {
		v := exam.DefaultMargin
		_c.mutation.SetMargin(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := exam.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Exam.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Exam.updated_at"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "Exam.client_id"`)}
	}
	if _, ok := _c.mutation.ExamTypeID(); !ok {
		return &ValidationError{Name: "exam_type_id", err: errors.New(`repo: missing required field "Exam.exam_type_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Exam.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := exam.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PatientBirthDate(); ok {
		if err := exam.PatientBirthDateValidator(v); err != nil {
			return &ValidationError{Name: "patient_birth_date", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_birth_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Software(); !ok {
		return &ValidationError{Name: "software", err: errors.New(`repo: missing required field "Exam.software"`)}
	}
	if v, ok := _c.mutation.Software(); ok {
		if err := exam.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`repo: validator failed for field "Exam.software": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Exam.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Exam.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgent(); !ok {
		return &ValidationError{Name: "urgent", err: errors.New(`repo: missing required field "Exam.urgent"`)}
	}
	if v, ok := _c.mutation.DentistName(); ok {
		if err := exam.DentistNameValidator(v); err != nil {
			return &ValidationError{Name: "dentist_name", err: fmt.Errorf(`repo: validator failed for field "Exam.dentist_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := exam.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`repo: validator failed for field "Exam.purpose": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExamDate(); ok {
		if err := exam.ExamDateValidator(v); err != nil {
			return &ValidationError{Name: "exam_date", err: fmt.Errorf(`repo: validator failed for field "Exam.exam_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceFileKey(); ok {
		if err := exam.SourceFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.source_file_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReportFileKey(); ok {
		if err := exam.ReportFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.report_file_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientValue(); !ok {
		return &ValidationError{Name: "client_value", err: errors.New(`repo: missing required field "Exam.client_value"`)}
	}
	if _, ok := _c.mutation.RadiologistValue(); !ok {
		return &ValidationError{Name: "radiologist_value", err: errors.New(`repo: missing required field "Exam.radiologist_value"`)}
	}
	if _, ok := _c.mutation.Margin(); !ok {
		return &ValidationError{Name: "margin", err: errors.New(`repo: missing required field "Exam.margin"`)}
	}
	return nil
}

func (_c *ExamCreate) sqlSave(ctx context.Context) (*Exam, error) {
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

func (_c *ExamCreate) createSpec() (*Exam, *sqlgraph.CreateSpec) {
	var (
		_node = &Exam{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exam.Table, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exam.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(exam.FieldClientID, field.TypeUUID, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.ExamTypeID(); ok {
		_spec.SetField(exam.FieldExamTypeID, field.TypeUUID, value)
		_node.ExamTypeID = value
	}
	if value, ok := _c.mutation.RadiologistID(); ok {
		_spec.SetField(exam.FieldRadiologistID, field.TypeUUID, value)
		_node.RadiologistID = &value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(exam.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientBirthDate(); ok {
		_spec.SetField(exam.FieldPatientBirthDate, field.TypeString, value)
		_node.PatientBirthDate = &value
	}
	if value, ok := _c.mutation.Software(); ok {
		_spec.SetField(exam.FieldSoftware, field.TypeEnum, value)
		_node.Software = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Urgent(); ok {
		_spec.SetField(exam.FieldUrgent, field.TypeBool, value)
		_node.Urgent = value
	}
	if value, ok := _c.mutation.UrgentDue(); ok {
		_spec.SetField(exam.FieldUrgentDue, field.TypeTime, value)
		_node.UrgentDue = &value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(exam.FieldObservations, field.TypeString, value)
		_node.Observations = &value
	}
	if value, ok := _c.mutation.DentistName(); ok {
		_spec.SetField(exam.FieldDentistName, field.TypeString, value)
		_node.DentistName = &value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(exam.FieldPurpose, field.TypeString, value)
		_node.Purpose = &value
	}
	if value, ok := _c.mutation.ExamDate(); ok {
		_spec.SetField(exam.FieldExamDate, field.TypeString, value)
		_node.ExamDate = &value
	}
	if value, ok := _c.mutation.SourceFileKey(); ok {
		_spec.SetField(exam.FieldSourceFileKey, field.TypeString, value)
		_node.SourceFileKey = &value
	}
	if value, ok := _c.mutation.ReportFileKey(); ok {
		_spec.SetField(exam.FieldReportFileKey, field.TypeString, value)
		_node.ReportFileKey = &value
	}
	if value, ok := _c.mutation.ClientValue(); ok {
		_spec.SetField(exam.FieldClientValue, field.TypeInt64, value)
		_node.ClientValue = value
	}
	if value, ok := _c.mutation.RadiologistValue(); ok {
		_spec.SetField(exam.FieldRadiologistValue, field.TypeInt64, value)
		_node.RadiologistValue = value
	}
	if value, ok := _c.mutation.Margin(); ok {
		_spec.SetField(exam.FieldMargin, field.TypeInt64, value)
		_node.Margin = value
	}
	return _node, _spec
}

// ExamCreateBulk is the builder for creating many Exam entities in bulk.
type ExamCreateBulk struct {
	config
	err      error
	builders []*ExamCreate
}

// Save creates the Exam entities in the database.
func (_c *ExamCreateBulk) Save(ctx context.Context) ([]*Exam, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Exam, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamMutation)
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
func (_c *ExamCreateBulk) SaveX(ctx context.Context) []*Exam {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
