// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/exam"
	"github.com/raydent/raydent_backend/internal/repo/predicate"
)

// ExamUpdate is the builder for updating Exam entities.
type ExamUpdate struct {
	config
	hooks    []Hook
	mutation *ExamMutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdate) Where(ps ...predicate.Exam) *ExamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExamUpdate) SetUpdatedAt(v time.Time) *ExamUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ExamUpdate) SetClientID(v uuid.UUID) *ExamUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableClientID(v *uuid.UUID) *ExamUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *ExamUpdate) SetExamTypeID(v uuid.UUID) *ExamUpdate {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableExamTypeID(v *uuid.UUID) *ExamUpdate {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetRadiologistID sets the "radiologist_id" field.
func (_u *ExamUpdate) SetRadiologistID(v uuid.UUID) *ExamUpdate {
	_u.mutation.SetRadiologistID(v)
	return _u
}

// SetNillableRadiologistID sets the "radiologist_id" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableRadiologistID(v *uuid.UUID) *ExamUpdate {
	if v != nil {
		_u.SetRadiologistID(*v)
	}
	return _u
}

// ClearRadiologistID clears the value of the "radiologist_id" field.
func (_u *ExamUpdate) ClearRadiologistID() *ExamUpdate {
	_u.mutation.ClearRadiologistID()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ExamUpdate) SetPatientName(v string) *ExamUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePatientName(v *string) *ExamUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientBirthDate sets the "patient_birth_date" field.
func (_u *ExamUpdate) SetPatientBirthDate(v string) *ExamUpdate {
	_u.mutation.SetPatientBirthDate(v)
	return _u
}

// SetNillablePatientBirthDate sets the "patient_birth_date" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePatientBirthDate(v *string) *ExamUpdate {
	if v != nil {
		_u.SetPatientBirthDate(*v)
	}
	return _u
}

// ClearPatientBirthDate clears the value of the "patient_birth_date" field.
func (_u *ExamUpdate) ClearPatientBirthDate() *ExamUpdate {
	_u.mutation.ClearPatientBirthDate()
	return _u
}

// SetSoftware sets the "software" field.
func (_u *ExamUpdate) SetSoftware(v exam.Software) *ExamUpdate {
	_u.mutation.SetSoftware(v)
	return _u
}

// SetNillableSoftware sets the "software" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableSoftware(v *exam.Software) *ExamUpdate {
	if v != nil {
		_u.SetSoftware(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamUpdate) SetStatus(v exam.Status) *ExamUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableStatus(v *exam.Status) *ExamUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUrgent sets the "urgent" field.
func (_u *ExamUpdate) SetUrgent(v bool) *ExamUpdate {
	_u.mutation.SetUrgent(v)
	return _u
}

// SetNillableUrgent sets the "urgent" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableUrgent(v *bool) *ExamUpdate {
	if v != nil {
		_u.SetUrgent(*v)
	}
	return _u
}

// SetUrgentDue sets the "urgent_due" field.
func (_u *ExamUpdate) SetUrgentDue(v time.Time) *ExamUpdate {
	_u.mutation.SetUrgentDue(v)
	return _u
}

// SetNillableUrgentDue sets the "urgent_due" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableUrgentDue(v *time.Time) *ExamUpdate {
	if v != nil {
		_u.SetUrgentDue(*v)
	}
	return _u
}

// ClearUrgentDue clears the value of the "urgent_due" field.
func (_u *ExamUpdate) ClearUrgentDue() *ExamUpdate {
	_u.mutation.ClearUrgentDue()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ExamUpdate) SetObservations(v string) *ExamUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableObservations(v *string) *ExamUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *ExamUpdate) ClearObservations() *ExamUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// SetDentistName sets the "dentist_name" field.
func (_u *ExamUpdate) SetDentistName(v string) *ExamUpdate {
	_u.mutation.SetDentistName(v)
	return _u
}

// SetNillableDentistName sets the "dentist_name" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableDentistName(v *string) *ExamUpdate {
	if v != nil {
		_u.SetDentistName(*v)
	}
	return _u
}

// ClearDentistName clears the value of the "dentist_name" field.
func (_u *ExamUpdate) ClearDentistName() *ExamUpdate {
	_u.mutation.ClearDentistName()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *ExamUpdate) SetPurpose(v string) *ExamUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *ExamUpdate) SetNillablePurpose(v *string) *ExamUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// ClearPurpose clears the value of the "purpose" field.
func (_u *ExamUpdate) ClearPurpose() *ExamUpdate {
	_u.mutation.ClearPurpose()
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *ExamUpdate) SetExamDate(v string) *ExamUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableExamDate(v *string) *ExamUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *ExamUpdate) ClearExamDate() *ExamUpdate {
	_u.mutation.ClearExamDate()
	return _u
}

// SetSourceFileKey sets the "source_file_key" field.
func (_u *ExamUpdate) SetSourceFileKey(v string) *ExamUpdate {
	_u.mutation.SetSourceFileKey(v)
	return _u
}

// SetNillableSourceFileKey sets the "source_file_key" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableSourceFileKey(v *string) *ExamUpdate {
	if v != nil {
		_u.SetSourceFileKey(*v)
	}
	return _u
}

// ClearSourceFileKey clears the value of the "source_file_key" field.
func (_u *ExamUpdate) ClearSourceFileKey() *ExamUpdate {
	_u.mutation.ClearSourceFileKey()
	return _u
}

// SetReportFileKey sets the "report_file_key" field.
func (_u *ExamUpdate) SetReportFileKey(v string) *ExamUpdate {
	_u.mutation.SetReportFileKey(v)
	return _u
}

// SetNillableReportFileKey sets the "report_file_key" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableReportFileKey(v *string) *ExamUpdate {
	if v != nil {
		_u.SetReportFileKey(*v)
	}
	return _u
}

// ClearReportFileKey clears the value of the "report_file_key" field.
func (_u *ExamUpdate) ClearReportFileKey() *ExamUpdate {
	_u.mutation.ClearReportFileKey()
	return _u
}

// SetClientValue sets the "client_value" field.
func (_u *ExamUpdate) SetClientValue(v int64) *ExamUpdate {
	_u.mutation.ResetClientValue()
	_u.mutation.SetClientValue(v)
	return _u
}

// SetNillableClientValue sets the "client_value" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableClientValue(v *int64) *ExamUpdate {
	if v != nil {
		_u.SetClientValue(*v)
	}
	return _u
}

// AddClientValue adds value to the "client_value" field.
func (_u *ExamUpdate) AddClientValue(v int64) *ExamUpdate {
	_u.mutation.AddClientValue(v)
	return _u
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_u *ExamUpdate) SetRadiologistValue(v int64) *ExamUpdate {
	_u.mutation.ResetRadiologistValue()
	_u.mutation.SetRadiologistValue(v)
	return _u
}

// SetNillableRadiologistValue sets the "radiologist_value" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableRadiologistValue(v *int64) *ExamUpdate {
	if v != nil {
		_u.SetRadiologistValue(*v)
	}
	return _u
}

// AddRadiologistValue adds value to the "radiologist_value" field.
func (_u *ExamUpdate) AddRadiologistValue(v int64) *ExamUpdate {
	_u.mutation.AddRadiologistValue(v)
	return _u
}

// SetMargin sets the "margin" field.
func (_u *ExamUpdate) SetMargin(v int64) *ExamUpdate {
	_u.mutation.ResetMargin()
	_u.mutation.SetMargin(v)
	return _u
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableMargin(v *int64) *ExamUpdate {
	if v != nil {
		_u.SetMargin(*v)
	}
	return _u
}

// AddMargin adds value to the "margin" field.
func (_u *ExamUpdate) AddMargin(v int64) *ExamUpdate {
	_u.mutation.AddMargin(v)
	return _u
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdate) Mutation() *ExamMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exam.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := exam.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientBirthDate(); ok {
		if err := exam.PatientBirthDateValidator(v); err != nil {
			return &ValidationError{Name: "patient_birth_date", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_birth_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Software(); ok {
		if err := exam.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`repo: validator failed for field "Exam.software": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Exam.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DentistName(); ok {
		if err := exam.DentistNameValidator(v); err != nil {
			return &ValidationError{Name: "dentist_name", err: fmt.Errorf(`repo: validator failed for field "Exam.dentist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := exam.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`repo: validator failed for field "Exam.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamDate(); ok {
		if err := exam.ExamDateValidator(v); err != nil {
			return &ValidationError{Name: "exam_date", err: fmt.Errorf(`repo: validator failed for field "Exam.exam_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFileKey(); ok {
		if err := exam.SourceFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.source_file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportFileKey(); ok {
		if err := exam.ReportFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.report_file_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(exam.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(exam.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistID(); ok {
		_spec.SetField(exam.FieldRadiologistID, field.TypeUUID, value)
	}
	if _u.mutation.RadiologistIDCleared() {
		_spec.ClearField(exam.FieldRadiologistID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(exam.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientBirthDate(); ok {
		_spec.SetField(exam.FieldPatientBirthDate, field.TypeString, value)
	}
	if _u.mutation.PatientBirthDateCleared() {
		_spec.ClearField(exam.FieldPatientBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Software(); ok {
		_spec.SetField(exam.FieldSoftware, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Urgent(); ok {
		_spec.SetField(exam.FieldUrgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UrgentDue(); ok {
		_spec.SetField(exam.FieldUrgentDue, field.TypeTime, value)
	}
	if _u.mutation.UrgentDueCleared() {
		_spec.ClearField(exam.FieldUrgentDue, field.TypeTime)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(exam.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(exam.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.DentistName(); ok {
		_spec.SetField(exam.FieldDentistName, field.TypeString, value)
	}
	if _u.mutation.DentistNameCleared() {
		_spec.ClearField(exam.FieldDentistName, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(exam.FieldPurpose, field.TypeString, value)
	}
	if _u.mutation.PurposeCleared() {
		_spec.ClearField(exam.FieldPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(exam.FieldExamDate, field.TypeString, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(exam.FieldExamDate, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFileKey(); ok {
		_spec.SetField(exam.FieldSourceFileKey, field.TypeString, value)
	}
	if _u.mutation.SourceFileKeyCleared() {
		_spec.ClearField(exam.FieldSourceFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ReportFileKey(); ok {
		_spec.SetField(exam.FieldReportFileKey, field.TypeString, value)
	}
	if _u.mutation.ReportFileKeyCleared() {
		_spec.ClearField(exam.FieldReportFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ClientValue(); ok {
		_spec.SetField(exam.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientValue(); ok {
		_spec.AddField(exam.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RadiologistValue(); ok {
		_spec.SetField(exam.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRadiologistValue(); ok {
		_spec.AddField(exam.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Margin(); ok {
		_spec.SetField(exam.FieldMargin, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMargin(); ok {
		_spec.AddField(exam.FieldMargin, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamUpdateOne is the builder for updating a single Exam entity.
type ExamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExamUpdateOne) SetUpdatedAt(v time.Time) *ExamUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ExamUpdateOne) SetClientID(v uuid.UUID) *ExamUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableClientID(v *uuid.UUID) *ExamUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetExamTypeID sets the "exam_type_id" field.
func (_u *ExamUpdateOne) SetExamTypeID(v uuid.UUID) *ExamUpdateOne {
	_u.mutation.SetExamTypeID(v)
	return _u
}

// SetNillableExamTypeID sets the "exam_type_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableExamTypeID(v *uuid.UUID) *ExamUpdateOne {
	if v != nil {
		_u.SetExamTypeID(*v)
	}
	return _u
}

// SetRadiologistID sets the "radiologist_id" field.
func (_u *ExamUpdateOne) SetRadiologistID(v uuid.UUID) *ExamUpdateOne {
	_u.mutation.SetRadiologistID(v)
	return _u
}

// SetNillableRadiologistID sets the "radiologist_id" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableRadiologistID(v *uuid.UUID) *ExamUpdateOne {
	if v != nil {
		_u.SetRadiologistID(*v)
	}
	return _u
}

// ClearRadiologistID clears the value of the "radiologist_id" field.
func (_u *ExamUpdateOne) ClearRadiologistID() *ExamUpdateOne {
	_u.mutation.ClearRadiologistID()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ExamUpdateOne) SetPatientName(v string) *ExamUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePatientName(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientBirthDate sets the "patient_birth_date" field.
func (_u *ExamUpdateOne) SetPatientBirthDate(v string) *ExamUpdateOne {
	_u.mutation.SetPatientBirthDate(v)
	return _u
}

// SetNillablePatientBirthDate sets the "patient_birth_date" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePatientBirthDate(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetPatientBirthDate(*v)
	}
	return _u
}

// ClearPatientBirthDate clears the value of the "patient_birth_date" field.
func (_u *ExamUpdateOne) ClearPatientBirthDate() *ExamUpdateOne {
	_u.mutation.ClearPatientBirthDate()
	return _u
}

// SetSoftware sets the "software" field.
func (_u *ExamUpdateOne) SetSoftware(v exam.Software) *ExamUpdateOne {
	_u.mutation.SetSoftware(v)
	return _u
}

// SetNillableSoftware sets the "software" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableSoftware(v *exam.Software) *ExamUpdateOne {
	if v != nil {
		_u.SetSoftware(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExamUpdateOne) SetStatus(v exam.Status) *ExamUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableStatus(v *exam.Status) *ExamUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUrgent sets the "urgent" field.
func (_u *ExamUpdateOne) SetUrgent(v bool) *ExamUpdateOne {
	_u.mutation.SetUrgent(v)
	return _u
}

// SetNillableUrgent sets the "urgent" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableUrgent(v *bool) *ExamUpdateOne {
	if v != nil {
		_u.SetUrgent(*v)
	}
	return _u
}

// SetUrgentDue sets the "urgent_due" field.
func (_u *ExamUpdateOne) SetUrgentDue(v time.Time) *ExamUpdateOne {
	_u.mutation.SetUrgentDue(v)
	return _u
}

// SetNillableUrgentDue sets the "urgent_due" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableUrgentDue(v *time.Time) *ExamUpdateOne {
	if v != nil {
		_u.SetUrgentDue(*v)
	}
	return _u
}

// ClearUrgentDue clears the value of the "urgent_due" field.
func (_u *ExamUpdateOne) ClearUrgentDue() *ExamUpdateOne {
	_u.mutation.ClearUrgentDue()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ExamUpdateOne) SetObservations(v string) *ExamUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableObservations(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *ExamUpdateOne) ClearObservations() *ExamUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// SetDentistName sets the "dentist_name" field.
func (_u *ExamUpdateOne) SetDentistName(v string) *ExamUpdateOne {
	_u.mutation.SetDentistName(v)
	return _u
}

// SetNillableDentistName sets the "dentist_name" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableDentistName(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetDentistName(*v)
	}
	return _u
}

// ClearDentistName clears the value of the "dentist_name" field.
func (_u *ExamUpdateOne) ClearDentistName() *ExamUpdateOne {
	_u.mutation.ClearDentistName()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *ExamUpdateOne) SetPurpose(v string) *ExamUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillablePurpose(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// ClearPurpose clears the value of the "purpose" field.
func (_u *ExamUpdateOne) ClearPurpose() *ExamUpdateOne {
	_u.mutation.ClearPurpose()
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *ExamUpdateOne) SetExamDate(v string) *ExamUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableExamDate(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// ClearExamDate clears the value of the "exam_date" field.
func (_u *ExamUpdateOne) ClearExamDate() *ExamUpdateOne {
	_u.mutation.ClearExamDate()
	return _u
}

// SetSourceFileKey sets the "source_file_key" field.
func (_u *ExamUpdateOne) SetSourceFileKey(v string) *ExamUpdateOne {
	_u.mutation.SetSourceFileKey(v)
	return _u
}

// SetNillableSourceFileKey sets the "source_file_key" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableSourceFileKey(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetSourceFileKey(*v)
	}
	return _u
}

// ClearSourceFileKey clears the value of the "source_file_key" field.
func (_u *ExamUpdateOne) ClearSourceFileKey() *ExamUpdateOne {
	_u.mutation.ClearSourceFileKey()
	return _u
}

// SetReportFileKey sets the "report_file_key" field.
func (_u *ExamUpdateOne) SetReportFileKey(v string) *ExamUpdateOne {
	_u.mutation.SetReportFileKey(v)
	return _u
}

// SetNillableReportFileKey sets the "report_file_key" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableReportFileKey(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetReportFileKey(*v)
	}
	return _u
}

// ClearReportFileKey clears the value of the "report_file_key" field.
func (_u *ExamUpdateOne) ClearReportFileKey() *ExamUpdateOne {
	_u.mutation.ClearReportFileKey()
	return _u
}

// SetClientValue sets the "client_value" field.
func (_u *ExamUpdateOne) SetClientValue(v int64) *ExamUpdateOne {
	_u.mutation.ResetClientValue()
	_u.mutation.SetClientValue(v)
	return _u
}

// SetNillableClientValue sets the "client_value" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableClientValue(v *int64) *ExamUpdateOne {
	if v != nil {
		_u.SetClientValue(*v)
	}
	return _u
}

// AddClientValue adds value to the "client_value" field.
func (_u *ExamUpdateOne) AddClientValue(v int64) *ExamUpdateOne {
	_u.mutation.AddClientValue(v)
	return _u
}

// SetRadiologistValue sets the "radiologist_value" field.
func (_u *ExamUpdateOne) SetRadiologistValue(v int64) *ExamUpdateOne {
	_u.mutation.ResetRadiologistValue()
	_u.mutation.SetRadiologistValue(v)
	return _u
}

// SetNillableRadiologistValue sets the "radiologist_value" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableRadiologistValue(v *int64) *ExamUpdateOne {
	if v != nil {
		_u.SetRadiologistValue(*v)
	}
	return _u
}

// AddRadiologistValue adds value to the "radiologist_value" field.
func (_u *ExamUpdateOne) AddRadiologistValue(v int64) *ExamUpdateOne {
	_u.mutation.AddRadiologistValue(v)
	return _u
}

// SetMargin sets the "margin" field.
func (_u *ExamUpdateOne) SetMargin(v int64) *ExamUpdateOne {
	_u.mutation.ResetMargin()
	_u.mutation.SetMargin(v)
	return _u
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableMargin(v *int64) *ExamUpdateOne {
	if v != nil {
		_u.SetMargin(*v)
	}
	return _u
}

// AddMargin adds value to the "margin" field.
func (_u *ExamUpdateOne) AddMargin(v int64) *ExamUpdateOne {
	_u.mutation.AddMargin(v)
	return _u
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdateOne) Mutation() *ExamMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdateOne) Where(ps ...predicate.Exam) *ExamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamUpdateOne) Select(field string, fields ...string) *ExamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exam entity.
func (_u *ExamUpdateOne) Save(ctx context.Context) (*Exam, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdateOne) SaveX(ctx context.Context) *Exam {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exam.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := exam.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientBirthDate(); ok {
		if err := exam.PatientBirthDateValidator(v); err != nil {
			return &ValidationError{Name: "patient_birth_date", err: fmt.Errorf(`repo: validator failed for field "Exam.patient_birth_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Software(); ok {
		if err := exam.SoftwareValidator(v); err != nil {
			return &ValidationError{Name: "software", err: fmt.Errorf(`repo: validator failed for field "Exam.software": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exam.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Exam.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DentistName(); ok {
		if err := exam.DentistNameValidator(v); err != nil {
			return &ValidationError{Name: "dentist_name", err: fmt.Errorf(`repo: validator failed for field "Exam.dentist_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := exam.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`repo: validator failed for field "Exam.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamDate(); ok {
		if err := exam.ExamDateValidator(v); err != nil {
			return &ValidationError{Name: "exam_date", err: fmt.Errorf(`repo: validator failed for field "Exam.exam_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFileKey(); ok {
		if err := exam.SourceFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "source_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.source_file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportFileKey(); ok {
		if err := exam.ReportFileKeyValidator(v); err != nil {
			return &ValidationError{Name: "report_file_key", err: fmt.Errorf(`repo: validator failed for field "Exam.report_file_key": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdateOne) sqlSave(ctx context.Context) (_node *Exam, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Exam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exam.FieldID)
		for _, f := range fields {
			if !exam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != exam.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exam.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(exam.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExamTypeID(); ok {
		_spec.SetField(exam.FieldExamTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RadiologistID(); ok {
		_spec.SetField(exam.FieldRadiologistID, field.TypeUUID, value)
	}
	if _u.mutation.RadiologistIDCleared() {
		_spec.ClearField(exam.FieldRadiologistID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(exam.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientBirthDate(); ok {
		_spec.SetField(exam.FieldPatientBirthDate, field.TypeString, value)
	}
	if _u.mutation.PatientBirthDateCleared() {
		_spec.ClearField(exam.FieldPatientBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Software(); ok {
		_spec.SetField(exam.FieldSoftware, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exam.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Urgent(); ok {
		_spec.SetField(exam.FieldUrgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UrgentDue(); ok {
		_spec.SetField(exam.FieldUrgentDue, field.TypeTime, value)
	}
	if _u.mutation.UrgentDueCleared() {
		_spec.ClearField(exam.FieldUrgentDue, field.TypeTime)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(exam.FieldObservations, field.TypeString, value)
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(exam.FieldObservations, field.TypeString)
	}
	if value, ok := _u.mutation.DentistName(); ok {
		_spec.SetField(exam.FieldDentistName, field.TypeString, value)
	}
	if _u.mutation.DentistNameCleared() {
		_spec.ClearField(exam.FieldDentistName, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(exam.FieldPurpose, field.TypeString, value)
	}
	if _u.mutation.PurposeCleared() {
		_spec.ClearField(exam.FieldPurpose, field.TypeString)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(exam.FieldExamDate, field.TypeString, value)
	}
	if _u.mutation.ExamDateCleared() {
		_spec.ClearField(exam.FieldExamDate, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFileKey(); ok {
		_spec.SetField(exam.FieldSourceFileKey, field.TypeString, value)
	}
	if _u.mutation.SourceFileKeyCleared() {
		_spec.ClearField(exam.FieldSourceFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ReportFileKey(); ok {
		_spec.SetField(exam.FieldReportFileKey, field.TypeString, value)
	}
	if _u.mutation.ReportFileKeyCleared() {
		_spec.ClearField(exam.FieldReportFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.ClientValue(); ok {
		_spec.SetField(exam.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedClientValue(); ok {
		_spec.AddField(exam.FieldClientValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RadiologistValue(); ok {
		_spec.SetField(exam.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRadiologistValue(); ok {
		_spec.AddField(exam.FieldRadiologistValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Margin(); ok {
		_spec.SetField(exam.FieldMargin, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMargin(); ok {
		_spec.AddField(exam.FieldMargin, field.TypeInt64, value)
	}
	_node = &Exam{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
