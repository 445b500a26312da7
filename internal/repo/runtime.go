// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/raydent/raydent_backend/internal/repo/clientprice"
	"github.com/raydent/raydent_backend/internal/repo/clinic"
	"github.com/raydent/raydent_backend/internal/repo/exam"
	"github.com/raydent/raydent_backend/internal/repo/examevent"
	"github.com/raydent/raydent_backend/internal/repo/examtype"
	"github.com/raydent/raydent_backend/internal/repo/meeting"
	"github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	"github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	"github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/repo/vacation"
	"github.com/raydent/raydent_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clientpriceMixin := schema.ClientPrice{}.Mixin()
	clientpriceMixinFields0 := clientpriceMixin[0].Fields()
	_ = clientpriceMixinFields0
	clientpriceMixinFields1 := clientpriceMixin[1].Fields()
	_ = clientpriceMixinFields1
	clientpriceFields := schema.ClientPrice{}.Fields()
	_ = clientpriceFields
	// clientpriceDescCreatedAt is the schema descriptor for created_at field.
	clientpriceDescCreatedAt := clientpriceMixinFields1[0].Descriptor()
	// clientprice.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientprice.DefaultCreatedAt = clientpriceDescCreatedAt.Default.(func() time.Time)
	// clientpriceDescUpdatedAt is the schema descriptor for updated_at field.
	clientpriceDescUpdatedAt := clientpriceMixinFields1[1].Descriptor()
	// clientprice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientprice.DefaultUpdatedAt = clientpriceDescUpdatedAt.Default.(func() time.Time)
	// clientprice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientprice.UpdateDefaultUpdatedAt = clientpriceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientpriceDescID is the schema descriptor for id field.
	clientpriceDescID := clientpriceMixinFields0[0].Descriptor()
	// clientprice.DefaultID holds the default value on creation for the id field.
	clientprice.DefaultID = clientpriceDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescTaxID is the schema descriptor for tax_id field.
	clinicDescTaxID := clinicFields[1].Descriptor()
	// clinic.TaxIDValidator is a validator for the "tax_id" field. It is called by the builders before save.
	clinic.TaxIDValidator = clinicDescTaxID.Validators[0].(func(string) error)
	// clinicDescEmail is the schema descriptor for email field.
	clinicDescEmail := clinicFields[2].Descriptor()
	// clinic.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clinic.EmailValidator = clinicDescEmail.Validators[0].(func(string) error)
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[3].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[4].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescSoftwares is the schema descriptor for softwares field.
	clinicDescSoftwares := clinicFields[5].Descriptor()
	// clinic.DefaultSoftwares holds the default value on creation for the softwares field.
	clinic.DefaultSoftwares = clinicDescSoftwares.Default.([]string)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	examMixin := schema.Exam{}.Mixin()
	examMixinFields0 := examMixin[0].Fields()
	_ = examMixinFields0
	examMixinFields1 := examMixin[1].Fields()
	_ = examMixinFields1
	examFields := schema.Exam{}.Fields()
	_ = examFields
	// examDescCreatedAt is the schema descriptor for created_at field.
	examDescCreatedAt := examMixinFields1[0].Descriptor()
	// exam.DefaultCreatedAt holds the default value on creation for the created_at field.
	exam.DefaultCreatedAt = examDescCreatedAt.Default.(func() time.Time)
	// examDescUpdatedAt is the schema descriptor for updated_at field.
	examDescUpdatedAt := examMixinFields1[1].Descriptor()
	// exam.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	exam.DefaultUpdatedAt = examDescUpdatedAt.Default.(func() time.Time)
	// exam.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	exam.UpdateDefaultUpdatedAt = examDescUpdatedAt.UpdateDefault.(func() time.Time)
	// examDescPatientName is the schema descriptor for patient_name field.
	examDescPatientName := examFields[3].Descriptor()
	// exam.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	exam.PatientNameValidator = func() func(string) error {
		validators := examDescPatientName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(patient_name string) error {
			for _, fn := range fns {
				if err := fn(patient_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examDescPatientBirthDate is the schema descriptor for patient_birth_date field.
	examDescPatientBirthDate := examFields[4].Descriptor()
	// exam.PatientBirthDateValidator is a validator for the "patient_birth_date" field. It is called by the builders before save.
	exam.PatientBirthDateValidator = examDescPatientBirthDate.Validators[0].(func(string) error)
	// examDescUrgent is the schema descriptor for urgent field.
	examDescUrgent := examFields[7].Descriptor()
	// exam.DefaultUrgent holds the default value on creation for the urgent field.
	exam.DefaultUrgent = examDescUrgent.Default.(bool)
	// examDescDentistName is the schema descriptor for dentist_name field.
	examDescDentistName := examFields[10].Descriptor()
	// exam.DentistNameValidator is a validator for the "dentist_name" field. It is called by the builders before save.
	exam.DentistNameValidator = examDescDentistName.Validators[0].(func(string) error)
	// examDescPurpose is the schema descriptor for purpose field.
	examDescPurpose := examFields[11].Descriptor()
	// exam.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	exam.PurposeValidator = examDescPurpose.Validators[0].(func(string) error)
	// examDescExamDate is the schema descriptor for exam_date field.
	examDescExamDate := examFields[12].Descriptor()
	// exam.ExamDateValidator is a validator for the "exam_date" field. It is called by the builders before save.
	exam.ExamDateValidator = examDescExamDate.Validators[0].(func(string) error)
	// examDescSourceFileKey is the schema descriptor for source_file_key field.
	examDescSourceFileKey := examFields[13].Descriptor()
	// exam.SourceFileKeyValidator is a validator for the "source_file_key" field. It is called by the builders before save.
	exam.SourceFileKeyValidator = examDescSourceFileKey.Validators[0].(func(string) error)
	// examDescReportFileKey is the schema descriptor for report_file_key field.
	examDescReportFileKey := examFields[14].Descriptor()
	// exam.ReportFileKeyValidator is a validator for the "report_file_key" field. It is called by the builders before save.
	exam.ReportFileKeyValidator = examDescReportFileKey.Validators[0].(func(string) error)
	// examDescClientValue is the schema descriptor for client_value field.
	examDescClientValue := examFields[15].Descriptor()
	// exam.DefaultClientValue holds the default value on creation for the client_value field.
	exam.DefaultClientValue = examDescClientValue.Default.(int64)
	// examDescRadiologistValue is the schema descriptor for radiologist_value field.
	examDescRadiologistValue := examFields[16].Descriptor()
	// exam.DefaultRadiologistValue holds the default value on creation for the radiologist_value field.
	exam.DefaultRadiologistValue = examDescRadiologistValue.Default.(int64)
	// examDescMargin is the schema descriptor for margin field.
	examDescMargin := examFields[17].Descriptor()
	// exam.DefaultMargin holds the default value on creation for the margin field.
	exam.DefaultMargin = examDescMargin.Default.(int64)
	// examDescID is the schema descriptor for id field.
	examDescID := examMixinFields0[0].Descriptor()
	// exam.DefaultID holds the default value on creation for the id field.
	exam.DefaultID = examDescID.Default.(func() uuid.UUID)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventMixinFields1 := exameventMixin[1].Fields()
	_ = exameventMixinFields1
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescCreatedAt is the schema descriptor for created_at field.
	exameventDescCreatedAt := exameventMixinFields1[0].Descriptor()
	// examevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	examevent.DefaultCreatedAt = exameventDescCreatedAt.Default.(func() time.Time)
	// exameventDescNote is the schema descriptor for note field.
	exameventDescNote := exameventFields[3].Descriptor()
	// examevent.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	examevent.NoteValidator = exameventDescNote.Validators[0].(func(string) error)
	// exameventDescID is the schema descriptor for id field.
	exameventDescID := exameventMixinFields0[0].Descriptor()
	// examevent.DefaultID holds the default value on creation for the id field.
	examevent.DefaultID = exameventDescID.Default.(func() uuid.UUID)
	examtypeMixin := schema.ExamType{}.Mixin()
	examtypeMixinFields0 := examtypeMixin[0].Fields()
	_ = examtypeMixinFields0
	examtypeMixinFields1 := examtypeMixin[1].Fields()
	_ = examtypeMixinFields1
	examtypeFields := schema.ExamType{}.Fields()
	_ = examtypeFields
	// examtypeDescCreatedAt is the schema descriptor for created_at field.
	examtypeDescCreatedAt := examtypeMixinFields1[0].Descriptor()
	// examtype.DefaultCreatedAt holds the default value on creation for the created_at field.
	examtype.DefaultCreatedAt = examtypeDescCreatedAt.Default.(func() time.Time)
	// examtypeDescName is the schema descriptor for name field.
	examtypeDescName := examtypeFields[0].Descriptor()
	// examtype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	examtype.NameValidator = func() func(string) error {
		validators := examtypeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// examtypeDescID is the schema descriptor for id field.
	examtypeDescID := examtypeMixinFields0[0].Descriptor()
	// examtype.DefaultID holds the default value on creation for the id field.
	examtype.DefaultID = examtypeDescID.Default.(func() uuid.UUID)
	meetingMixin := schema.Meeting{}.Mixin()
	meetingMixinFields0 := meetingMixin[0].Fields()
	_ = meetingMixinFields0
	meetingMixinFields1 := meetingMixin[1].Fields()
	_ = meetingMixinFields1
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingMixinFields1[0].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	// meetingDescTitle is the schema descriptor for title field.
	meetingDescTitle := meetingFields[0].Descriptor()
	// meeting.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	meeting.TitleValidator = func() func(string) error {
		validators := meetingDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// meetingDescID is the schema descriptor for id field.
	meetingDescID := meetingMixinFields0[0].Descriptor()
	// meeting.DefaultID holds the default value on creation for the id field.
	meeting.DefaultID = meetingDescID.Default.(func() uuid.UUID)
	meetingparticipantMixin := schema.MeetingParticipant{}.Mixin()
	meetingparticipantMixinFields0 := meetingparticipantMixin[0].Fields()
	_ = meetingparticipantMixinFields0
	meetingparticipantFields := schema.MeetingParticipant{}.Fields()
	_ = meetingparticipantFields
	// meetingparticipantDescID is the schema descriptor for id field.
	meetingparticipantDescID := meetingparticipantMixinFields0[0].Descriptor()
	// meetingparticipant.DefaultID holds the default value on creation for the id field.
	meetingparticipant.DefaultID = meetingparticipantDescID.Default.(func() uuid.UUID)
	radiologistpriceMixin := schema.RadiologistPrice{}.Mixin()
	radiologistpriceMixinFields0 := radiologistpriceMixin[0].Fields()
	_ = radiologistpriceMixinFields0
	radiologistpriceMixinFields1 := radiologistpriceMixin[1].Fields()
	_ = radiologistpriceMixinFields1
	radiologistpriceFields := schema.RadiologistPrice{}.Fields()
	_ = radiologistpriceFields
	// radiologistpriceDescCreatedAt is the schema descriptor for created_at field.
	radiologistpriceDescCreatedAt := radiologistpriceMixinFields1[0].Descriptor()
	// radiologistprice.DefaultCreatedAt holds the default value on creation for the created_at field.
	radiologistprice.DefaultCreatedAt = radiologistpriceDescCreatedAt.Default.(func() time.Time)
	// radiologistpriceDescUpdatedAt is the schema descriptor for updated_at field.
	radiologistpriceDescUpdatedAt := radiologistpriceMixinFields1[1].Descriptor()
	// radiologistprice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	radiologistprice.DefaultUpdatedAt = radiologistpriceDescUpdatedAt.Default.(func() time.Time)
	// radiologistprice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	radiologistprice.UpdateDefaultUpdatedAt = radiologistpriceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// radiologistpriceDescID is the schema descriptor for id field.
	radiologistpriceDescID := radiologistpriceMixinFields0[0].Descriptor()
	// radiologistprice.DefaultID holds the default value on creation for the id field.
	radiologistprice.DefaultID = radiologistpriceDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescSoftwares is the schema descriptor for softwares field.
	userDescSoftwares := userFields[5].Descriptor()
	// user.DefaultSoftwares holds the default value on creation for the softwares field.
	user.DefaultSoftwares = userDescSoftwares.Default.([]string)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[8].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	vacationMixin := schema.Vacation{}.Mixin()
	vacationMixinFields0 := vacationMixin[0].Fields()
	_ = vacationMixinFields0
	vacationMixinFields1 := vacationMixin[1].Fields()
	_ = vacationMixinFields1
	vacationFields := schema.Vacation{}.Fields()
	_ = vacationFields
	// vacationDescCreatedAt is the schema descriptor for created_at field.
	vacationDescCreatedAt := vacationMixinFields1[0].Descriptor()
	// vacation.DefaultCreatedAt holds the default value on creation for the created_at field.
	vacation.DefaultCreatedAt = vacationDescCreatedAt.Default.(func() time.Time)
	// vacationDescNote is the schema descriptor for note field.
	vacationDescNote := vacationFields[3].Descriptor()
	// vacation.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	vacation.NoteValidator = vacationDescNote.Validators[0].(func(string) error)
	// vacationDescID is the schema descriptor for id field.
	vacationDescID := vacationMixinFields0[0].Descriptor()
	// vacation.DefaultID holds the default value on creation for the id field.
	vacation.DefaultID = vacationDescID.Default.(func() uuid.UUID)
}
