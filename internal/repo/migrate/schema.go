// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientPricesColumns holds the columns for the "client_prices" table.
	ClientPricesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "exam_type_id", Type: field.TypeUUID},
		{Name: "client_value", Type: field.TypeInt64},
	}
	// ClientPricesTable holds the schema information for the "client_prices" table.
	ClientPricesTable = &schema.Table{
		Name:       "client_prices",
		Columns:    ClientPricesColumns,
		PrimaryKey: []*schema.Column{ClientPricesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientprice_client_id_exam_type_id",
				Unique:  true,
				Columns: []*schema.Column{ClientPricesColumns[3], ClientPricesColumns[4]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "tax_id", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "softwares", Type: field.TypeJSON, Nullable: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "exam_type_id", Type: field.TypeUUID},
		{Name: "radiologist_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_name", Type: field.TypeString, Size: 255},
		{Name: "patient_birth_date", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "software", Type: field.TypeEnum, Enums: []string{"axel", "morita"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "in_review", "finalized", "cancelled"}, Default: "available"},
		{Name: "urgent", Type: field.TypeBool, Default: false},
		{Name: "urgent_due", Type: field.TypeTime, Nullable: true},
		{Name: "observations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "dentist_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "purpose", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "exam_date", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "source_file_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "report_file_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "client_value", Type: field.TypeInt64, Default: 0},
		{Name: "radiologist_value", Type: field.TypeInt64, Default: 0},
		{Name: "margin", Type: field.TypeInt64, Default: 0},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exam_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[3], ExamsColumns[9]},
			},
			{
				Name:    "exam_radiologist_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[5], ExamsColumns[9]},
			},
			{
				Name:    "exam_status_software",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[9], ExamsColumns[8]},
			},
			{
				Name:    "exam_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[1]},
			},
		},
	}
	// ExamEventsColumns holds the columns for the "exam_events" table.
	ExamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "in_review", "finalized", "cancelled"}},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// ExamEventsTable holds the schema information for the "exam_events" table.
	ExamEventsTable = &schema.Table{
		Name:       "exam_events",
		Columns:    ExamEventsColumns,
		PrimaryKey: []*schema.Column{ExamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examevent_exam_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[2], ExamEventsColumns[1]},
			},
		},
	}
	// ExamTypesColumns holds the columns for the "exam_types" table.
	ExamTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
	}
	// ExamTypesTable holds the schema information for the "exam_types" table.
	ExamTypesTable = &schema.Table{
		Name:       "exam_types",
		Columns:    ExamTypesColumns,
		PrimaryKey: []*schema.Column{ExamTypesColumns[0]},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_starts_at",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[4]},
			},
		},
	}
	// MeetingParticipantsColumns holds the columns for the "meeting_participants" table.
	MeetingParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "meeting_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// MeetingParticipantsTable holds the schema information for the "meeting_participants" table.
	MeetingParticipantsTable = &schema.Table{
		Name:       "meeting_participants",
		Columns:    MeetingParticipantsColumns,
		PrimaryKey: []*schema.Column{MeetingParticipantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meetingparticipant_meeting_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MeetingParticipantsColumns[1], MeetingParticipantsColumns[2]},
			},
			{
				Name:    "meetingparticipant_user_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingParticipantsColumns[2]},
			},
		},
	}
	// RadiologistPricesColumns holds the columns for the "radiologist_prices" table.
	RadiologistPricesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "exam_type_id", Type: field.TypeUUID},
		{Name: "radiologist_id", Type: field.TypeUUID},
		{Name: "radiologist_value", Type: field.TypeInt64},
	}
	// RadiologistPricesTable holds the schema information for the "radiologist_prices" table.
	RadiologistPricesTable = &schema.Table{
		Name:       "radiologist_prices",
		Columns:    RadiologistPricesColumns,
		PrimaryKey: []*schema.Column{RadiologistPricesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "radiologistprice_client_id_exam_type_id_radiologist_id",
				Unique:  true,
				Columns: []*schema.Column{RadiologistPricesColumns[3], RadiologistPricesColumns[4], RadiologistPricesColumns[5]},
			},
			{
				Name:    "radiologistprice_radiologist_id",
				Unique:  false,
				Columns: []*schema.Column{RadiologistPricesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "radiologist", "client", "none"}, Default: "none"},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "softwares", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_client_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// VacationsColumns holds the columns for the "vacations" table.
	VacationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// VacationsTable holds the schema information for the "vacations" table.
	VacationsTable = &schema.Table{
		Name:       "vacations",
		Columns:    VacationsColumns,
		PrimaryKey: []*schema.Column{VacationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vacation_user_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{VacationsColumns[2], VacationsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientPricesTable,
		ClinicsTable,
		ExamsTable,
		ExamEventsTable,
		ExamTypesTable,
		MeetingsTable,
		MeetingParticipantsTable,
		RadiologistPricesTable,
		UsersTable,
		VacationsTable,
	}
)

func init() {
}
