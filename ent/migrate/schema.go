// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProblemSessionsColumns holds the columns for the "problem_sessions" table.
	ProblemSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "problem_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProblemSessionsTable holds the schema information for the "problem_sessions" table.
	ProblemSessionsTable = &schema.Table{
		Name:       "problem_sessions",
		Columns:    ProblemSessionsColumns,
		PrimaryKey: []*schema.Column{ProblemSessionsColumns[0]},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "user_answer", Type: field.TypeFloat64},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "feedback_text", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_session_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProblemSessionsTable,
		SubmissionsTable,
	}
)

func init() {
}
