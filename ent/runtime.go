// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anlek/mathweave/ent/problemsession"
	"github.com/anlek/mathweave/ent/schema"
	"github.com/anlek/mathweave/ent/submission"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	problemsessionFields := schema.ProblemSession{}.Fields()
	_ = problemsessionFields
	// problemsessionDescProblemText is the schema descriptor for problem_text field.
	problemsessionDescProblemText := problemsessionFields[1].Descriptor()
	// problemsession.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	problemsession.ProblemTextValidator = problemsessionDescProblemText.Validators[0].(func(string) error)
	// problemsessionDescCreatedAt is the schema descriptor for created_at field.
	problemsessionDescCreatedAt := problemsessionFields[3].Descriptor()
	// problemsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemsession.DefaultCreatedAt = problemsessionDescCreatedAt.Default.(func() time.Time)
	// problemsessionDescID is the schema descriptor for id field.
	problemsessionDescID := problemsessionFields[0].Descriptor()
	// problemsession.DefaultID holds the default value on creation for the id field.
	problemsession.DefaultID = problemsessionDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[4].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
}
