// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anlek/mathweave/ent/problemsession"
	"github.com/google/uuid"
)

// ProblemSession is the model entity for the ProblemSession schema.
type ProblemSession struct {
	config `json:"-"`
	// ID of the ent.
	// Server-generated session identifier
	ID uuid.UUID `json:"id,omitempty"`
	// The word problem shown to the student
	ProblemText string `json:"problem_text,omitempty"`
	// Bare numeric answer, no units
	CorrectAnswer float64 `json:"correct_answer,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemsession.FieldCorrectAnswer:
			values[i] = new(sql.NullFloat64)
		case problemsession.FieldProblemText:
			values[i] = new(sql.NullString)
		case problemsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case problemsession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemSession fields.
func (_m *ProblemSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case problemsession.FieldProblemText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_text", values[i])
			} else if value.Valid {
				_m.ProblemText = value.String
			}
		case problemsession.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.Float64
			}
		case problemsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemSession.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProblemSession.
// Note that you need to call ProblemSession.Unwrap() before calling this method if this ProblemSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemSession) Update() *ProblemSessionUpdateOne {
	return NewProblemSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemSession) Unwrap() *ProblemSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemSession) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("problem_text=")
	builder.WriteString(_m.ProblemText)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswer))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProblemSessions is a parsable slice of ProblemSession.
type ProblemSessions []*ProblemSession
