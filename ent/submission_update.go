// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anlek/mathweave/ent/predicate"
	"github.com/anlek/mathweave/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *SubmissionUpdate) SetUserAnswer(v float64) *SubmissionUpdate {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserAnswer(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *SubmissionUpdate) AddUserAnswer(v float64) *SubmissionUpdate {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *SubmissionUpdate) SetIsCorrect(v bool) *SubmissionUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableIsCorrect(v *bool) *SubmissionUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetFeedbackText sets the "feedback_text" field.
func (_u *SubmissionUpdate) SetFeedbackText(v string) *SubmissionUpdate {
	_u.mutation.SetFeedbackText(v)
	return _u
}

// SetNillableFeedbackText sets the "feedback_text" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFeedbackText(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetFeedbackText(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(submission.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(submission.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(submission.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FeedbackText(); ok {
		_spec.SetField(submission.FieldFeedbackText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUserAnswer sets the "user_answer" field.
func (_u *SubmissionUpdateOne) SetUserAnswer(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserAnswer(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *SubmissionUpdateOne) AddUserAnswer(v float64) *SubmissionUpdateOne {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *SubmissionUpdateOne) SetIsCorrect(v bool) *SubmissionUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableIsCorrect(v *bool) *SubmissionUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetFeedbackText sets the "feedback_text" field.
func (_u *SubmissionUpdateOne) SetFeedbackText(v string) *SubmissionUpdateOne {
	_u.mutation.SetFeedbackText(v)
	return _u
}

// SetNillableFeedbackText sets the "feedback_text" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFeedbackText(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFeedbackText(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(submission.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(submission.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(submission.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FeedbackText(); ok {
		_spec.SetField(submission.FieldFeedbackText, field.TypeString, value)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
