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
	"github.com/anlek/mathweave/ent/problemsession"
)

// ProblemSessionUpdate is the builder for updating ProblemSession entities.
type ProblemSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdate) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *ProblemSessionUpdate) SetProblemText(v string) *ProblemSessionUpdate {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *ProblemSessionUpdate) SetNillableProblemText(v *string) *ProblemSessionUpdate {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemSessionUpdate) SetCorrectAnswer(v float64) *ProblemSessionUpdate {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemSessionUpdate) SetNillableCorrectAnswer(v *float64) *ProblemSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *ProblemSessionUpdate) AddCorrectAnswer(v float64) *ProblemSessionUpdate {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdate) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemSessionUpdate) check() error {
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := problemsession.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ProblemSession.problem_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(problemsession.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemsession.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(problemsession.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemSessionUpdateOne is the builder for updating a single ProblemSession entity.
type ProblemSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemSessionMutation
}

// SetProblemText sets the "problem_text" field.
func (_u *ProblemSessionUpdateOne) SetProblemText(v string) *ProblemSessionUpdateOne {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *ProblemSessionUpdateOne) SetNillableProblemText(v *string) *ProblemSessionUpdateOne {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemSessionUpdateOne) SetCorrectAnswer(v float64) *ProblemSessionUpdateOne {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemSessionUpdateOne) SetNillableCorrectAnswer(v *float64) *ProblemSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *ProblemSessionUpdateOne) AddCorrectAnswer(v float64) *ProblemSessionUpdateOne {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// Mutation returns the ProblemSessionMutation object of the builder.
func (_u *ProblemSessionUpdateOne) Mutation() *ProblemSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemSessionUpdate builder.
func (_u *ProblemSessionUpdateOne) Where(ps ...predicate.ProblemSession) *ProblemSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemSessionUpdateOne) Select(field string, fields ...string) *ProblemSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemSession entity.
func (_u *ProblemSessionUpdateOne) Save(ctx context.Context) (*ProblemSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) SaveX(ctx context.Context) *ProblemSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemSessionUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := problemsession.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ProblemSession.problem_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemSessionUpdateOne) sqlSave(ctx context.Context) (_node *ProblemSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemsession.FieldID)
		for _, f := range fields {
			if !problemsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemsession.FieldID {
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
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(problemsession.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemsession.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(problemsession.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	_node = &ProblemSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
