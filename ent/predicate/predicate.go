// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProblemSession is the predicate function for problemsession builders.
type ProblemSession func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
