package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ProblemSession is the durable record of one generated problem and its
// correct answer. It is created exactly once per generation request and
// never mutated afterwards.
type ProblemSession struct {
	ent.Schema
}

func (ProblemSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			Comment("Server-generated session identifier"),
		field.String("problem_text").
			NotEmpty().
			Comment("The word problem shown to the student"),
		field.Float("correct_answer").
			Comment("Bare numeric answer, no units"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
