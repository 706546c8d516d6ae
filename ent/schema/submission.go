package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Submission records one answer attempt against a problem session, along
// with the tutoring feedback that was streamed back for it. The feedback
// text may be shorter than what the model produced if the stream failed
// midway; the row is written regardless to preserve the audit trail.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_id", uuid.UUID{}).
			Immutable().
			Comment("The problem session this attempt answers"),
		field.Float("user_answer"),
		field.Bool("is_correct"),
		field.String("feedback_text").
			Comment("Accumulated feedback fragments, possibly partial"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
