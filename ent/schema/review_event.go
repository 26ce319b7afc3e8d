package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single card review within a study session.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("deck_id").
			NotEmpty(),
		field.String("card_id").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("again, hard, good, or easy"),
		field.Time("next_review").
			Comment("Schedule computed from the rating"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("deck_id"),
		index.Fields("card_id"),
	}
}
