package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single front/back vocabulary item with its own review schedule.
// Scheduling fields stay NULL until the card's first review.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.String("deck_id").
			NotEmpty().
			Comment("Owning deck UUID"),
		field.String("front").
			NotEmpty(),
		field.String("back").
			NotEmpty(),
		field.String("language").
			NotEmpty(),
		field.Time("last_reviewed").
			Optional().
			Nillable(),
		field.Time("next_review").
			Optional().
			Nillable(),
		field.String("difficulty").
			Optional().
			Comment("Most recent rating: again, hard, good, or easy"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id"),
		index.Fields("next_review"),
	}
}
