package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Deck is a named collection of cards sharing a study context.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID assigned at creation"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.String("language").
			NotEmpty().
			Comment("BCP-47-ish language tag, e.g. de or German"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
