package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records study-session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("deck_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("cards_selected").
			Default(0).
			Comment("Size of the due set picked at start (on start only)"),
		field.Int("cards_reviewed").
			Default(0).
			Comment("Reviews recorded (on end only)"),
		field.Int("again_count").
			Default(0).
			Comment("Reviews rated again (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("deck_id"),
		index.Fields("action"),
	}
}
