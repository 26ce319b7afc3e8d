// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amrw/vokab/ent/card"
	"github.com/amrw/vokab/ent/deck"
	"github.com/amrw/vokab/ent/reviewevent"
	"github.com/amrw/vokab/ent/schema"
	"github.com/amrw/vokab/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescDeckID is the schema descriptor for deck_id field.
	cardDescDeckID := cardFields[1].Descriptor()
	// card.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	card.DeckIDValidator = cardDescDeckID.Validators[0].(func(string) error)
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[2].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[3].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescLanguage is the schema descriptor for language field.
	cardDescLanguage := cardFields[4].Descriptor()
	// card.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	card.LanguageValidator = cardDescLanguage.Validators[0].(func(string) error)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[8].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.IDValidator is a validator for the "id" field. It is called by the builders before save.
	card.IDValidator = cardDescID.Validators[0].(func(string) error)
	deckFields := schema.Deck{}.Fields()
	_ = deckFields
	// deckDescName is the schema descriptor for name field.
	deckDescName := deckFields[1].Descriptor()
	// deck.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deck.NameValidator = deckDescName.Validators[0].(func(string) error)
	// deckDescDescription is the schema descriptor for description field.
	deckDescDescription := deckFields[2].Descriptor()
	// deck.DefaultDescription holds the default value on creation for the description field.
	deck.DefaultDescription = deckDescDescription.Default.(string)
	// deckDescLanguage is the schema descriptor for language field.
	deckDescLanguage := deckFields[3].Descriptor()
	// deck.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	deck.LanguageValidator = deckDescLanguage.Validators[0].(func(string) error)
	// deckDescCreatedAt is the schema descriptor for created_at field.
	deckDescCreatedAt := deckFields[4].Descriptor()
	// deck.DefaultCreatedAt holds the default value on creation for the created_at field.
	deck.DefaultCreatedAt = deckDescCreatedAt.Default.(func() time.Time)
	// deckDescID is the schema descriptor for id field.
	deckDescID := deckFields[0].Descriptor()
	// deck.IDValidator is a validator for the "id" field. It is called by the builders before save.
	deck.IDValidator = deckDescID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescDeckID is the schema descriptor for deck_id field.
	revieweventDescDeckID := revieweventFields[1].Descriptor()
	// reviewevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	reviewevent.DeckIDValidator = revieweventDescDeckID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[2].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescDifficulty is the schema descriptor for difficulty field.
	revieweventDescDifficulty := revieweventFields[3].Descriptor()
	// reviewevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	reviewevent.DifficultyValidator = revieweventDescDifficulty.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescDeckID is the schema descriptor for deck_id field.
	sessioneventDescDeckID := sessioneventFields[1].Descriptor()
	// sessionevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	sessionevent.DeckIDValidator = sessioneventDescDeckID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCardsSelected is the schema descriptor for cards_selected field.
	sessioneventDescCardsSelected := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCardsSelected holds the default value on creation for the cards_selected field.
	sessionevent.DefaultCardsSelected = sessioneventDescCardsSelected.Default.(int)
	// sessioneventDescCardsReviewed is the schema descriptor for cards_reviewed field.
	sessioneventDescCardsReviewed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCardsReviewed holds the default value on creation for the cards_reviewed field.
	sessionevent.DefaultCardsReviewed = sessioneventDescCardsReviewed.Default.(int)
	// sessioneventDescAgainCount is the schema descriptor for again_count field.
	sessioneventDescAgainCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAgainCount holds the default value on creation for the again_count field.
	sessionevent.DefaultAgainCount = sessioneventDescAgainCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
