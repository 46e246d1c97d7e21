package domain

import (
	"time"
)

// Entry is a journal record, the central entity. EmotionID and PlaceID are
// nullable references; CreatedAt is assigned server-side at creation and never
// modified by updates.
type Entry struct {
	ID         int64
	Title      string
	Content    string
	EmotionID  *int64
	PlaceID    *int64
	CreatedAt  time.Time
	IsFavorite bool
}

// EntryWithRelations is an entry enriched with its resolved emotion, place,
// and people. Emotion and Place are nil when the entry carries no reference
// (or the reference dangles); People is always non-nil, possibly empty.
type EntryWithRelations struct {
	Entry
	Emotion *Emotion
	Place   *Place
	People  []Person
}

// EntryCreateParams carries the fields for inserting an entry. CreatedAt is
// normally nil and assigned by the database; backup import sets it to restore
// history.
type EntryCreateParams struct {
	Title      string
	Content    string
	EmotionID  *int64
	PlaceID    *int64
	CreatedAt  *time.Time
	IsFavorite bool
}

// EntryUpdateParams carries a partial entry update. Nil fields are left
// unchanged. CreatedAt is deliberately absent: it is immutable.
type EntryUpdateParams struct {
	Title      *string
	Content    *string
	EmotionID  *int64
	PlaceID    *int64
	IsFavorite *bool

	// ClearEmotion / ClearPlace set the corresponding reference to NULL.
	// They take precedence over EmotionID / PlaceID when set.
	ClearEmotion bool
	ClearPlace   bool
}

// IsZero reports whether the update carries no field changes.
func (p EntryUpdateParams) IsZero() bool {
	return p.Title == nil && p.Content == nil &&
		p.EmotionID == nil && p.PlaceID == nil && p.IsFavorite == nil &&
		!p.ClearEmotion && !p.ClearPlace
}
