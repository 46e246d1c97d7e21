package domain

// Emotion is a free-form feeling tag attached to entries via a nullable
// foreign key.
type Emotion struct {
	ID    int64
	Name  string
	Emoji string
	Color string
}

// Person is someone mentioned in entries, linked through the entry_people
// junction table (many-to-many).
type Person struct {
	ID   int64
	Name string
}

// DefaultPlaceIcon is substituted when a place is created without an icon.
const DefaultPlaceIcon = "📍"

// Place is a location tag attached to entries via a nullable foreign key.
type Place struct {
	ID   int64
	Name string
	Icon string
}

// EmotionUpdateParams carries a partial emotion update. Nil fields are left
// unchanged.
type EmotionUpdateParams struct {
	Name  *string
	Emoji *string
	Color *string
}

// PersonUpdateParams carries a partial person update.
type PersonUpdateParams struct {
	Name *string
}

// PlaceUpdateParams carries a partial place update.
type PlaceUpdateParams struct {
	Name *string
	Icon *string
}
