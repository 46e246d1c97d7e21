package journal

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/daybook-app/daybook/internal/domain"
)

const maxTitleLen = 200

// OptInt64 distinguishes an absent JSON field from an explicit null.
// Absent: Set is false. Null: Set is true, Value is nil.
type OptInt64 struct {
	Set   bool
	Value *int64
}

func (o *OptInt64) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

type EntryFields struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	EmotionID  *int64 `json:"emotionId"`
	PlaceID    *int64 `json:"placeId"`
	IsFavorite bool   `json:"isFavorite"`
}

type CreateEntryInput struct {
	Entry     EntryFields `json:"entry"`
	PeopleIDs []int64     `json:"peopleIds"`
}

func (in *CreateEntryInput) Validate() error {
	var fields []domain.FieldError

	if strings.TrimSpace(in.Entry.Title) == "" {
		fields = append(fields, domain.FieldError{Field: "entry.title", Message: "is required"})
	} else if utf8.RuneCountInString(in.Entry.Title) > maxTitleLen {
		fields = append(fields, domain.FieldError{Field: "entry.title", Message: "is too long"})
	}

	if strings.TrimSpace(in.Entry.Content) == "" {
		fields = append(fields, domain.FieldError{Field: "entry.content", Message: "is required"})
	}

	if in.Entry.EmotionID != nil && *in.Entry.EmotionID <= 0 {
		fields = append(fields, domain.FieldError{Field: "entry.emotionId", Message: "must be positive"})
	}
	if in.Entry.PlaceID != nil && *in.Entry.PlaceID <= 0 {
		fields = append(fields, domain.FieldError{Field: "entry.placeId", Message: "must be positive"})
	}
	for _, id := range in.PeopleIDs {
		if id <= 0 {
			fields = append(fields, domain.FieldError{Field: "peopleIds", Message: "must contain positive ids"})
			break
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

type UpdateEntryFields struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	EmotionID  OptInt64 `json:"emotionId"`
	PlaceID    OptInt64 `json:"placeId"`
	IsFavorite *bool    `json:"isFavorite"`
}

// UpdateEntryInput carries a partial entry update. Both parts are optional
// but at least one must be present. A nil PeopleIDs leaves associations
// untouched; an empty slice removes them all.
type UpdateEntryInput struct {
	Entry     *UpdateEntryFields `json:"entry"`
	PeopleIDs *[]int64           `json:"peopleIds"`
}

func (in *UpdateEntryInput) Validate() error {
	if in.Entry == nil && in.PeopleIDs == nil {
		return domain.NewValidationError("body", "at least one of entry or peopleIds must be provided")
	}

	var fields []domain.FieldError

	if in.Entry != nil {
		e := in.Entry
		if e.Title == nil && e.Content == nil && !e.EmotionID.Set && !e.PlaceID.Set && e.IsFavorite == nil {
			fields = append(fields, domain.FieldError{Field: "entry", Message: "must not be empty"})
		}
		if e.Title != nil {
			if strings.TrimSpace(*e.Title) == "" {
				fields = append(fields, domain.FieldError{Field: "entry.title", Message: "must not be empty"})
			} else if utf8.RuneCountInString(*e.Title) > maxTitleLen {
				fields = append(fields, domain.FieldError{Field: "entry.title", Message: "is too long"})
			}
		}
		if e.Content != nil && strings.TrimSpace(*e.Content) == "" {
			fields = append(fields, domain.FieldError{Field: "entry.content", Message: "must not be empty"})
		}
		if e.EmotionID.Set && e.EmotionID.Value != nil && *e.EmotionID.Value <= 0 {
			fields = append(fields, domain.FieldError{Field: "entry.emotionId", Message: "must be positive"})
		}
		if e.PlaceID.Set && e.PlaceID.Value != nil && *e.PlaceID.Value <= 0 {
			fields = append(fields, domain.FieldError{Field: "entry.placeId", Message: "must be positive"})
		}
	}

	if in.PeopleIDs != nil {
		for _, id := range *in.PeopleIDs {
			if id <= 0 {
				fields = append(fields, domain.FieldError{Field: "peopleIds", Message: "must contain positive ids"})
				break
			}
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// Params translates the wire shape into update params. An explicit null id
// becomes a clear flag; an absent id leaves the column alone.
func (in *UpdateEntryInput) Params() domain.EntryUpdateParams {
	if in.Entry == nil {
		return domain.EntryUpdateParams{}
	}

	p := domain.EntryUpdateParams{
		Title:      in.Entry.Title,
		Content:    in.Entry.Content,
		IsFavorite: in.Entry.IsFavorite,
	}
	if in.Entry.EmotionID.Set {
		if in.Entry.EmotionID.Value == nil {
			p.ClearEmotion = true
		} else {
			p.EmotionID = in.Entry.EmotionID.Value
		}
	}
	if in.Entry.PlaceID.Set {
		if in.Entry.PlaceID.Value == nil {
			p.ClearPlace = true
		} else {
			p.PlaceID = in.Entry.PlaceID.Value
		}
	}
	return p
}
