package domain

import (
	"slices"
	"time"
)

// Typography option lists. The frontend renders exactly these choices; the
// backend rejects anything else.
var (
	FontFamilies = []string{"Poppins", "Lato", "Roboto", "Merriweather", "Montserrat"}
	FontSizes    = []string{"small", "medium", "large", "x-large"}
	TextColors   = []string{"default", "dark", "blue", "green", "purple", "red"}
)

// UserSettings holds per-user typography preferences.
type UserSettings struct {
	UserID     int64
	FontFamily string
	FontSize   string
	TextColor  string
	UpdatedAt  time.Time
}

// DefaultUserSettings returns UserSettings with the default typography.
func DefaultUserSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:     userID,
		FontFamily: "Poppins",
		FontSize:   "medium",
		TextColor:  "default",
	}
}

// IsValidFontFamily reports whether s is an allowed font family.
func IsValidFontFamily(s string) bool { return slices.Contains(FontFamilies, s) }

// IsValidFontSize reports whether s is an allowed font size.
func IsValidFontSize(s string) bool { return slices.Contains(FontSizes, s) }

// IsValidTextColor reports whether s is an allowed text color.
func IsValidTextColor(s string) bool { return slices.Contains(TextColors, s) }
