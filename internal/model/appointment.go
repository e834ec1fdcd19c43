package model

import "time"

// Category classifies an appointment for dashboard grouping.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

// colorCategories maps Google Calendar colorId values to categories.
// Kept as a table so new color codes can be added without touching
// CategoryFromColorID.
var colorCategories = map[string]Category{
	"1": CategoryPersonal, // Lavender
	"2": CategoryHealth,   // Sage
	"5": CategoryWork,     // Yellow
}

// CategoryFromColorID resolves a calendar colorId to a Category.
// Unknown or empty color codes fall back to CategoryOther.
func CategoryFromColorID(colorID string) Category {
	if cat, ok := colorCategories[colorID]; ok {
		return cat
	}
	return CategoryOther
}

// Appointment is a calendar event as tracked for the session.
// Identity is assigned by the remote calendar on creation; appointments are
// never synthesized locally and are immutable once created.
type Appointment struct {
	ID          string
	Title       string
	Date        time.Time
	Attendees   []string
	Category    Category
	Description string
}
