package domain

import "time"

// Lawsuit is a tracked legal matter. ID is assigned by the store and never reused.
type Lawsuit struct {
	ID             int64
	Title          string
	Description    string
	Comment        string
	Location       string
	CategoryHandle *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LawsuitSummary is the short form embedded in category listings.
type LawsuitSummary struct {
	ID          int64
	Title       string
	Description string
	Comment     string
	Location    string
}

// LawsuitListItem is a lawsuit row joined with its category name.
type LawsuitListItem struct {
	Lawsuit
	CategoryName *string
}

// LawsuitDetail is a lawsuit with its category attached (nil when uncategorised).
type LawsuitDetail struct {
	Lawsuit
	Category *Category
}

// LawsuitFilter narrows FindAll. Title is a case-insensitive substring,
// CategoryHandle an exact match.
type LawsuitFilter struct {
	Title          string
	CategoryHandle string
}
