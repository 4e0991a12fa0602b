package domain

// Category groups lawsuits. The handle is the caller-chosen natural key and
// never changes after creation.
type Category struct {
	Handle       string
	Name         string
	NumEmployees int
	Description  string
}

// CategoryDetail is a category together with the lawsuits filed under it.
type CategoryDetail struct {
	Category
	Lawsuits []LawsuitSummary
}

// CategoryFilter narrows FindAll. Empty fields are ignored; supplied fields
// are matched as case-insensitive substrings and combined with AND.
type CategoryFilter struct {
	Name   string
	Handle string
}
