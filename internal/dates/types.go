package dates

import "nl-dates/pkg/datemath"

// --- Client Outputs ---

// Extraction is the two-line extraction reply before date validation.
type Extraction struct {
	CleanedText string
	RawDate     string // empty when HasDate is false
	HasDate     bool
}

// --- UseCase Inputs ---

// CalculateInput resolves Phrase against ReferenceDate (today when nil).
// Client overrides the default slot when non-nil.
type CalculateInput struct {
	Phrase        string
	ReferenceDate *datemath.Date
	Client        Client
}

type ExtractInput struct {
	TaskText      string
	ReferenceDate *datemath.Date
	Client        Client
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	CleanedText string
	Date        *datemath.Date // nil when the task mentions no date
}
