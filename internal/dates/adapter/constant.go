package adapter

// Output-token budgets per operation.
const (
	ParseDateMaxTokens   = 100
	ExtractDateMaxTokens = 150
)

// noDateToken is the second extraction line when the task has no date.
const noDateToken = "None"

// ParseDatePromptTemplate args: reference date, weekday, today, tomorrow,
// in 3 days, a week from today, phrase.
const ParseDatePromptTemplate = `Convert the following natural-language date expression into a calendar date.

Reference date (today): %s (%s)

Reply with ONLY the date in ISO 8601 format (YYYY-MM-DD). Do not add any other text.

Examples relative to the reference date:
"today" -> %s
"tomorrow" -> %s
"in 3 days" -> %s
"a week from today" -> %s

Date expression: "%s"`

// ExtractDatePromptTemplate args: task text, reference date, then the
// example dates for tomorrow, next Tuesday and in 3 days.
const ExtractDatePromptTemplate = `Analyze the following task description and extract any date information.

Task description: "%s"
Reference date (today): %s

Your response must be EXACTLY two lines:
1. First line: The task description with any date-related content removed
2. Second line: Either the ISO 8601 date (YYYY-MM-DD) if a date is mentioned, or the word "None" if no date is found

Examples:
Input: "Submit report tomorrow"
Output:
Submit report
%s

Input: "Review code by next Tuesday"
Output:
Review code
%s

Input: "Fix the authentication bug"
Output:
Fix the authentication bug
None

Input: "Deploy in 3 days"
Output:
Deploy
%s`
