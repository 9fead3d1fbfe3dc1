package domain

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// Low availability threshold: a session is Low when available/total < 3/10.
const (
	lowRatioNumerator   = 3
	lowRatioDenominator = 10
)

// DaysPerWeek length of a WeekRange
const DaysPerWeek = 7

// SessionDurationMinutes every session is a fixed one-hour slot
const SessionDurationMinutes = 60
