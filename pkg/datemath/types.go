package datemath

// DateLayout is the calendar-date wire format (ISO 8601 date).
const DateLayout = "2006-01-02"
