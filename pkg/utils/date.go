package utils

import "time"

// ParseDate parses an optional yyyy-mm-dd value. An empty string is a valid
// absent date and yields nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
