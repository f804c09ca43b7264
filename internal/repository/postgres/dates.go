package postgres

import "time"

const dateLayout = "2006-01-02"

// Dates cross the domain boundary as YYYY-MM-DD strings and live in the
// store as date columns.

func toDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fromDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
