package utils

import "time"

const isoDate = "2006-01-02"

// FormatDateToLocal renders an ISO date ("2022-12-06") as "Dec 6, 2022".
// Input that is not an ISO date is returned unchanged.
func FormatDateToLocal(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
