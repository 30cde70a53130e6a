package entity

import "fmt"

// Period identifies a bookkeeping month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod builds a Period from a year and a month.
func NewPeriod(year, month int) Period {
	return Period{Year: year, Month: month}
}

// Valid reports whether the month is within 1..12.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12
}

// Previous returns the month before p. January rolls back to December of the previous year.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Next returns the month after p. December rolls over to January of the next year.
func (p Period) Next() Period {
	if p.Month >= 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// String renders the period as month/year, e.g. "3/2025".
func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

// Label renders the period as YYYY-MM, used for sortable report columns.
func (p Period) Label() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
