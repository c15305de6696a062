package domain

import "time"

// DashaPeriod is one planetary period. Start is inclusive, End exclusive.
type DashaPeriod struct {
	Lord     Planet    `json:"lord"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Progress float64   `json:"progress"`
}

// Contains reports whether t lies in [Start, End).
func (d DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}

// Duration returns the length of the period.
func (d DashaPeriod) Duration() time.Duration {
	return d.End.Sub(d.Start)
}

// ActiveDasha is the mahadasha and antardasha running at a query instant.
type ActiveDasha struct {
	At         time.Time   `json:"at"`
	Mahadasha  DashaPeriod `json:"mahadasha"`
	Antardasha DashaPeriod `json:"antardasha"`
}
