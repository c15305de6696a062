// Package dasha computes Vimshottari planetary period timelines.
package dasha

import (
	"time"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/zerr"
)

const day = 24 * time.Hour

// YearsDuration converts Vimshottari years into a duration of 365.25-day years.
func YearsDuration(years float64) time.Duration {
	return time.Duration(years * domain.DaysPerYear * float64(day))
}

// CycleDuration is the length of one full 120-year cycle.
func CycleDuration() time.Duration {
	return YearsDuration(domain.VimshottariCycleYears)
}

// StartingLord returns the mahadasha lord in force at birth for a Moon nakshatra.
func StartingLord(nakshatra int) domain.Planet {
	return domain.NakshatraLord(nakshatra)
}

// BuildTimeline derives the nine mahadashas that follow birth.
//
// The first period is the unelapsed balance of the starting lord, proportional to
// the part of the nakshatra the Moon has not yet traversed. Every later period has
// its full length.
func BuildTimeline(nakshatra int, fractionElapsed float64, birth time.Time) []domain.DashaPeriod {
	if fractionElapsed < 0 || fractionElapsed >= 1 {
		fractionElapsed = 0
	}

	lord := StartingLord(nakshatra)
	periods := make([]domain.DashaPeriod, 0, len(domain.VimshottariOrder))

	balance := YearsDuration((1 - fractionElapsed) * domain.PeriodYears(lord))
	periods = append(periods, domain.DashaPeriod{Lord: lord, Start: birth, End: birth.Add(balance)})

	cursor := birth.Add(balance)
	for range len(domain.VimshottariOrder) - 1 {
		lord = domain.NextDashaLord(lord)
		end := cursor.Add(YearsDuration(domain.PeriodYears(lord)))
		periods = append(periods, domain.DashaPeriod{Lord: lord, Start: cursor, End: end})
		cursor = end
	}

	return periods
}

// FullCycle returns the nine full-length mahadashas beginning with lord at from.
func FullCycle(lord domain.Planet, from time.Time) []domain.DashaPeriod {
	periods := make([]domain.DashaPeriod, 0, len(domain.VimshottariOrder))
	cursor := from
	for range len(domain.VimshottariOrder) {
		end := cursor.Add(YearsDuration(domain.PeriodYears(lord)))
		periods = append(periods, domain.DashaPeriod{Lord: lord, Start: cursor, End: end})
		cursor = end
		lord = domain.NextDashaLord(lord)
	}
	return periods
}

// Locate returns the period containing at, with its progress filled in.
// Instants past the end of the timeline continue into subsequent full cycles.
func Locate(timeline []domain.DashaPeriod, at time.Time) (domain.DashaPeriod, error) {
	if len(timeline) == 0 {
		return domain.DashaPeriod{}, domain.ErrEmptyTimeline
	}
	if at.Before(timeline[0].Start) {
		err := zerr.With(domain.ErrQueryBeforeBirth, "at", at.Format(time.RFC3339))
		return domain.DashaPeriod{}, zerr.With(err, "birth", timeline[0].Start.Format(time.RFC3339))
	}

	for _, p := range timeline {
		if p.Contains(at) {
			return withProgress(p, at), nil
		}
	}

	last := timeline[len(timeline)-1]
	cycleStart := last.End
	cycle := CycleDuration()
	for !at.Before(cycleStart.Add(cycle)) {
		cycleStart = cycleStart.Add(cycle)
	}

	for _, p := range FullCycle(domain.NextDashaLord(last.Lord), cycleStart) {
		if p.Contains(at) {
			return withProgress(p, at), nil
		}
	}

	// Unreachable: the nine periods tile the cycle.
	return domain.DashaPeriod{}, zerr.With(domain.ErrEmptyTimeline, "at", at.Format(time.RFC3339))
}

// Antardashas splits a mahadasha into its nine sub-periods.
//
// Sub-periods are laid out from the nominal start of the full-length mahadasha and
// clipped to the period's actual bounds, so a birth balance period only keeps the
// sub-periods that remain.
func Antardashas(maha domain.DashaPeriod) []domain.DashaPeriod {
	full := YearsDuration(domain.PeriodYears(maha.Lord))
	cursor := maha.End.Add(-full)
	lord := maha.Lord

	subs := make([]domain.DashaPeriod, 0, len(domain.VimshottariOrder))
	for i := range len(domain.VimshottariOrder) {
		length := time.Duration(float64(full) * domain.PeriodYears(lord) / domain.VimshottariCycleYears)
		end := cursor.Add(length)
		if i == len(domain.VimshottariOrder)-1 {
			end = maha.End
		}

		if end.After(maha.Start) {
			start := cursor
			if start.Before(maha.Start) {
				start = maha.Start
			}
			subs = append(subs, domain.DashaPeriod{Lord: lord, Start: start, End: end})
		}

		cursor = end
		lord = domain.NextDashaLord(lord)
	}
	return subs
}

// Active returns the mahadasha and antardasha running at the given instant.
func Active(timeline []domain.DashaPeriod, at time.Time) (domain.ActiveDasha, error) {
	maha, err := Locate(timeline, at)
	if err != nil {
		return domain.ActiveDasha{}, err
	}

	active := domain.ActiveDasha{At: at, Mahadasha: maha}
	for _, sub := range Antardashas(maha) {
		if sub.Contains(at) {
			active.Antardasha = withProgress(sub, at)
			break
		}
	}
	return active, nil
}

func withProgress(p domain.DashaPeriod, at time.Time) domain.DashaPeriod {
	total := p.Duration()
	if total <= 0 {
		p.Progress = 0
		return p
	}
	p.Progress = float64(at.Sub(p.Start)) / float64(total)
	return p
}
