// Package format holds the display helpers the itinerary API exposes to
// its clients: currency strings, date labels, and date-range expansion.
package format

import (
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "2006-01-02"

// Currency renders a whole-unit amount with its currency symbol. Unknown
// codes fall back to INR, the document default.
func Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.INR
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(int64(math.Round(amount)))))
}

// Date reformats a calendar date for display. Styles: "short" (2 Jan),
// "long" (Monday, 2 January 2006), "day" (Mon). Anything else, or an
// unparseable input, returns the input unchanged.
func Date(s, style string) string {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	switch style {
	case "short":
		return d.Format("2 Jan")
	case "long":
		return d.Format("Monday, 2 January 2006")
	case "day":
		return d.Format("Mon")
	}
	return s
}

// TripDuration counts calendar days covered by the range, inclusive of
// both endpoints. Zero when either date is malformed.
func TripDuration(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) + 1
}

// DateRange expands a start date into n consecutive dates.
func DateRange(startDate string, days int) []string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil || days <= 0 {
		return nil
	}
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates
}
