package trip

import "backend-globetrotter/internal/shared/format"

// overBudgetFactor flags a day once it spends more than 1.2x the even
// per-day share of the trip budget.
const overBudgetFactor = 1.2

// AggregateBudget walks the trip tree once and returns a fresh summary.
// It never mutates the trip and relies on no cached state, so callers can
// re-run it after every mutation. Day feasibility is reported as stored,
// not recomputed.
func AggregateBudget(t *Trip) BudgetSummary {
	summary := BudgetSummary{
		ByCategory:     []CategoryTotal{},
		ByDay:          []DayBudget{},
		ByCity:         []CityBudget{},
		OverBudgetDays: []OverBudgetDay{},
	}
	if t == nil {
		return summary
	}

	totalDays := 0
	for _, city := range t.Cities {
		totalDays += len(city.Days)
	}

	denominator := float64(totalDays)
	if totalDays == 0 {
		denominator = 1
	}
	dailyThreshold := t.TotalBudget / denominator

	categoryIndex := map[ActivityType]int{}

	for _, city := range t.Cities {
		cityTotal := 0.0

		for _, day := range city.Days {
			dayTotal := 0.0

			for _, activity := range day.Activities {
				dayTotal += activity.Cost
				summary.Total += activity.Cost

				category := NormalizeActivityType(activity.Type)
				idx, seen := categoryIndex[category]
				if !seen {
					categoryIndex[category] = len(summary.ByCategory)
					summary.ByCategory = append(summary.ByCategory, CategoryTotal{Type: category})
					idx = len(summary.ByCategory) - 1
				}
				summary.ByCategory[idx].Total += activity.Cost
			}

			summary.ByDay = append(summary.ByDay, DayBudget{
				Date:          day.Date,
				DayNumber:     day.DayNumber,
				City:          city.Name,
				Total:         dayTotal,
				ActivityCount: len(day.Activities),
				Feasibility:   day.Feasibility,
			})

			cityTotal += dayTotal

			if limit := dailyThreshold * overBudgetFactor; dayTotal > limit {
				summary.OverBudgetDays = append(summary.OverBudgetDays, OverBudgetDay{
					Date:      day.Date,
					DayNumber: day.DayNumber,
					City:      city.Name,
					Spent:     dayTotal,
					Threshold: dailyThreshold,
					Excess:    dayTotal - limit,
				})
			}
		}

		summary.ByCity = append(summary.ByCity, CityBudget{
			ID:    city.ID,
			Name:  city.Name,
			Total: cityTotal,
			Days:  len(city.Days),
		})
	}

	if totalDays > 0 {
		summary.DailyAverage = summary.Total / float64(totalDays)
		if t.TravelerCount > 0 {
			summary.PerPersonDaily = summary.DailyAverage / float64(t.TravelerCount)
		}
	}
	summary.Remaining = t.TotalBudget - summary.Total
	if t.TotalBudget != 0 {
		summary.PercentUsed = summary.Total / t.TotalBudget * 100
	}
	summary.DisplayTotal = format.Currency(summary.Total, t.Currency)
	summary.DisplayRemaining = format.Currency(summary.Remaining, t.Currency)

	return summary
}
