package trip

import "time"

// Feasibility is the derived pacing label stored on a Day. It is recomputed
// by the repository whenever the day's activity list changes and is never
// settable through the API.
type Feasibility string

const (
	FeasibilitySmooth     Feasibility = "smooth"
	FeasibilityTight      Feasibility = "tight"
	FeasibilityOverloaded Feasibility = "overloaded"
)

// Rank orders labels by severity: smooth < tight < overloaded.
func (f Feasibility) Rank() int {
	switch f {
	case FeasibilityTight:
		return 1
	case FeasibilityOverloaded:
		return 2
	}
	return 0
}

type ActivityType string

const (
	TypeTransport     ActivityType = "transport"
	TypeAccommodation ActivityType = "accommodation"
	TypeSightseeing   ActivityType = "sightseeing"
	TypeFood          ActivityType = "food"
	TypeShopping      ActivityType = "shopping"
	TypeEntertainment ActivityType = "entertainment"
	TypeExperience    ActivityType = "experience"
	TypeWellness      ActivityType = "wellness"
	TypeAdventure     ActivityType = "adventure"
	TypeBeach         ActivityType = "beach"
	TypeCulture       ActivityType = "culture"
	TypeNightlife     ActivityType = "nightlife"
	TypeOther         ActivityType = "other"
)

var knownActivityTypes = map[ActivityType]struct{}{
	TypeTransport: {}, TypeAccommodation: {}, TypeSightseeing: {}, TypeFood: {},
	TypeShopping: {}, TypeEntertainment: {}, TypeExperience: {}, TypeWellness: {},
	TypeAdventure: {}, TypeBeach: {}, TypeCulture: {}, TypeNightlife: {}, TypeOther: {},
}

// NormalizeActivityType maps unknown or empty type tags to "other".
func NormalizeActivityType(t ActivityType) ActivityType {
	if _, ok := knownActivityTypes[t]; ok {
		return t
	}
	return TypeOther
}

type Trip struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CoverImage    string    `json:"coverImage,omitempty"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TravelerCount int       `json:"travelerCount"`
	TotalBudget   float64   `json:"totalBudget"`
	Currency      string    `json:"currency"`
	TripType      string    `json:"tripType,omitempty"`
	Status        string    `json:"status"`
	IsPublic      bool      `json:"isPublic"`
	ShareID       string    `json:"shareId,omitempty"`
	Cities        []City    `json:"cities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image,omitempty"`
	Order   int    `json:"order"`
	Days    []Day  `json:"days"`
}

type Day struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	DayNumber   int         `json:"dayNumber"`
	Feasibility Feasibility `json:"feasibility"`
	Activities  []Activity  `json:"activities"`
}

// Activity holds one scheduled item. Duration is a pointer because the
// document model distinguishes "not set" from an explicit 0, and the two
// feed different defaults into the schedule math.
type Activity struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     ActivityType `json:"type"`
	Time     string       `json:"time"`
	Duration *int         `json:"duration,omitempty"`
	Cost     float64      `json:"cost"`
	Notes    string       `json:"notes,omitempty"`
}

// TripPatch carries a partial trip update; nil fields are left untouched.
// Replacing Cities wholesale triggers a feasibility recompute on every day.
type TripPatch struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	CoverImage    *string  `json:"coverImage"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	TravelerCount *int     `json:"travelerCount"`
	TotalBudget   *float64 `json:"totalBudget"`
	Currency      *string  `json:"currency"`
	TripType      *string  `json:"tripType"`
	Status        *string  `json:"status"`
	IsPublic      *bool    `json:"isPublic"`
	Cities        *[]City  `json:"cities"`
}

type CityPatch struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Image   *string `json:"image"`
}

type ActivityPatch struct {
	Name     *string       `json:"name"`
	Type     *ActivityType `json:"type"`
	Time     *string       `json:"time"`
	Duration *int          `json:"duration"`
	Cost     *float64      `json:"cost"`
	Notes    *string       `json:"notes"`
}

// MoveRequest names an activity move between two days, possibly across
// cities or within a single day.
type MoveRequest struct {
	SourceCityID string `json:"sourceCityId"`
	SourceDayID  string `json:"sourceDayId"`
	DestCityID   string `json:"destCityId"`
	DestDayID    string `json:"destDayId"`
	ActivityID   string `json:"activityId"`
	DestIndex    int    `json:"destIndex"`
}

type BudgetSummary struct {
	Total          float64         `json:"total"`
	ByCategory     []CategoryTotal `json:"byCategory"`
	ByDay          []DayBudget     `json:"byDay"`
	ByCity         []CityBudget    `json:"byCity"`
	OverBudgetDays []OverBudgetDay `json:"overBudgetDays"`
	DailyAverage   float64         `json:"dailyAverage"`
	PerPersonDaily float64         `json:"perPersonDaily"`
	Remaining      float64         `json:"remaining"`
	PercentUsed    float64         `json:"percentUsed"`
	// Display strings carry the trip currency's symbol for clients that
	// render the summary verbatim.
	DisplayTotal     string `json:"displayTotal"`
	DisplayRemaining string `json:"displayRemaining"`
}

// CategoryTotal entries keep first-encountered traversal order.
type CategoryTotal struct {
	Type  ActivityType `json:"type"`
	Total float64      `json:"total"`
}

type DayBudget struct {
	Date          string      `json:"date"`
	DayNumber     int         `json:"dayNumber"`
	City          string      `json:"city"`
	Total         float64     `json:"total"`
	ActivityCount int         `json:"activityCount"`
	Feasibility   Feasibility `json:"feasibility"`
}

type CityBudget struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Days  int     `json:"days"`
}

type OverBudgetDay struct {
	Date      string  `json:"date"`
	DayNumber int     `json:"dayNumber"`
	City      string  `json:"city"`
	Spent     float64 `json:"spent"`
	Threshold float64 `json:"threshold"`
	Excess    float64 `json:"excess"`
}
