package ai

const defaultDaySummary = "An exciting day of exploration awaits!"

func defaultSuggestions(cityName string) []Suggestion {
	return []Suggestion{
		{Name: "Explore " + cityName + " Old Town", Type: "sightseeing", Duration: 180, EstimatedCost: 0},
		{Name: "Local Food Tour", Type: "food", Duration: 120, EstimatedCost: 800},
		{Name: "Sunset Viewpoint", Type: "experience", Duration: 90, EstimatedCost: 200},
		{Name: "Local Market Visit", Type: "shopping", Duration: 120, EstimatedCost: 1000},
		{Name: "Cultural Performance", Type: "entertainment", Duration: 120, EstimatedCost: 500},
	}
}

func defaultPackingList() PackingList {
	return PackingList{
		Essentials:  []string{"Passport", "Wallet", "Phone", "Charger", "Medications"},
		Clothing:    []string{"Comfortable shoes", "Light jacket", "Casual wear", "Sleepwear"},
		Toiletries:  []string{"Toothbrush", "Sunscreen", "Shampoo", "Deodorant"},
		Electronics: []string{"Phone charger", "Power bank", "Camera", "Headphones"},
		Documents:   []string{"ID copies", "Travel insurance", "Booking confirmations", "Emergency contacts"},
		Misc:        []string{"Snacks", "Water bottle", "Umbrella", "First aid kit"},
	}
}
