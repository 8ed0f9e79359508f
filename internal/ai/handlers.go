package ai

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, gw *Gateway, authMiddleware fiber.Handler) {
	r.Post("/suggestions", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			CityName string `json:"cityName"`
			Country  string `json:"country"`
			TripType string `json:"tripType"`
			Budget   string `json:"budget"`
		}
		if err := c.BodyParser(&body); err != nil || body.CityName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "cityName required")
		}
		suggestions := gw.ActivitySuggestions(c.Context(), body.CityName, body.Country, body.TripType, body.Budget)
		return c.JSON(fiber.Map{"suggestions": suggestions})
	})

	r.Post("/day-summary", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			CityName   string   `json:"cityName"`
			Activities []string `json:"activities"`
		}
		if err := c.BodyParser(&body); err != nil || body.CityName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "cityName required")
		}
		return c.JSON(fiber.Map{"summary": gw.DaySummary(c.Context(), body.CityName, body.Activities)})
	})

	r.Post("/packing-list", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Destinations []string `json:"destinations"`
			Duration     int      `json:"duration"`
			TripType     string   `json:"tripType"`
		}
		if err := c.BodyParser(&body); err != nil || len(body.Destinations) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "destinations required")
		}
		return c.JSON(gw.PackingList(c.Context(), body.Destinations, body.Duration, body.TripType))
	})

	r.Post("/travel-tips", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			CityName string `json:"cityName"`
			Country  string `json:"country"`
		}
		if err := c.BodyParser(&body); err != nil || body.CityName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "cityName required")
		}
		return c.JSON(fiber.Map{"tips": gw.TravelTips(c.Context(), body.CityName, body.Country)})
	})
}
