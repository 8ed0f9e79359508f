package trip

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	// Shared-trip read path stays public; register before /:id so the
	// literal segment wins.
	r.Get("/shared/:shareId", func(c *fiber.Ctx) error {
		t, err := svc.SharedTrip(c.Context(), c.Params("shareId"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(svc.Trips(c.Context()))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Trip
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.CreateTrip(c.Context(), req)
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		t, err := svc.GetTrip(c.Context(), c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var patch TripPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.UpdateTrip(c.Context(), c.Params("id"), patch)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.DeleteTrip(c.Context(), c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/:id/budget", authMiddleware, func(c *fiber.Ctx) error {
		summary, err := svc.TripBudget(c.Context(), c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summary)
	})

	r.Post("/:id/share", authMiddleware, func(c *fiber.Ctx) error {
		url, err := svc.GenerateShareLink(c.Context(), c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"shareUrl": url})
	})

	r.Post("/:id/copy", authMiddleware, func(c *fiber.Ctx) error {
		t, err := svc.CopyTrip(c.Context(), c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Post("/:id/cities", authMiddleware, func(c *fiber.Ctx) error {
		var req City
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.AddCity(c.Context(), c.Params("id"), req)
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Put("/:id/cities/:cityId", authMiddleware, func(c *fiber.Ctx) error {
		var patch CityPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.UpdateCity(c.Context(), c.Params("id"), c.Params("cityId"), patch)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Delete("/:id/cities/:cityId", authMiddleware, func(c *fiber.Ctx) error {
		t, err := svc.RemoveCity(c.Context(), c.Params("id"), c.Params("cityId"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Post("/:id/cities/reorder", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			SourceIndex int `json:"sourceIndex"`
			DestIndex   int `json:"destIndex"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.ReorderCities(c.Context(), c.Params("id"), body.SourceIndex, body.DestIndex)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Post("/:id/cities/:cityId/days", authMiddleware, func(c *fiber.Ctx) error {
		var req Day
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.AddDay(c.Context(), c.Params("id"), c.Params("cityId"), req)
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Post("/:id/cities/:cityId/days/:dayId/activities", authMiddleware, func(c *fiber.Ctx) error {
		var req Activity
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.AddActivity(c.Context(), c.Params("id"), c.Params("cityId"), c.Params("dayId"), req)
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Put("/:id/cities/:cityId/days/:dayId/activities/:activityId", authMiddleware, func(c *fiber.Ctx) error {
		var patch ActivityPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.UpdateActivity(c.Context(), c.Params("id"), c.Params("cityId"), c.Params("dayId"), c.Params("activityId"), patch)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Delete("/:id/cities/:cityId/days/:dayId/activities/:activityId", authMiddleware, func(c *fiber.Ctx) error {
		t, err := svc.RemoveActivity(c.Context(), c.Params("id"), c.Params("cityId"), c.Params("dayId"), c.Params("activityId"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})

	r.Post("/:id/activities/move", authMiddleware, func(c *fiber.Ctx) error {
		var mv MoveRequest
		if err := c.BodyParser(&mv); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		t, err := svc.MoveActivity(c.Context(), c.Params("id"), mv)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(t)
	})
}

func httpError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
