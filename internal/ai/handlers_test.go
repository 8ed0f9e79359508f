package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T, gw *Gateway) *fiber.App {
	t.Helper()
	app := fiber.New()
	passthrough := func(c *fiber.Ctx) error { return c.Next() }
	RegisterRoutes(app.Group("/ai"), gw, passthrough)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	return resp
}

func TestSuggestionsRoute(t *testing.T) {
	srv := fakeModel(t, `[{"name":"Ghat Walk","type":"sightseeing","duration":60,"estimatedCost":0}]`)
	app := newTestApp(t, NewGateway("test-key", srv.URL))

	resp := postJSON(t, app, "/ai/suggestions", `{"cityName":"Varanasi","country":"India"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	var body struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Suggestions) != 1 || body.Suggestions[0].Name != "Ghat Walk" {
		t.Fatalf("unexpected suggestions: %+v", body.Suggestions)
	}
}

func TestSuggestionsRouteRequiresCity(t *testing.T) {
	app := newTestApp(t, NewGateway("", ""))
	resp := postJSON(t, app, "/ai/suggestions", `{"country":"India"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDaySummaryRoute(t *testing.T) {
	srv := fakeModel(t, "Temple mornings, market evenings.")
	app := newTestApp(t, NewGateway("test-key", srv.URL))

	resp := postJSON(t, app, "/ai/day-summary", `{"cityName":"Madurai","activities":["Meenakshi Temple"]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Summary != "Temple mornings, market evenings." {
		t.Fatalf("summary = %q", body.Summary)
	}
}

func TestPackingListRouteRequiresDestinations(t *testing.T) {
	app := newTestApp(t, NewGateway("", ""))
	resp := postJSON(t, app, "/ai/packing-list", `{"duration":4}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPackingListRoute(t *testing.T) {
	// No key configured: the route still answers with the canned list.
	app := newTestApp(t, NewGateway("", ""))

	resp := postJSON(t, app, "/ai/packing-list", `{"destinations":["Goa"],"duration":4,"tripType":"beach"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	var list PackingList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Essentials) == 0 {
		t.Fatalf("expected fallback essentials, got %+v", list)
	}
}

func TestTravelTipsRoute(t *testing.T) {
	srv := fakeModel(t, `[{"tip":"Haggle politely","category":"culture"}]`)
	app := newTestApp(t, NewGateway("test-key", srv.URL))

	resp := postJSON(t, app, "/ai/travel-tips", `{"cityName":"Jaipur","country":"India"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()
	var body struct {
		Tips []Tip `json:"tips"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Tips) != 1 || body.Tips[0].Category != "culture" {
		t.Fatalf("unexpected tips: %+v", body.Tips)
	}
}
