package handlers

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

type HealthController struct {
	store Store
}

func NewHealthController(store Store) *HealthController {
	return &HealthController{store: store}
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Asylen Ventures Backend Running"})
}

func (hc *HealthController) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// TestDatabase reports backend and database status. Each sub-check
// degrades on its own; the endpoint always answers 200.
func (hc *HealthController) TestDatabase(c echo.Context) error {
	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if hc.store.Available() {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		names, err := hc.store.CollectionNames(c.Request().Context())
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	return c.JSON(http.StatusOK, response)
}

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
