package routes

import (
	"AsylenBackend/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, store handlers.Store) {
	healthController := handlers.NewHealthController(store)
	e.GET("/", healthController.Root)
	e.GET("/api/hello", healthController.Hello)
	e.GET("/test", healthController.TestDatabase)

	propertyController := handlers.NewPropertyController(store)
	e.GET("/api/properties", propertyController.ListProperties)
	e.GET("/api/properties/featured", propertyController.FeaturedProperties)

	inquiryController := handlers.NewInquiryController(store)
	e.POST("/api/inquiries", inquiryController.CreateInquiry)
}
