package handlers

import (
	"AsylenBackend/models"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

type InquiryController struct {
	store      Store
	collection string
}

func NewInquiryController(store Store) *InquiryController {
	collectionName := os.Getenv("MONGODB_COLLECTION_INQUIRY")
	if collectionName == "" {
		collectionName = "inquiry"
	}
	return &InquiryController{
		store:      store,
		collection: collectionName,
	}
}

func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&inquiry); err != nil {
		return err
	}

	if !ic.store.Available() {
		// Accept but do not persist.
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "accepted",
			"persisted": false,
		})
	}

	id, err := ic.store.CreateDocument(c.Request().Context(), ic.collection, inquiry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"id":     id,
	})
}
