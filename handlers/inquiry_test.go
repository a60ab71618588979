package handlers

import (
	"AsylenBackend/storage"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInquiryRejectsInvalidEmail(t *testing.T) {
	store := newFakeStore()
	ic := NewInquiryController(store)

	c, _ := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"name":"Asha","email":"not-an-email","message":"Interested in the villa"}`)
	err := ic.CreateInquiry(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, store.docs["inquiry"])
}

func TestCreateInquiryRejectsMissingFields(t *testing.T) {
	store := newFakeStore()
	ic := NewInquiryController(store)

	c, _ := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"email":"asha@example.com"}`)
	err := ic.CreateInquiry(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, store.docs["inquiry"])
}

func TestCreateInquiryWithoutStorage(t *testing.T) {
	ic := NewInquiryController(storage.New(nil))

	c, rec := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"name":"Asha","email":"asha@example.com","message":"Interested in the villa"}`)
	require.NoError(t, ic.CreateInquiry(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, false, body["persisted"])
}

func TestCreateInquiryPersists(t *testing.T) {
	store := newFakeStore()
	ic := NewInquiryController(store)

	c, rec := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"name":"Asha","email":"asha@example.com","phone":"+91 9000000000","message":"Interested in the villa","property_id":"abc123"}`)
	require.NoError(t, ic.CreateInquiry(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["id"])

	require.Len(t, store.docs["inquiry"], 1)
	doc := store.docs["inquiry"][0]
	assert.Equal(t, "asha@example.com", doc["email"])
	assert.Equal(t, "abc123", doc["property_id"])
}

func TestCreateInquiryInsertFailure(t *testing.T) {
	store := newFakeStore()
	store.createErr = errors.New("write rejected")
	ic := NewInquiryController(store)

	c, rec := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"name":"Asha","email":"asha@example.com","message":"Interested in the villa"}`)
	require.NoError(t, ic.CreateInquiry(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "write rejected")
}
