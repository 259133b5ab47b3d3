package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/site-backend/models"
	"github.com/brightforge/site-backend/services"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitContact_ValidationFailureReturns400(t *testing.T) {
	router, db := setupTestServer(t, nil, "")

	rec := postJSON(router, "/contact", `{"name":"A","email":"not-an-email","service":"Web Development"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result services.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Contains(t, result.FieldErrors, "name")
	assert.Contains(t, result.FieldErrors, "email")

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Zero(t, count, "invalid submission must not be stored")
}

func TestSubmitContact_ValidReturns201AndStoresRow(t *testing.T) {
	router, db := setupTestServer(t, nil, "")

	rec := postJSON(router, "/contact", `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"service": "Graphic Design",
		"message": "Need a rebrand."
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var result services.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Empty(t, result.FieldErrors)

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitContact_MalformedJSONReturns400(t *testing.T) {
	router, _ := setupTestServer(t, nil, "")

	rec := postJSON(router, "/contact", `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeNewsletter_FirstThenDuplicate(t *testing.T) {
	router, _ := setupTestServer(t, nil, "")

	first := postJSON(router, "/newsletter", `{"email":"reader@example.com"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(router, "/newsletter", `{"email":"Reader@Example.com"}`)
	require.Equal(t, http.StatusConflict, second.Code)

	var result services.SubmitResult
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &result))
	assert.Equal(t, services.DuplicateSubscriberMessage, result.Message)
}

func TestSubscribeNewsletter_InvalidEmailReturns400(t *testing.T) {
	router, _ := setupTestServer(t, nil, "")

	rec := postJSON(router, "/newsletter", `{"email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var result services.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.FieldErrors, "email")
}
