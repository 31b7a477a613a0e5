package handlers

import (
	"net/http"
	"testing"

	"quickdesk-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Live(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health/live", NewHealthHandler(nil).Live)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
