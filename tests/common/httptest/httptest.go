//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Identity is the caller identity injected via the trusted proxy headers.
type Identity struct {
	UserID     string
	Role       string
	BuildingID string
}

func Resident(userID, buildingID string) Identity {
	return Identity{UserID: userID, Role: "RESIDENT", BuildingID: buildingID}
}

func Admin(userID string) Identity {
	return Identity{UserID: userID, Role: "ADMIN"}
}

// executes HTTP request with optional identity headers
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, identity Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if identity.UserID != "" {
		req.Header.Set("X-User-ID", identity.UserID)
	}
	if identity.Role != "" {
		req.Header.Set("X-User-Role", identity.Role)
	}
	if identity.BuildingID != "" {
		req.Header.Set("X-User-Building-ID", identity.BuildingID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
