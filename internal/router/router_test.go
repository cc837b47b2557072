package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/config"
	"plantstore/internal/db"
	"plantstore/internal/models"
	"plantstore/internal/services"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		JWTSecret:  testSecret,
		CORSOrigin: "*",
		BcryptCost: 4,
		TokenTTL:   time.Hour,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := New(db.NewMemoryUsers(), db.NewMemoryPlants(), testConfig(), zerolog.Nop())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// do sends a JSON request, optionally with a bearer token, and decodes the
// JSON response body into a generic map.
func do(t *testing.T, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	status, raw := doRaw(t, method, url, token, body)
	if len(raw) == 0 {
		return status, nil
	}
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return status, decoded
}

func doRaw(t *testing.T, method, url, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, raw
}

// register + login, returning the token and the userId claim.
func registerAndLogin(t *testing.T, baseURL, username, password string, admin bool) (string, string) {
	t.Helper()
	status, _ := do(t, http.MethodPost, baseURL+"/api/register", "", map[string]interface{}{
		"username": username, "password": password, "admin": admin,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, http.MethodPost, baseURL+"/api/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := services.NewAuthService(testSecret, time.Hour, zerolog.Nop()).Verify(token)
	require.NoError(t, err)
	return token, claims.UserID
}

func TestAccountAndCartScenario(t *testing.T) {
	srv := newTestServer(t)

	// register
	status, body := do(t, http.MethodPost, srv.URL+"/api/register", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, false, body["admin"])
	assert.NotContains(t, body, "password")

	// login
	status, body = do(t, http.MethodPost, srv.URL+"/api/login", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// wrong password
	status, body = do(t, http.MethodPost, srv.URL+"/api/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	claims, err := services.NewAuthService(testSecret, time.Hour, zerolog.Nop()).Verify(token)
	require.NoError(t, err)
	userID := claims.UserID

	// profile, password excluded
	status, body = do(t, http.MethodGet, srv.URL+"/api/user/"+userID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password")

	// cart add
	plantID := primitive.NewObjectID().Hex()
	status, _ = do(t, http.MethodPut, srv.URL+"/api/user/"+userID+"/cart", token, map[string]string{
		"plantId": plantID,
	})
	require.Equal(t, http.StatusOK, status)

	// cart read
	status, raw := doRaw(t, http.MethodGet, srv.URL+"/api/user/"+userID+"/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(raw, &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, plantID, cart[0]["plantId"])

	// cart remove
	status, _ = do(t, http.MethodDelete, srv.URL+"/api/user/"+userID+"/cart/"+plantID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, raw = doRaw(t, http.MethodGet, srv.URL+"/api/user/"+userID+"/cart", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &cart))
	assert.Empty(t, cart)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv := newTestServer(t)

	status, _ := do(t, http.MethodPost, srv.URL+"/api/register", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, http.MethodPost, srv.URL+"/api/register", "", map[string]string{
		"username": "alice", "password": "pw2",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])
}

func TestLoginEnumerationSafe(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv.URL, "alice", "pw1", false)

	_, wrongPassword := do(t, http.MethodPost, srv.URL+"/api/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	_, unknownUser := do(t, http.MethodPost, srv.URL+"/api/login", "", map[string]string{
		"username": "mallory", "password": "wrong",
	})
	assert.Equal(t, wrongPassword["error"], unknownUser["error"])
}

func TestAuthMiddleware(t *testing.T) {
	srv := newTestServer(t)
	_, userID := registerAndLogin(t, srv.URL, "alice", "pw1", false)

	// no token
	status, body := do(t, http.MethodGet, srv.URL+"/api/user/"+userID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])

	// malformed token
	status, body = do(t, http.MethodGet, srv.URL+"/api/user/"+userID, "not-a-jwt", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid token", body["error"])

	// expired token
	expired, err := services.NewAuthService(testSecret, -time.Minute, zerolog.Nop()).Issue(userID, false)
	require.NoError(t, err)
	status, body = do(t, http.MethodGet, srv.URL+"/api/user/"+userID, expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "token has expired", body["error"])
}

func TestUserLookupFailures(t *testing.T) {
	srv := newTestServer(t)
	token, _ := registerAndLogin(t, srv.URL, "alice", "pw1", false)

	status, _ := do(t, http.MethodGet, srv.URL+"/api/user/not-hex", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/api/user/"+primitive.NewObjectID().Hex(), token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, http.MethodPut, srv.URL+"/api/user/not-hex/cart", token, map[string]string{"plantId": "p"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, http.MethodPut, srv.URL+"/api/user/"+primitive.NewObjectID().Hex()+"/cart", token, map[string]string{"plantId": "p"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCatalogPublicReadsAndAdminGate(t *testing.T) {
	srv := newTestServer(t)

	// reads need no token
	status, raw := doRaw(t, http.MethodGet, srv.URL+"/api/plants", "", nil)
	require.Equal(t, http.StatusOK, status)
	var plants []models.Plant
	require.NoError(t, json.Unmarshal(raw, &plants))
	assert.Empty(t, plants)

	// mutations need an admin token
	plant := map[string]interface{}{"plant_name": "Basil", "family_name": "Lamiaceae", "edible": true}

	status, _ = do(t, http.MethodPost, srv.URL+"/api/plants", "", plant)
	assert.Equal(t, http.StatusUnauthorized, status)

	userToken, _ := registerAndLogin(t, srv.URL, "bob", "pw", false)
	status, _ = do(t, http.MethodPost, srv.URL+"/api/plants", userToken, plant)
	assert.Equal(t, http.StatusForbidden, status)

	adminToken, _ := registerAndLogin(t, srv.URL, "root", "pw", true)
	status, body := do(t, http.MethodPost, srv.URL+"/api/plants", adminToken, plant)
	require.Equal(t, http.StatusCreated, status)
	plantID, _ := body["_id"].(string)
	require.NotEmpty(t, plantID)

	// visible publicly now
	status, raw = doRaw(t, http.MethodGet, srv.URL+"/api/plants/edible", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &plants))
	assert.Len(t, plants, 1)

	// update and delete round out the admin surface
	status, body = do(t, http.MethodPut, srv.URL+"/api/plants/"+plantID, adminToken, map[string]interface{}{"difficulty": "easy"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "easy", body["difficulty"])

	status, _ = do(t, http.MethodDelete, srv.URL+"/api/plants/"+plantID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/api/plants/"+plantID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	status, body := do(t, http.MethodGet, srv.URL+"/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
