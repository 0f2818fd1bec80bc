package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lendshare/internal/adapters/http/middleware"
	"lendshare/internal/adapters/http/routes"
	"lendshare/internal/adapters/persistence/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	routes.Setup(app, repositories.NewMemoryStore())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func createUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/users/", fiber.Map{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func createItem(t *testing.T, app *fiber.App, name, ownerID string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/items/", fiber.Map{"name": name, "owner_id": ownerID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestCreateUser(t *testing.T) {
	app := setupApp()

	resp, body := doJSON(t, app, http.MethodPost, "/users/", fiber.Map{
		"name":  "Alice",
		"email": "  Alice@Example.COM ",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, float64(0), body["points"])
}

func TestCreateUser_Invalid(t *testing.T) {
	app := setupApp()

	resp, body := doJSON(t, app, http.MethodPost, "/users/", fiber.Map{"name": "Alice", "email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "email inválido", body["detail"])

	resp, _ = doJSON(t, app, http.MethodPost, "/users/", fiber.Map{"name": "", "email": "a@b.co"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListUsers(t *testing.T) {
	app := setupApp()

	createUser(t, app, "Alice", "alice@example.com")
	createUser(t, app, "Bob", "bob@example.com")

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestCreateItem_UnknownOwner(t *testing.T) {
	app := setupApp()

	resp, body := doJSON(t, app, http.MethodPost, "/items/", fiber.Map{"name": "Drill", "owner_id": "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "owner_id não encontrado", body["detail"])
}

func TestHealth(t *testing.T) {
	app := setupApp()

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
}

func TestBorrow_StatusCodes(t *testing.T) {
	app := setupApp()

	ownerID := createUser(t, app, "Alice", "alice@example.com")
	itemID := createItem(t, app, "Drill", ownerID)
	borrowerID := createUser(t, app, "Bob", "bob@example.com")

	// Unknown item
	resp, body := doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": "nope", "borrower_id": borrowerID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Item não encontrado", body["detail"])

	// Unknown borrower
	resp, body = doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": itemID, "borrower_id": "nope"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuário (borrower_id) não encontrado", body["detail"])

	// Bob has zero points
	resp, body = doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": itemID, "borrower_id": borrowerID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Pontos insuficientes para pegar emprestado", body["detail"])
}

// TestLendingLifecycle walks the full flow: lending earns points,
// borrowing spends them, returning frees the item without a refund.
func TestLendingLifecycle(t *testing.T) {
	app := setupApp()

	aliceID := createUser(t, app, "Alice", "alice@example.com")
	itemID := createItem(t, app, "Drill", aliceID)
	bobID := createUser(t, app, "Bob", "bob@example.com")

	// Bob cannot borrow with zero points
	resp, _ := doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": itemID, "borrower_id": bobID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Bob lends an item of his own and earns points
	createItem(t, app, "Ladder", bobID)

	resp, body := doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": itemID, "borrower_id": bobID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "item emprestado com sucesso", body["status"])

	// The item is now on loan
	resp, body = doJSON(t, app, http.MethodPost, "/loans/", fiber.Map{"item_id": itemID, "borrower_id": bobID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Item já está emprestado", body["detail"])

	// Exactly one loan is on record
	req := httptest.NewRequest(http.MethodGet, "/loans/", nil)
	listResp, err := app.Test(req)
	require.NoError(t, err)
	var loans []map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&loans))
	assert.Len(t, loans, 1)

	// Return frees the item
	resp, body = doJSON(t, app, http.MethodPost, "/loans/return/"+itemID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "item devolvido com sucesso", body["status"])

	// Bob keeps his post-borrow balance: 10 earned, 5 spent, no refund
	req = httptest.NewRequest(http.MethodGet, "/users/", nil)
	usersResp, err := app.Test(req)
	require.NoError(t, err)
	var users []map[string]interface{}
	require.NoError(t, json.NewDecoder(usersResp.Body).Decode(&users))
	for _, u := range users {
		if u["id"] == bobID {
			assert.Equal(t, float64(5), u["points"])
		}
	}
}

func TestReturn_UnknownItem(t *testing.T) {
	app := setupApp()

	resp, body := doJSON(t, app, http.MethodPost, "/loans/return/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Item não encontrado", body["detail"])
}
