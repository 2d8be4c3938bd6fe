package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// testEnv is one fully wired HTTP stack over in-memory stores.
type testEnv struct {
	srv      *httptest.Server
	products *repositories.MemoryProductStore
	users    *repositories.MemoryUserStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	config.Set("JWT_SECRET", "test-secret")

	products := repositories.NewMemoryProductStore()
	users := repositories.NewMemoryUserStore()

	catalog := services.NewCatalogService(products)
	accounts := services.NewAccountService(users, services.PlaintextVerifier{})
	carts := services.NewCartService(users)

	r := router.New()
	routes.Register(r, routes.Controllers{
		Products: controllers.NewProductController(catalog),
		Auth:     controllers.NewAuthController(accounts),
		Cart:     controllers.NewCartController(carts),
		Upload:   controllers.NewUploadController(),
	})

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, products: products, users: users}
}

// post sends a JSON body and decodes the JSON response into out.
func (e *testEnv) post(t *testing.T, path string, body any, token string, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("auth-token", token)
	}

	resp, err := e.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// rawPost sends a JSON body without touching t, for use off the test
// goroutine. Returns an error for transport failures or non-200 codes.
func (e *testEnv) rawPost(path, body, token string) error {
	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("auth-token", token)
	}

	resp, err := e.srv.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (e *testEnv) get(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := e.srv.Client().Get(e.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// signup registers a user and returns the issued token.
func (e *testEnv) signup(t *testing.T, name, email, password string) string {
	t.Helper()

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	code := e.post(t, "/signup", map[string]string{
		"username": name, "email": email, "password": password,
	}, "", &resp)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// addProduct creates a catalog entry through the API.
func (e *testEnv) addProduct(t *testing.T, name, category string) {
	t.Helper()

	var resp struct {
		Success bool   `json:"success"`
		Name    string `json:"name"`
	}
	code := e.post(t, "/addproduct", map[string]any{
		"name": name, "image": "http://img/" + name, "category": category,
		"new_price": 50.0, "old_price": 80.0,
	}, "", &resp)
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success)
	require.Equal(t, name, resp.Name)
}
