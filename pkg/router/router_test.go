package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestRoutesAreListed(t *testing.T) {
	r := router.New()
	r.Get("/allproducts", "product.all", ok)
	r.Post("/signup", "auth.signup", ok)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/allproducts", routes[0].Path)
	assert.Equal(t, "product.all", routes[0].Name)
	assert.Equal(t, http.MethodPost, routes[1].Method)
}

func TestGroupAppliesMiddlewareAndPrefix(t *testing.T) {
	var sawHeader string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawHeader = r.Header.Get("X-Probe")
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/api", mw)
	g.Post("/getcart", "cart.get", ok)

	req := httptest.NewRequest(http.MethodPost, "/api/getcart", nil)
	req.Header.Set("X-Probe", "yes")
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "yes", sawHeader)
}

func TestRootGroupKeepsFlatPaths(t *testing.T) {
	r := router.New()
	g := r.Group("/")
	g.Post("/addtocart", "cart.add", ok)

	req := httptest.NewRequest(http.MethodPost, "/addtocart", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	r := router.New()
	r.Get("/", "root", ok)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
