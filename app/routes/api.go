// Package routes declares the HTTP route table.
package routes

import (
	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/pkg/ctx"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// Controllers bundles everything the route table mounts.
type Controllers struct {
	Products *controllers.ProductController
	Auth     *controllers.AuthController
	Cart     *controllers.CartController
	Upload   *controllers.UploadController
}

// Register mounts the full route table. Paths and methods follow the
// storefront's existing API, flat at the root with no version prefix.
func Register(r *router.Router, c Controllers) {
	r.Get("/", "root", ctx.Wrap(c.Products.Root))

	// Catalog
	r.Post("/addproduct", "product.add", ctx.Wrap(c.Products.Add))
	r.Post("/removeproduct", "product.remove", ctx.Wrap(c.Products.Remove))
	r.Get("/allproducts", "product.all", ctx.Wrap(c.Products.All))
	r.Get("/newcollections", "product.new", ctx.Wrap(c.Products.NewCollections))
	r.Get("/popularinwomen", "product.popular", ctx.Wrap(c.Products.PopularInWomen))

	// Accounts
	r.Post("/signup", "auth.signup", ctx.Wrap(c.Auth.Signup))
	r.Post("/login", "auth.login", ctx.Wrap(c.Auth.Login))

	// Images
	r.Post("/upload", "upload", ctx.Wrap(c.Upload.Upload))

	// Cart, behind the token guard
	cart := r.Group("/", middleware.AuthGuard)
	cart.Post("/addtocart", "cart.add", ctx.Wrap(c.Cart.Add))
	cart.Post("/removefromcart", "cart.remove", ctx.Wrap(c.Cart.Remove))
	cart.Post("/getcart", "cart.get", ctx.Wrap(c.Cart.Get))

	// Operational
	r.Get("/metrics", "metrics", metrics.Handler())
}
