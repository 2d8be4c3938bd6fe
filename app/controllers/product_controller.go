// Package controllers translates HTTP requests into service calls and
// service results into the wire shapes the storefront expects. Every
// response shape here is part of the public contract; change the
// services, not the JSON.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/ctx"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Root answers the health-check route.
func (pc *ProductController) Root(c *ctx.Context) {
	c.String(http.StatusOK, "Vastra catalog service is running")
}

type addProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

// Add creates a catalog entry and echoes the name back.
func (pc *ProductController) Add(c *ctx.Context) {
	var req addProductRequest
	if errs, err := c.ShouldBindJSON(&req); err != nil || errs != nil {
		c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Name required"})
		return
	}

	product := models.Product{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	}
	if err := pc.catalog.Add(c.Context(), &product); err != nil {
		logger.WithCtx(c.Context()).Error("add product failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	logger.WithCtx(c.Context()).Info("product saved", "id", product.CatalogID, "name", product.Name)
	c.JSON(http.StatusOK, map[string]any{"success": true, "name": product.Name})
}

type removeProductRequest struct {
	ID int `json:"id"`
}

// Remove deletes a catalog entry by its integer id. Removing an id
// that does not exist still reports success.
func (pc *ProductController) Remove(c *ctx.Context) {
	var req removeProductRequest
	if _, err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, map[string]any{"success": false})
		return
	}

	if err := pc.catalog.Remove(c.Context(), req.ID); err != nil {
		logger.WithCtx(c.Context()).Error("remove product failed", "id", req.ID, "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	logger.WithCtx(c.Context()).Info("product removed", "id", req.ID)
	c.JSON(http.StatusOK, map[string]any{"success": true})
}

// All returns the entire catalog as a bare JSON array.
func (pc *ProductController) All(c *ctx.Context) {
	products, err := pc.catalog.All(c.Context())
	if err != nil {
		logger.WithCtx(c.Context()).Error("list products failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	c.JSON(http.StatusOK, products)
}

// NewCollections returns the eight newest products in insertion order.
func (pc *ProductController) NewCollections(c *ctx.Context) {
	products, err := pc.catalog.Latest(c.Context())
	if err != nil {
		logger.WithCtx(c.Context()).Error("new collections failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	c.JSON(http.StatusOK, products)
}

// PopularInWomen returns the first four products in the women category.
func (pc *ProductController) PopularInWomen(c *ctx.Context) {
	products, err := pc.catalog.PopularInWomen(c.Context())
	if err != nil {
		logger.WithCtx(c.Context()).Error("popular in women failed", "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	c.JSON(http.StatusOK, products)
}
