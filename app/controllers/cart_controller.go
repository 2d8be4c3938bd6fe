package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/ctx"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// cartItemRequest carries the slot being mutated. ItemID is a pointer
// so item 0 survives the presence check.
type cartItemRequest struct {
	ItemID *int `json:"itemId"`
}

// Add increments one cart slot for the authenticated user.
func (cc *CartController) Add(c *ctx.Context) {
	itemID, ok := cc.bindItem(c)
	if !ok {
		return
	}

	userID := auth.UserIDFromCtx(c.Context())
	if err := cc.carts.Add(c.Context(), userID, itemID); err != nil {
		cc.writeCartError(c, err, "add to cart failed")
		return
	}
	c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Added"})
}

// Remove decrements one cart slot, never below zero.
func (cc *CartController) Remove(c *ctx.Context) {
	itemID, ok := cc.bindItem(c)
	if !ok {
		return
	}

	userID := auth.UserIDFromCtx(c.Context())
	if err := cc.carts.Remove(c.Context(), userID, itemID); err != nil {
		cc.writeCartError(c, err, "remove from cart failed")
		return
	}
	c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Removed"})
}

// Get returns the authenticated user's full cart map.
func (cc *CartController) Get(c *ctx.Context) {
	userID := auth.UserIDFromCtx(c.Context())
	cart, err := cc.carts.Get(c.Context(), userID)
	if err != nil {
		cc.writeCartError(c, err, "get cart failed")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (cc *CartController) bindItem(c *ctx.Context) (int, bool) {
	var req cartItemRequest
	if _, err := c.ShouldBindJSON(&req); err != nil || req.ItemID == nil {
		c.JSON(http.StatusBadRequest, map[string]any{"error": "itemId required"})
		return 0, false
	}
	return *req.ItemID, true
}

func (cc *CartController) writeCartError(c *ctx.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, map[string]any{"error": "User not found"})
	case errors.Is(err, services.ErrItemOutOfRange):
		c.JSON(http.StatusBadRequest, map[string]any{"error": "itemId required"})
	default:
		logger.WithCtx(c.Context()).Error(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, map[string]any{"success": false})
	}
}
