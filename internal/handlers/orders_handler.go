package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazaar-baba/backend/internal/orders"
	"github.com/bazaar-baba/backend/internal/validation"
)

// RegisterOrdersRoutes registers the order API routes.
func RegisterOrdersRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/orders", func(c *gin.Context) {
		// degrade-to-empty is the store's policy; this always succeeds
		c.JSON(http.StatusOK, cfg.Orders.All(c.Request.Context()))
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		id := c.Param("id")
		o := cfg.Orders.ByID(c.Request.Context(), id)
		if o == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "order_not_found",
				"detail": fmt.Sprintf("Order with id %s not found", id),
			})
			return
		}
		c.JSON(http.StatusOK, o)
	})

	r.POST("/orders", func(c *gin.Context) {
		var req orders.OrderCreate
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		o, err := cfg.Orders.Create(c.Request.Context(), req)
		if err != nil {
			// the store re-validates; surface field errors as 400
			if validation.IsFieldError(err) {
				validation.WriteFieldErrors(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create_order_failed"})
			return
		}
		c.JSON(http.StatusCreated, o)
	})

	r.DELETE("/orders/:id", func(c *gin.Context) {
		id := c.Param("id")
		if !cfg.Orders.Delete(c.Request.Context(), id) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "order_not_found",
				"detail": fmt.Sprintf("Order with id %s not found", id),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order %s deleted successfully", id)})
	})
}
