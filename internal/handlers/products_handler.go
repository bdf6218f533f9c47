package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazaar-baba/backend/internal/catalog"
	"github.com/bazaar-baba/backend/internal/validation"
)

// RegisterProductsRoutes registers the product API routes.
func RegisterProductsRoutes(r *gin.Engine, cfg Config) {
	v := validation.New()

	r.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.Products.All(c.Request.Context()))
	})

	r.GET("/products/:id", func(c *gin.Context) {
		id := c.Param("id")
		p := cfg.Products.ByID(c.Request.Context(), id)
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "product_not_found",
				"detail": fmt.Sprintf("Product with id %s not found", id),
			})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.POST("/products", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req catalog.ProductCreate
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		// duplicate-id pre-check is this layer's responsibility; the
		// unique index backs it up at the storage layer
		if existing := cfg.Products.ByID(ctx, req.ID); existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "duplicate_id",
				"detail": fmt.Sprintf("Product with id %s already exists", req.ID),
			})
			return
		}

		p, err := cfg.Products.Create(ctx, req)
		if err != nil {
			// the store re-validates; surface field errors as 400
			if validation.IsFieldError(err) {
				validation.WriteFieldErrors(c, err)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create_product_failed"})
			return
		}
		c.JSON(http.StatusCreated, p)
	})
}
