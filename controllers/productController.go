package controllers

import (
	"net/http"
	"strconv"
	"time"

	"go-resto-manager/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		categories, err := store.GetCategories(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var category models.Category
		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category.ID = 0
		category.CreatedAt = time.Now()
		if err := store.CreateCategory(ctx, &category); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

type categoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "category_id")
		if !ok {
			return
		}
		var req categoryPatch
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := map[string]interface{}{}
		if req.Name != nil {
			patch["name"] = *req.Name
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if len(patch) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		category, err := store.UpdateCategory(ctx, id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "category_id")
		if !ok {
			return
		}
		if err := store.DeleteCategory(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
	}
}

func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if raw := c.Query("categoryId"); raw != "" {
			categoryID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
				return
			}
			products, err := store.GetProductsByCategory(ctx, uint(categoryID))
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, products)
			return
		}

		products, err := store.GetProducts(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "product_id")
		if !ok {
			return
		}
		product, err := store.GetProduct(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !product.Price.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
			return
		}

		product.ID = 0
		product.Archived = false
		product.CreatedAt = time.Now()
		if err := store.CreateProduct(ctx, &product); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type productPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"categoryId"`
	ImageURL    *string          `json:"imageUrl"`
	Available   *bool            `json:"available"`
	Archived    *bool            `json:"archived"`
}

func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "product_id")
		if !ok {
			return
		}
		var req productPatch
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := map[string]interface{}{}
		if req.Name != nil {
			patch["name"] = *req.Name
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Price != nil {
			if !req.Price.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
				return
			}
			patch["price"] = *req.Price
		}
		if req.CategoryID != nil {
			patch["category_id"] = *req.CategoryID
		}
		if req.ImageURL != nil {
			patch["image_url"] = *req.ImageURL
		}
		if req.Available != nil {
			patch["available"] = *req.Available
		}
		// An archived product can never be available.
		if req.Archived != nil {
			patch["archived"] = *req.Archived
			if *req.Archived {
				patch["available"] = false
			}
		}
		if len(patch) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		product, err := store.UpdateProduct(ctx, id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct reports which path the hybrid delete took so the UI can
// say "archived because in use" instead of "deleted".
func DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "product_id")
		if !ok {
			return
		}
		archived, err := store.DeleteProduct(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "product deleted successfully"
		if archived {
			message = "product archived because it appears in past orders"
		}
		c.JSON(http.StatusOK, gin.H{"message": message, "archived": archived})
	}
}
