package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-resto-manager/models"
	"go-resto-manager/storage"

	"github.com/gin-gonic/gin"
)

func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		tables, err := store.GetTables(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tables)
	}
}

func GetTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "table_id")
		if !ok {
			return
		}
		table, err := store.GetTable(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

type createTableRequest struct {
	Number   int `json:"number" validate:"required,min=1"`
	Capacity int `json:"capacity"`
}

func CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req createTableRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Capacity <= 0 {
			req.Capacity = 4
		}

		table := models.Table{
			Number:    req.Number,
			Capacity:  req.Capacity,
			QRCode:    fmt.Sprintf("%s/menu/%d", cfg.QRBaseURL, req.Number),
			Status:    models.TableAvailable,
			CreatedAt: time.Now(),
		}
		if err := store.CreateTable(ctx, &table); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("table %d already exists", req.Number)})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

type tablePatch struct {
	Number   *int                `json:"number"`
	Capacity *int                `json:"capacity"`
	Status   *models.TableStatus `json:"status"`
}

func UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "table_id")
		if !ok {
			return
		}
		var req tablePatch
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := map[string]interface{}{}
		if req.Number != nil {
			patch["number"] = *req.Number
			patch["qr_code"] = fmt.Sprintf("%s/menu/%d", cfg.QRBaseURL, *req.Number)
		}
		if req.Capacity != nil {
			patch["capacity"] = *req.Capacity
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table status"})
				return
			}
			patch["status"] = *req.Status
		}
		if len(patch) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		table, err := store.UpdateTable(ctx, id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func DeleteTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "table_id")
		if !ok {
			return
		}
		if err := store.DeleteTable(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "table deleted successfully"})
	}
}
