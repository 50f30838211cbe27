package handlers

import (
	"errors"
	"net/http"
	"time"

	"boba_pos/internal/models"
	"boba_pos/internal/repository"

	"github.com/gin-gonic/gin"
)

// SubmitOrder is the write path of the POS. Validation failures come back
// with distinct statuses so the register can show "out of stock" messaging
// separately from a real persistence problem.
func (h *APIHandler) SubmitOrder(c *gin.Context) {
	var req struct {
		CustomerID *uint `json:"customer_id"`
		EmployeeID uint  `json:"employee_id" binding:"required"`
		Items      []struct {
			MenuItemID uint `json:"menu_item_id" binding:"required"`
			Quantity   int  `json:"quantity" binding:"required"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
	}
	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	persisted, err := h.orderService.SubmitOrder(order, items)
	if err != nil {
		respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id":   persisted.ID,
		"total_cost": persisted.TotalCost,
		"order_week": persisted.OrderWeek,
		"items":      len(items),
	})
}

func (h *APIHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) GetOrderItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Analytics endpoints

func (h *APIHandler) GetProductUsage(c *gin.Context) {
	usage, err := h.reportService.GetProductUsage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product usage"})
		return
	}
	c.JSON(http.StatusOK, usage)
}

func (h *APIHandler) GetTotalSales(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
		return
	}
	// Make the end date inclusive.
	end = end.Add(24*time.Hour - time.Nanosecond)

	total, err := h.reportService.GetTotalSales(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate total sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_sales": total})
}

func respondSubmitError(c *gin.Context, err error) {
	var insufficient *repository.InsufficientInventoryError
	var notFound *repository.NotFoundError
	var persistence *repository.PersistenceError

	switch {
	case errors.Is(err, repository.ErrEmptyOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order has no items"})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Insufficient inventory",
			"ingredient_id": insufficient.IngredientID,
			"available":     insufficient.Available,
			"required":      insufficient.Required,
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &persistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order could not be saved"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
