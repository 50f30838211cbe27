package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"boba_pos/internal/models"
	"boba_pos/internal/repository"
	"boba_pos/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	catalogService   services.CatalogService
	inventoryService services.InventoryService
	employeeService  services.EmployeeService
	orderService     services.OrderService
	reportService    services.ReportService
	storeMode        string
}

func NewAPIHandler(
	catalogService services.CatalogService,
	inventoryService services.InventoryService,
	employeeService services.EmployeeService,
	orderService services.OrderService,
	reportService services.ReportService,
	storeMode string,
) *APIHandler {
	return &APIHandler{
		catalogService:   catalogService,
		inventoryService: inventoryService,
		employeeService:  employeeService,
		orderService:     orderService,
		reportService:    reportService,
		storeMode:        storeMode,
	}
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "bobapos",
		"status": "OK",
		"store":  h.storeMode,
	})
}

// Menu endpoints

func (h *APIHandler) GetMenu(c *gin.Context) {
	items, err := h.catalogService.GetMenu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *APIHandler) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	recipe, err := h.catalogService.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *APIHandler) AddMenuItem(c *gin.Context) {
	var req struct {
		DrinkCategory string  `json:"drink_category"`
		Name          string  `json:"menu_item_name" binding:"required"`
		Price         float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	item := &models.MenuItem{
		DrinkCategory: req.DrinkCategory,
		Name:          req.Name,
		Price:         req.Price,
	}
	if err := h.catalogService.AddMenuItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *APIHandler) UpdateMenuItemPrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	if err := h.catalogService.UpdatePrice(id, req.Price); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item_id": id, "price": req.Price})
}

// Inventory endpoints

func (h *APIHandler) GetInventory(c *gin.Context) {
	items, err := h.inventoryService.GetInventory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *APIHandler) AddIngredient(c *gin.Context) {
	var req struct {
		Name  string `json:"ingredient_name" binding:"required"`
		Count int    `json:"ingredient_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Count must not be negative"})
		return
	}

	item := &models.Ingredient{Name: req.Name, Count: req.Count}
	if err := h.inventoryService.AddIngredient(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ingredient"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *APIHandler) SetIngredientCount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Count int `json:"ingredient_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Count must not be negative"})
		return
	}

	if err := h.inventoryService.SetCount(id, req.Count); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient_id": id, "ingredient_count": req.Count})
}

// Employee endpoints

func (h *APIHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetAllEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *APIHandler) AddEmployee(c *gin.Context) {
	var req struct {
		Name        string `json:"employee_name" binding:"required"`
		Role        string `json:"employee_role"`
		HoursWorked int    `json:"hours_worked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	employee := &models.Employee{Name: req.Name, Role: req.Role, HoursWorked: req.HoursWorked}
	if err := h.employeeService.AddEmployee(employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add employee"})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *APIHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"employee_name" binding:"required"`
		Role        string `json:"employee_role"`
		HoursWorked int    `json:"hours_worked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	employee := &models.Employee{ID: id, Name: req.Name, Role: req.Role, HoursWorked: req.HoursWorked}
	if err := h.employeeService.UpdateEmployee(employee); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *APIHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee_id": id, "status": "deleted"})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondStoreError(c *gin.Context, err error) {
	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Store operation failed"})
}
