package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/audit"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/httpresp"
	"github.com/bookably/appointment-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

// Duration and price are pointers so a literal zero still counts as present.
type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"required,max=255"`
	Duration    *int     `json:"duration" binding:"required,min=1"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type PatchServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=255"`
	Duration    *int     `json:"duration" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Failed to list services")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Price:       *req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Failed to create service")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, "Service created successfully", service)
}

func (h *ServiceHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Duration = *req.Duration
	service.Price = *req.Price

	h.save(c, &service)
}

func (h *ServiceHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	var req PatchServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}

	h.save(c, &service)
}

// Delete removes the row for good. Services carry no tombstone.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Service not found")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "Failed to delete service")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Deleted(c, "Service deleted successfully")
}

// --------- Internals ---------

func (h *ServiceHandler) save(c *gin.Context, service *models.Service) {
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "Failed to update service")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Updated(c, "Service updated successfully", service)
}
