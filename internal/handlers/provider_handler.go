package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookably/appointment-api/internal/audit"
	"github.com/bookably/appointment-api/internal/dto"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/httpresp"
	"github.com/bookably/appointment-api/internal/models"
	"github.com/bookably/appointment-api/internal/validators"
)

type ProviderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProviderHandler(db *gorm.DB, audit *audit.Dispatcher) *ProviderHandler {
	return &ProviderHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateProviderRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Email          string `json:"email" binding:"required,email,max=255"`
	Phone          string `json:"phone" binding:"required,max=255"`
	Document       string `json:"document" binding:"required"`
	Specialization string `json:"specialization" binding:"omitempty,max=255"`
	Bio            string `json:"bio"`
}

type PatchProviderRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	Phone          *string `json:"phone" binding:"omitempty,max=255"`
	Document       *string `json:"document"`
	Specialization *string `json:"specialization" binding:"omitempty,max=255"`
	Bio            *string `json:"bio"`
}

type AttachServicesRequest struct {
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *ProviderHandler) List(c *gin.Context) {
	var providers []models.Provider
	if err := h.db.Order("id ASC").Find(&providers).Error; err != nil {
		httperr.Internal(c, "Failed to list providers")
		return
	}

	httpresp.OK(c, providers)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ve := httperr.NewValidation()
	if !validators.IsValidDocument(req.Document) {
		ve.Add("document", "The document must be 11 characters.")
	}
	if !h.emailAvailable(email, 0) {
		ve.Add("email", "The email has already been taken.")
	}
	if !h.documentAvailable(req.Document, 0) {
		ve.Add("document", "The document has already been taken.")
	}
	if ve.HasErrors() {
		httperr.WriteValidation(c, ve)
		return
	}

	actor := actorID(c)
	provider := models.Provider{
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		Document:       req.Document,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		UserID:         actor,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		httperr.Internal(c, "Failed to create provider")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "provider_created",
		Entity:   "provider",
		EntityID: &provider.ID,
	})

	httpresp.Created(c, "Provider created successfully", provider)
}

func (h *ProviderHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	httpresp.OK(c, provider)
}

func (h *ProviderHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var req CreateProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ve := httperr.NewValidation()
	if !validators.IsValidDocument(req.Document) {
		ve.Add("document", "The document must be 11 characters.")
	}
	if !h.emailAvailable(email, provider.ID) {
		ve.Add("email", "The email has already been taken.")
	}
	if !h.documentAvailable(req.Document, provider.ID) {
		ve.Add("document", "The document has already been taken.")
	}
	if ve.HasErrors() {
		httperr.WriteValidation(c, ve)
		return
	}

	provider.Name = req.Name
	provider.Email = email
	provider.Phone = req.Phone
	provider.Document = req.Document
	provider.Specialization = req.Specialization
	provider.Bio = req.Bio

	h.save(c, &provider)
}

func (h *ProviderHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var req PatchProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	ve := httperr.NewValidation()
	if req.Document != nil {
		if !validators.IsValidDocument(*req.Document) {
			ve.Add("document", "The document must be 11 characters.")
		} else if !h.documentAvailable(*req.Document, provider.ID) {
			ve.Add("document", "The document has already been taken.")
		}
	}

	var email string
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
		if !h.emailAvailable(email, provider.ID) {
			ve.Add("email", "The email has already been taken.")
		}
	}
	if ve.HasErrors() {
		httperr.WriteValidation(c, ve)
		return
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Email != nil {
		provider.Email = email
	}
	if req.Phone != nil {
		provider.Phone = *req.Phone
	}
	if req.Document != nil {
		provider.Document = *req.Document
	}
	if req.Specialization != nil {
		provider.Specialization = *req.Specialization
	}
	if req.Bio != nil {
		provider.Bio = *req.Bio
	}

	h.save(c, &provider)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	if err := h.db.Delete(&provider).Error; err != nil {
		httperr.Internal(c, "Failed to delete provider")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "provider_deleted",
		Entity:   "provider",
		EntityID: &provider.ID,
	})

	httpresp.Deleted(c, "Provider deleted successfully")
}

func (h *ProviderHandler) Profile(c *gin.Context) {
	var provider models.Provider
	if err := h.db.Where("user_id = ?", actorID(c)).First(&provider).Error; err != nil {
		httperr.NotFound(c, "Provider profile not found")
		return
	}

	httpresp.Updated(c, "Provider profile data", provider)
}

// ======================================================
// PROVIDER-SERVICE OFFERING
// ======================================================

// AttachServices unions the given service ids into the provider's offering.
// Already-attached pairs are left untouched, and nothing is ever detached.
func (h *ProviderHandler) AttachServices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var req AttachServicesRequest
	if !bindJSON(c, &req) {
		return
	}

	ve := httperr.NewValidation()
	for i, serviceID := range req.ServiceIDs {
		var count int64
		h.db.Model(&models.Service{}).Where("id = ?", serviceID).Count(&count)
		if count == 0 {
			field := fmt.Sprintf("service_ids.%d", i)
			ve.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
		}
	}
	if ve.HasErrors() {
		httperr.WriteValidation(c, ve)
		return
	}

	rows := make([]models.ProviderService, 0, len(req.ServiceIDs))
	for _, serviceID := range req.ServiceIDs {
		rows = append(rows, models.ProviderService{
			ProviderID: provider.ID,
			ServiceID:  serviceID,
		})
	}

	// The unique (provider_id, service_id) index turns re-attaches into
	// no-ops.
	if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		httperr.Internal(c, "Failed to attach services")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "provider_services_attached",
		Entity:   "provider",
		EntityID: &provider.ID,
		Metadata: req.ServiceIDs,
	})

	httpresp.Updated(c, "Services attached successfully", nil)
}

// ListServices returns the provider's offering with effective prices.
func (h *ProviderHandler) ListServices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		httperr.NotFound(c, "Provider not found")
		return
	}

	var links []models.ProviderService
	if err := h.db.
		Where("provider_id = ?", provider.ID).
		Order("service_id ASC").
		Find(&links).Error; err != nil {
		httperr.Internal(c, "Failed to list services")
		return
	}

	out := make([]dto.ProviderServiceDTO, 0, len(links))
	if len(links) == 0 {
		httpresp.OK(c, out)
		return
	}

	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ServiceID)
	}

	var services []models.Service
	if err := h.db.Find(&services, ids).Error; err != nil {
		httperr.Internal(c, "Failed to list services")
		return
	}

	byID := make(map[uint]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	for _, link := range links {
		svc, ok := byID[link.ServiceID]
		if !ok {
			continue
		}

		price := svc.Price
		if link.PriceOverride != nil {
			price = *link.PriceOverride
		}

		out = append(out, dto.ProviderServiceDTO{
			ServiceID:     svc.ID,
			Name:          svc.Name,
			Description:   svc.Description,
			Duration:      svc.Duration,
			Price:         price,
			BasePrice:     svc.Price,
			PriceOverride: link.PriceOverride,
		})
	}

	httpresp.OK(c, out)
}

// --------- Internals ---------

func (h *ProviderHandler) emailAvailable(email string, excludeID uint) bool {
	var count int64
	h.db.Model(&models.Provider{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count)
	return count == 0
}

func (h *ProviderHandler) documentAvailable(document string, excludeID uint) bool {
	var count int64
	h.db.Model(&models.Provider{}).
		Where("document = ? AND id <> ?", document, excludeID).
		Count(&count)
	return count == 0
}

func (h *ProviderHandler) save(c *gin.Context, provider *models.Provider) {
	if err := h.db.Save(provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		httperr.Internal(c, "Failed to update provider")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "provider_updated",
		Entity:   "provider",
		EntityID: &provider.ID,
	})

	httpresp.Updated(c, "Provider updated successfully", provider)
}
