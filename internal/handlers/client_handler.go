package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/audit"
	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/httpresp"
	"github.com/bookably/appointment-api/internal/models"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"required,max=255"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

type PatchClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=255"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Order("id ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "Failed to list clients")
		return
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Client{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.WriteValidation(c, httperr.NewValidation().
			Add("email", "The email has already been taken."))
		return
	}

	actor := actorID(c)
	client := models.Client{
		Name:    req.Name,
		Email:   email,
		Phone:   req.Phone,
		Address: req.Address,
		UserID:  &actor,
	}

	if err := h.db.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		httperr.Internal(c, "Failed to create client")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, "Client created successfully", client)
}

func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	httpresp.OK(c, client)
}

// Replace handles PUT: every field is required and overwritten.
func (h *ClientHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailAvailable(email, client.ID) {
		httperr.WriteValidation(c, httperr.NewValidation().
			Add("email", "The email has already been taken."))
		return
	}

	client.Name = req.Name
	client.Email = email
	client.Phone = req.Phone
	client.Address = req.Address

	h.save(c, &client)
}

// Patch handles PATCH: absent fields keep their stored value.
func (h *ClientHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	var req PatchClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !h.emailAvailable(email, client.ID) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		client.Email = email
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}

	h.save(c, &client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "Client not found")
		return
	}

	// Soft delete: the row stays for appointment history.
	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "Failed to delete client")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Deleted(c, "Client deleted successfully")
}

func (h *ClientHandler) Profile(c *gin.Context) {
	var client models.Client
	if err := h.db.Where("user_id = ?", actorID(c)).First(&client).Error; err != nil {
		httperr.NotFound(c, "Client profile not found")
		return
	}

	httpresp.Updated(c, "Client profile data", client)
}

// --------- Internals ---------

func (h *ClientHandler) emailAvailable(email string, excludeID uint) bool {
	var count int64
	h.db.Model(&models.Client{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count)
	return count == 0
}

func (h *ClientHandler) save(c *gin.Context, client *models.Client) {
	if err := h.db.Save(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.WriteValidation(c, httperr.NewValidation().
				Add("email", "The email has already been taken."))
			return
		}
		httperr.Internal(c, "Failed to update client")
		return
	}

	actor := actorID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Updated(c, "Client updated successfully", client)
}
