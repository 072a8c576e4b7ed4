package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookably/appointment-api/internal/httperr"
	"github.com/bookably/appointment-api/internal/httpresp"
	ucAppointment "github.com/bookably/appointment-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	remove *ucAppointment.DeleteAppointment
	get    *ucAppointment.GetAppointment
	list   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		remove: remove,
		get:    get,
		list:   list,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID    uint      `json:"client_id" binding:"required"`
	ProviderID  uint      `json:"provider_id" binding:"required"`
	ServiceID   uint      `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes       string    `json:"notes"`
}

type PatchAppointmentRequest struct {
	ClientID    *uint      `json:"client_id"`
	ProviderID  *uint      `json:"provider_id"`
	ServiceID   *uint      `json:"service_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes       *string    `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to list appointments")
		return
	}

	httpresp.OK(c, apps)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		ClientID:    req.ClientID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		Notes:       req.Notes,
	}, actorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Created(c, "Appointment created successfully", ap)
}

func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Replace handles PUT: all fields required, the record is fully rewritten.
func (h *AppointmentHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	in := ucAppointment.UpdateInput{
		ClientID:    &req.ClientID,
		ProviderID:  &req.ProviderID,
		ServiceID:   &req.ServiceID,
		ScheduledAt: &req.ScheduledAt,
		Notes:       &req.Notes,
	}
	if req.Status != "" {
		in.Status = &req.Status
	}

	ap, err := h.update.Execute(c.Request.Context(), id, in, actorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Updated(c, "Appointment updated successfully", ap)
}

// Patch handles PATCH: only the supplied fields change.
func (h *AppointmentHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	var req PatchAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateInput{
		ClientID:    req.ClientID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		Notes:       req.Notes,
	}, actorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Updated(c, "Appointment updated successfully", ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, actorID(c)); err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Deleted(c, "Appointment deleted successfully")
}

// --------- Internals ---------

func (h *AppointmentHandler) writeError(c *gin.Context, err error) {
	var ve *httperr.ValidationError
	if errors.As(err, &ve) {
		httperr.WriteValidation(c, ve)
		return
	}

	if httperr.IsBusiness(err, "appointment_not_found") {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	httperr.Internal(c, "Internal error")
}
