package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	svc *ucAppointment.Service
}

func NewAppointmentHandler(svc *ucAppointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid form data.")
		return
	}

	ap, err := h.svc.Add(c.Request.Context(), req.Input())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / SEARCH
// ======================================================

// List returns every appointment, or the ones matching ?patient= or
// ?doctor= when given. patient wins when both are set.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		apps []models.Appointment
		err  error
	)

	if patient, ok := c.GetQuery("patient"); ok {
		apps, err = h.svc.FindByPatient(ctx, patient)
	} else if doctor, ok := c.GetQuery("doctor"); ok {
		apps, err = h.svc.FindByDoctor(ctx, doctor)
	} else {
		apps, err = h.svc.ListAll(ctx)
	}

	if err != nil {
		writeServiceError(c, err)
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req dto.AppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid form data.")
		return
	}

	if err := h.svc.Modify(c.Request.Context(), id, req.Input()); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// RECEIPT
// ======================================================

// Receipt always answers with printable text, even for an unknown id.
func (h *AppointmentHandler) Receipt(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	text, err := h.svc.ReceiptText(c.Request.Context(), id)
	if err != nil {
		httpresp.Text(c, http.StatusServiceUnavailable, text)
		return
	}

	httpresp.Text(c, http.StatusOK, text)
}
