package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domainCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	domainReservation "github.com/BruksfildServices01/barbershop-reservation/internal/domain/reservation"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-reservation/internal/imaging"
	"github.com/BruksfildServices01/barbershop-reservation/internal/middleware"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	ucCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/catalog"
	ucReservation "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type AdminUseCases struct {
	Dashboard *ucReservation.Dashboard

	ListServices  *ucCatalog.ListServices
	GetService    *ucCatalog.GetService
	CreateService *ucCatalog.CreateService
	UpdateService *ucCatalog.UpdateService
	DeleteService *ucCatalog.DeleteService
	UploadImage   *ucCatalog.UploadServiceImage

	ListTimeSlots  *ucCatalog.ListTimeSlots
	CreateTimeSlot *ucCatalog.CreateTimeSlot

	ListReservations *ucReservation.ListAllReservations
	Approve          *ucReservation.ApproveReservation
	Reject           *ucReservation.RejectReservation
	Complete         *ucReservation.CompleteReservation
}

type AdminHandler struct {
	uc  AdminUseCases
	loc *time.Location
}

// NewAdminHandler builds the handler. loc is the shop time zone used for
// date and time fields in slot requests.
func NewAdminHandler(uc AdminUseCases, loc *time.Location) *AdminHandler {
	return &AdminHandler{uc: uc, loc: loc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTimeSlotRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StartTime string `json:"start_time"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	out, err := h.uc.Dashboard.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// SERVICES
// ======================================================

func (h *AdminHandler) Services(c *gin.Context) {
	services, err := h.uc.ListServices.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req domainCatalog.ServiceInput
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.uc.CreateService.Execute(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *AdminHandler) ShowService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	service, err := h.uc.GetService.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *AdminHandler) EditService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req domainCatalog.ServiceInput
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.uc.UpdateService.Execute(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	cascade, _ := strconv.ParseBool(c.DefaultQuery("cascade", "false"))

	result, err := h.uc.DeleteService.Execute(c.Request.Context(), middleware.Actor(c), id, cascade)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *AdminHandler) UploadServiceImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Invalid(c, "image", "is required")
		return
	}
	if fh.Size > imaging.MaxUploadBytes {
		httperr.Invalid(c, "image", "must be at most 10 MB")
		return
	}

	file, err := fh.Open()
	if err != nil {
		httperr.Invalid(c, "image", "could not be read")
		return
	}
	defer file.Close()

	service, err := h.uc.UploadImage.Execute(c.Request.Context(), middleware.Actor(c), id, file)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, service)
}

// ======================================================
// TIME SLOTS
// ======================================================

func (h *AdminHandler) TimeSlots(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId")
	if !ok {
		return
	}
	available, _ := strconv.ParseBool(c.Query("available"))

	slots, err := h.uc.ListTimeSlots.Execute(c.Request.Context(), middleware.Actor(c), serviceID, available)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *AdminHandler) CreateTimeSlot(c *gin.Context) {
	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id is required.")
		return
	}

	start, err := parseSlotStart(h.loc, req.StartTime, req.Date, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}

	slot, err := h.uc.CreateTimeSlot.Execute(c.Request.Context(), middleware.Actor(c), req.ServiceID, start)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ======================================================
// RESERVATIONS
// ======================================================

func (h *AdminHandler) Reservations(c *gin.Context) {
	var status *domainReservation.Status
	if raw := c.Query("status"); raw != "" {
		st, ok := domainReservation.ParseStatus(raw)
		if !ok {
			httperr.Invalid(c, "status", "must be pending, approved, cancelled or completed")
			return
		}
		status = &st
	}

	list, err := h.uc.ListReservations.Execute(c.Request.Context(), middleware.Actor(c), status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AdminHandler) ApproveReservation(c *gin.Context) {
	h.transition(c, h.uc.Approve.Execute)
}

func (h *AdminHandler) RejectReservation(c *gin.Context) {
	h.transition(c, h.uc.Reject.Execute)
}

func (h *AdminHandler) CompleteReservation(c *gin.Context) {
	h.transition(c, h.uc.Complete.Execute)
}

type transitionFunc func(ctx context.Context, actor auth.Actor, id uint) (*models.Reservation, error)

func (h *AdminHandler) transition(c *gin.Context, run transitionFunc) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := run(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}
