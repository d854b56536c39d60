package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-reservation/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/catalog"
	ucReservation "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	allocator      *ucReservation.SlotAllocator
	listMine       *ucReservation.ListMyReservations
	get            *ucReservation.GetReservation
	edit           *ucReservation.EditReservation
	cancel         *ucReservation.CancelReservation
	availableSlots *ucCatalog.ListAvailableSlots
}

func NewReservationHandler(
	allocator *ucReservation.SlotAllocator,
	listMine *ucReservation.ListMyReservations,
	get *ucReservation.GetReservation,
	edit *ucReservation.EditReservation,
	cancel *ucReservation.CancelReservation,
	availableSlots *ucCatalog.ListAvailableSlots,
) *ReservationHandler {
	return &ReservationHandler{
		allocator:      allocator,
		listMine:       listMine,
		get:            get,
		edit:           edit,
		cancel:         cancel,
		availableSlots: availableSlots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ServiceID  uint   `json:"service_id" binding:"required"`
	TimeSlotID uint   `json:"time_slot_id" binding:"required"`
	Notes      string `json:"notes"`
}

type EditReservationRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) Index(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId")
	if !ok {
		return
	}

	list, err := h.listMine.Execute(c.Request.Context(), middleware.Actor(c), serviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// CREATE
// ======================================================

// CreateForm returns the service and its bookable slots.
func (h *ReservationHandler) CreateForm(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId")
	if !ok {
		return
	}
	if serviceID == nil {
		httperr.Invalid(c, "serviceId", "is required")
		return
	}

	opts, err := h.availableSlots.Execute(c.Request.Context(), middleware.Actor(c), *serviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, opts)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id and time_slot_id are required.")
		return
	}

	actor := middleware.Actor(c)

	res, err := h.allocator.Reserve(c.Request.Context(), ucReservation.ReserveInput{
		TimeSlotID: req.TimeSlotID,
		UserID:     actor.UserID,
		ServiceID:  req.ServiceID,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// EDIT
// ======================================================

func (h *ReservationHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req EditReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.edit.Execute(c.Request.Context(), middleware.Actor(c), id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}
