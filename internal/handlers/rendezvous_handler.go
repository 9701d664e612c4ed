package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucRendezVous "github.com/BruksfildServices01/dentismart/internal/usecase/rendezvous"
)

// ======================================================
// HANDLER
// ======================================================

type RendezVousHandler struct {
	create       *ucRendezVous.CreateRendezVous
	list         *ucRendezVous.ListRendezVous
	updateStatus *ucRendezVous.UpdateStatus
	log          *zap.Logger
}

func NewRendezVousHandler(
	create *ucRendezVous.CreateRendezVous,
	list *ucRendezVous.ListRendezVous,
	updateStatus *ucRendezVous.UpdateStatus,
	log *zap.Logger,
) *RendezVousHandler {
	return &RendezVousHandler{
		create:       create,
		list:         list,
		updateStatus: updateStatus,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRendezVousRequest struct {
	PatientID string `json:"patient_id"`
	DentistID string `json:"dentist_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *RendezVousHandler) List(c *gin.Context) {
	_, cabinetID, _ := middleware.Session(c)

	list, err := h.list.Execute(c.Request.Context(), cabinetID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *RendezVousHandler) Create(c *gin.Context) {
	var req CreateRendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	profileID, cabinetID, _ := middleware.Session(c)

	rv, err := h.create.Execute(c.Request.Context(), ucRendezVous.CreateRendezVousInput{
		CabinetID: cabinetID,
		ProfileID: profileID,
		PatientID: req.PatientID,
		DentistID: req.DentistID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Status:    req.Status,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, rv, ucRendezVous.MsgCreated)
}

func (h *RendezVousHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	rv, err := h.updateStatus.Execute(c.Request.Context(), ucRendezVous.UpdateStatusInput{
		CabinetID:    c.GetString(middleware.ContextCabinetID),
		ProfileID:    c.GetString(middleware.ContextProfileID),
		RendezVousID: c.Param("id"),
		Status:       req.Status,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, rv, ucRendezVous.MsgStatusUpdated)
}
