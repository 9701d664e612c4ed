package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucPatient "github.com/BruksfildServices01/dentismart/internal/usecase/patient"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	create *ucPatient.CreatePatient
	list   *ucPatient.ListPatients
	log    *zap.Logger
}

func NewPatientHandler(
	create *ucPatient.CreatePatient,
	list *ucPatient.ListPatients,
	log *zap.Logger,
) *PatientHandler {
	return &PatientHandler{create: create, list: list, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Notes       string `json:"notes"`
	DentistID   string `json:"dentist_id"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	_, cabinetID, _ := middleware.Session(c)

	patients, err := h.list.Execute(c.Request.Context(), cabinetID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, patients)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	profileID, cabinetID, _ := middleware.Session(c)

	p, err := h.create.Execute(c.Request.Context(), ucPatient.CreatePatientInput{
		CabinetID:   cabinetID,
		ProfileID:   profileID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Notes:       req.Notes,
		DentistID:   req.DentistID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, p, ucPatient.MsgCreated)
}
