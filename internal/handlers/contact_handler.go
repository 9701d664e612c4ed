package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/lead"
)

type ContactHandler struct {
	leads *lead.Service
	log   *zap.Logger
}

func NewContactHandler(leads *lead.Service, log *zap.Logger) *ContactHandler {
	return &ContactHandler{leads: leads, log: log}
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Budget   string `json:"budget"`
	Deadline string `json:"deadline"`
	Details  string `json:"details"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	_, err := h.leads.Submit(c.Request.Context(), lead.Submission{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Budget:   req.Budget,
		Deadline: req.Deadline,
		Details:  req.Details,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.Message(c, lead.MsgSubmitted)
}
