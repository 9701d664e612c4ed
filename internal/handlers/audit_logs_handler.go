package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	log    *zap.Logger
}

func NewAuditLogsHandler(reader audit.Reader, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, log: log}
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	// --------------------------------------------------
	// Always scoped to the caller's cabinet
	// --------------------------------------------------
	f := audit.Filter{
		CabinetID: c.GetString(middleware.ContextCabinetID),
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
		Page:      page,
		Limit:     limit,
	}.Normalize()

	// --------------------------------------------------
	// Optional date range, whole days
	// --------------------------------------------------
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.reader.ListAuditLogs(c.Request.Context(), f)
	if err != nil {
		fail(c, h.log, httperr.ErrUpstream("audit_list_failed", "Erreur lors de la récupération du journal", err))
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, AuditLogPage{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	}, "")
}
