package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucDentist "github.com/BruksfildServices01/dentismart/internal/usecase/dentist"
)

type DentistHandler struct {
	list *ucDentist.ListDentists
	log  *zap.Logger
}

func NewDentistHandler(list *ucDentist.ListDentists, log *zap.Logger) *DentistHandler {
	return &DentistHandler{list: list, log: log}
}

func (h *DentistHandler) List(c *gin.Context) {
	_, cabinetID, _ := middleware.Session(c)

	dentists, err := h.list.Execute(c.Request.Context(), cabinetID)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, dentists)
}
