package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/catalog"
)

// HomeHandler serves the public catalog.
type HomeHandler struct {
	listActive *ucCatalog.ListActiveServices
}

func NewHomeHandler(listActive *ucCatalog.ListActiveServices) *HomeHandler {
	return &HomeHandler{listActive: listActive}
}

func (h *HomeHandler) Index(c *gin.Context) {
	services, err := h.listActive.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}
