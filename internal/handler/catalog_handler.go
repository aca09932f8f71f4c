package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/service"
)

// CatalogHandler serves the SMM catalog endpoints. The listing is
// public; mutations sit behind the admin gate in the router.
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// GetServiceList handles GET /catalog/getServiceList?platform=. Public;
// only active entries are returned. Admins pass include_inactive=true
// on the admin route to see hidden entries too.
func (h *CatalogHandler) GetServiceList(c *gin.Context) {
	var req request.GetServiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.GetServiceList(req.Platform, false)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFullServiceList handles GET /catalog/getFullServiceList (admin),
// including inactive entries.
func (h *CatalogHandler) GetFullServiceList(c *gin.Context) {
	var req request.GetServiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.GetServiceList(req.Platform, true)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AddService handles POST /catalog/addService (admin).
func (h *CatalogHandler) AddService(c *gin.Context) {
	var req request.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.AddService(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteServices handles POST /catalog/deleteServices (admin).
func (h *CatalogHandler) DeleteServices(c *gin.Context) {
	var req request.DeleteServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.catalogSvc.DeleteServices(req.UuidList); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SetServicesActive handles POST /catalog/setServicesActive (admin).
func (h *CatalogHandler) SetServicesActive(c *gin.Context) {
	var req request.SetServicesActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.catalogSvc.SetServicesActive(req.UuidList, *req.Active); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
