package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shorex/internal/services"
	"shorex/pkg/utils"
)

type CatalogController struct {
	catalog services.PortCatalogInterface
}

func NewCatalogController(catalog services.PortCatalogInterface) *CatalogController {
	return &CatalogController{
		catalog: catalog,
	}
}

// SearchPorts godoc
// @Summary Search the port catalog
// @Description Search built-in cruise ports by name, country or region
// @Tags Catalog
// @Produce json
// @Param q query string false "Search text"
// @Param region query string false "Filter by region"
// @Param limit query int false "Maximum results (1-50)"
// @Success 200 {object} utils.APIResponse
// @Router /api/ports/search [get]
func (cc *CatalogController) SearchPorts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}

	ports := cc.catalog.Search(c.Query("q"), c.Query("region"), limit)
	utils.RespondSuccess(c, ports, "Ports retrieved successfully")
}

// ListRegions godoc
// @Summary List catalog regions
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/ports/regions [get]
func (cc *CatalogController) ListRegions(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalog.Regions(), "Regions retrieved successfully")
}
