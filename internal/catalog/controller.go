package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service CatalogServiceAPI
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func respond(c *gin.Context, key string, items interface{}, pages int, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		key:          items,
		"totalPages": pages,
		"pageSize":   PageSize,
	})
}

func (cc *CatalogController) GetServices(c *gin.Context) {
	items, pages, err := cc.Service.SearchServices(c.Query("search"), pageParam(c))
	respond(c, "services", items, pages, err)
}

func (cc *CatalogController) GetSupportGroups(c *gin.Context) {
	items, pages, err := cc.Service.SearchSupportGroups(c.Query("search"), pageParam(c))
	respond(c, "supportGroups", items, pages, err)
}

func (cc *CatalogController) GetTypes(c *gin.Context) {
	items, pages, err := cc.Service.SearchTypes(c.Query("search"), pageParam(c))
	respond(c, "types", items, pages, err)
}

func (cc *CatalogController) GetFunctions(c *gin.Context) {
	items, pages, err := cc.Service.SearchFunctions(c.Query("search"), pageParam(c))
	respond(c, "functions", items, pages, err)
}

func (cc *CatalogController) GetBrands(c *gin.Context) {
	items, pages, err := cc.Service.SearchBrands(c.Query("search"), pageParam(c))
	respond(c, "brands", items, pages, err)
}

func (cc *CatalogController) GetLocations(c *gin.Context) {
	items, pages, err := cc.Service.SearchLocations(c.Query("search"), pageParam(c))
	respond(c, "locations", items, pages, err)
}

func (cc *CatalogController) GetCustomers(c *gin.Context) {
	items, pages, err := cc.Service.SearchCustomers(c.Query("search"), pageParam(c))
	respond(c, "customers", items, pages, err)
}

// GetSystems refuses to answer without a service id; the client shows
// its "select a Service first" state instead of calling blind.
func (cc *CatalogController) GetSystems(c *gin.Context) {
	serviceID := strings.TrimSpace(c.Query("serviceId"))
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}
	items, pages, err := cc.Service.SearchSystems(serviceID, c.Query("search"), pageParam(c))
	respond(c, "systems", items, pages, err)
}

func (cc *CatalogController) GetApplications(c *gin.Context) {
	systemID := strings.TrimSpace(c.Query("systemId"))
	if systemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "systemId is required"})
		return
	}
	items, pages, err := cc.Service.SearchApplications(systemID, c.Query("search"), pageParam(c))
	respond(c, "applications", items, pages, err)
}

func (cc *CatalogController) GetProjects(c *gin.Context) {
	items, pages, err := cc.Service.SearchProjects(c.Query("search"), pageParam(c))
	respond(c, "projects", items, pages, err)
}

func (cc *CatalogController) GetSuppliers(c *gin.Context) {
	items, pages, err := cc.Service.SearchSuppliers(c.Query("search"), pageParam(c))
	respond(c, "suppliers", items, pages, err)
}

func (cc *CatalogController) GetSRReleases(c *gin.Context) {
	items, pages, err := cc.Service.SearchSRReleases(c.Query("search"), pageParam(c))
	respond(c, "srReleases", items, pages, err)
}

func (cc *CatalogController) GetConfigurationItems(c *gin.Context) {
	items, pages, err := cc.Service.SearchConfigurationItems(
		strings.TrimSpace(c.Query("excludeCiId")), c.Query("search"), pageParam(c))
	respond(c, "cis", items, pages, err)
}
