package catalog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, catalogService CatalogServiceAPI, authRequired gin.HandlerFunc) {
	catalogController := &CatalogController{Service: catalogService}

	masterGroup := r.Group("/master")
	masterGroup.Use(authRequired)
	{
		masterGroup.GET("/services", catalogController.GetServices)
		masterGroup.GET("/support-groups", catalogController.GetSupportGroups)
		masterGroup.GET("/types", catalogController.GetTypes)
		masterGroup.GET("/functions", catalogController.GetFunctions)
		masterGroup.GET("/brands", catalogController.GetBrands)
		masterGroup.GET("/locations", catalogController.GetLocations)
		masterGroup.GET("/customers", catalogController.GetCustomers)
		masterGroup.GET("/systems", catalogController.GetSystems)
		masterGroup.GET("/applications", catalogController.GetApplications)
		masterGroup.GET("/projects", catalogController.GetProjects)
		masterGroup.GET("/suppliers", catalogController.GetSuppliers)
		masterGroup.GET("/sr-releases", catalogController.GetSRReleases)
		masterGroup.GET("/cis", catalogController.GetConfigurationItems)
	}
}
