package routes

import (
	"bitacora_materiales/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMateriales = "/materiales"
	PathBitacoras  = "/bitacoras"
	PathCatalogo   = "/catalogo"
)

func addMaterialRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, materialHandler *handlers.MaterialHandler) {
	materiales := rg.Group(PathMateriales)
	{
		// Paths kept from the field pages.
		materiales.GET("/buscar", catalogHandler.Search)
		materiales.GET("/listar/:bitacora_id", materialHandler.ListMaterials)
		materiales.POST("/guardar", materialHandler.SaveMaterial)
		materiales.POST("/guardar-lote", materialHandler.SaveBatch)
		materiales.DELETE("/borrar/:id", materialHandler.DeleteMaterial)
	}
}

func addBitacoraRoutes(rg *gin.RouterGroup, bitacoraHandler *handlers.BitacoraHandler) {
	rg.GET(PathBitacoras+"/:id", bitacoraHandler.GetBitacora)
}

func addCatalogRoutes(rg *gin.RouterGroup, importHandler *handlers.ImportHandler) {
	rg.POST(PathCatalogo+"/importar", importHandler.ImportCatalog)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
