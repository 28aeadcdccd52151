package routes

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	_ "bitacora_materiales/docs"
	"bitacora_materiales/internal/adapter/http/handlers"
	"bitacora_materiales/internal/adapter/persistence/postgres"
	"bitacora_materiales/internal/adapter/persistence/repository"
	"bitacora_materiales/internal/infrastructure/database"
	"bitacora_materiales/internal/usecase"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	DefaultPort = "8080"

	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Repositories are the stores behind the use cases.
type Repositories struct {
	Bitacoras  interfaces.IBitacoraRepository
	Materiales interfaces.IMaterialRepository
	Catalogo   interfaces.ICatalogRepository
}

// Run connects the configured store and serves until the listener fails.
func Run() error {
	log := zap.L().Named("routes")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	repos, err := OpenRepositories(ctx, getenvDefault("STORE_DRIVER", StoreDynamoDB))
	cancel()
	if err != nil {
		return err
	}

	router := NewRouter(repos)
	addr := ":" + getenvDefault("PORT", DefaultPort)
	log.Info("listening", zap.String("addr", addr))
	return router.Run(addr)
}

// OpenRepositories builds the repositories for driver (dynamodb or postgres).
func OpenRepositories(ctx context.Context, driver string) (Repositories, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Bitacoras:  repository.NewBitacoraDynamoRepository(ddb),
			Materiales: repository.NewMaterialDynamoRepository(ddb),
			Catalogo:   repository.NewCatalogDynamoRepository(ddb),
		}, nil
	case StorePostgres:
		db, err := database.ConnectPostgres(ctx, os.Getenv("DATABASE_URL"))
		if err != nil {
			return Repositories{}, err
		}
		if err := postgres.Migrate(db); err != nil {
			return Repositories{}, fmt.Errorf("postgres migrate: %w", err)
		}
		return Repositories{
			Bitacoras:  postgres.NewBitacoraRepository(db),
			Materiales: postgres.NewMaterialRepository(db),
			Catalogo:   postgres.NewCatalogRepository(db),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

// NewRouter wires use cases and handlers over repos.
func NewRouter(repos Repositories) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogHandler := handlers.NewCatalogHandler(usecase.NewCatalogUseCase(repos.Catalogo))
	materialHandler := handlers.NewMaterialHandler(usecase.NewMaterialUseCase(repos.Materiales, repos.Bitacoras))
	bitacoraHandler := handlers.NewBitacoraHandler(usecase.NewBitacoraUseCase(repos.Bitacoras))
	importHandler := handlers.NewImportHandler(usecase.NewImportUseCase(repos.Catalogo))

	api := router.Group("/api")
	addPingRoutes(api)
	addMaterialRoutes(api, catalogHandler, materialHandler)
	addBitacoraRoutes(api, bitacoraHandler)
	addCatalogRoutes(api, importHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	log := zap.L().Named("routes")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(500, gin.H{"ok": false, "code": "INTERNAL_ERROR", "error": "Error interno"})
	}))
	router.MaxMultipartMemory = handlers.MaxImportFileSize
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
