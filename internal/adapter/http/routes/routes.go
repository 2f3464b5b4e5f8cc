package routes

import (
	"log"
	"strconv"

	_ "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/docs" // This will be auto-generated
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/handlers"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/http/middleware"
	repository2 "github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/adapter/persistence/repository"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/infrastructure/database"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	postRepo := repository2.NewPostDynamoRepository(ddb)

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	financeUseCase := usecase.NewFinanceUseCase(invoiceRepo, projectRepo)
	postUseCase := usecase.NewPostUseCase(postRepo)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	postHandler := handlers.NewPostHandler(postUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSiteRoutes(v1, postHandler)

	// Admin surface, gated by a static bearer token.
	admin := v1.Group("/admin", middleware.AdminAuth())
	addAdminRoutes(admin, projectHandler, financeHandler, postHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
