package routes

import (
	"log"
	"strconv"

	_ "roofquote/docs" // generated swagger spec
	"roofquote/internal/adapter/http/handlers"
	"roofquote/internal/adapter/persistence/repository"
	"roofquote/internal/infrastructure/commerce"
	"roofquote/internal/infrastructure/database"
	"roofquote/internal/usecase"

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

	configRepo := repository.NewWidgetConfigDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	platform := commerce.NewShopifyPlatform()

	checkoutUseCase := usecase.NewCheckoutUseCase(configRepo, platform, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, checkoutHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
