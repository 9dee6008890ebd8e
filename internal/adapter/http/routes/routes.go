package routes

import (
	"log"
	"strconv"

	_ "vindicia_gateway/docs" // This will be auto-generated
	"vindicia_gateway/internal/adapter/http/handlers"
	repository2 "vindicia_gateway/internal/adapter/persistence/repository"
	"vindicia_gateway/internal/infrastructure/database"
	"vindicia_gateway/internal/infrastructure/soap"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/internal/usecase/interfaces"

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

	sessionRepo := repository2.NewHOASessionDynamoRepository(ddb)
	recordRepo := repository2.NewTransactionRecordDynamoRepository(ddb)

	var transport interfaces.ISoapTransport
	client, err := soap.NewClient(soap.NewConfigFromEnv())
	if err != nil {
		log.Printf("SOAP transport not configured: %v", err)
	} else {
		transport = client
	}

	gatewayUseCase := usecase.NewGatewayUseCase(transport, recordRepo, sessionRepo)

	transactionHandler := handlers.NewTransactionHandler(gatewayUseCase)
	customerHandler := handlers.NewCustomerHandler(gatewayUseCase)
	catalogHandler := handlers.NewCatalogHandler(gatewayUseCase)
	hoaHandler := handlers.NewHOAHandler(gatewayUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, transactionHandler, customerHandler, catalogHandler, hoaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
