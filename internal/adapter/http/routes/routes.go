package routes

import (
	"strconv"

	_ "cobranca_facil/docs" // This will be auto-generated
	"cobranca_facil/internal/adapter/http/handlers"
	repository2 "cobranca_facil/internal/adapter/persistence/repository"
	"cobranca_facil/internal/infrastructure/database"
	"cobranca_facil/internal/infrastructure/logging"
	"cobranca_facil/internal/infrastructure/storage"
	"cobranca_facil/internal/usecase"

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
		logging.GetLogger().Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	log := logging.GetLogger()
	ddb := database.ConnectDynamoDB()
	media := storage.NewMediaStorage()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	payerRepo := repository2.NewPayerDynamoRepository(ddb)
	creditorRepo := repository2.NewCreditorDynamoRepository(ddb)
	agreementRepo := repository2.NewAgreementDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	boletoRepo := repository2.NewBoletoDynamoRepository(ddb)

	spreadsheetUseCase := usecase.NewSpreadsheetUseCase(userRepo, payerRepo, creditorRepo, agreementRepo, installmentRepo, boletoRepo, media, log)
	payerUseCase := usecase.NewPayerUseCase(payerRepo, userRepo)
	creditorUseCase := usecase.NewCreditorUseCase(creditorRepo)
	agreementUseCase := usecase.NewAgreementUseCase(agreementRepo, payerRepo, creditorRepo)
	installmentUseCase := usecase.NewInstallmentUseCase(installmentRepo, agreementRepo)
	boletoUseCase := usecase.NewBoletoUseCase(boletoRepo, installmentRepo, media)

	spreadsheetHandler := handlers.NewSpreadsheetHandler(spreadsheetUseCase)
	payerHandler := handlers.NewPayerHandler(payerUseCase)
	creditorHandler := handlers.NewCreditorHandler(creditorUseCase)
	agreementHandler := handlers.NewAgreementHandler(agreementUseCase)
	installmentHandler := handlers.NewInstallmentHandler(installmentUseCase)
	boletoHandler := handlers.NewBoletoHandler(boletoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCollectionsRoutes(v1, spreadsheetHandler, payerHandler, creditorHandler, agreementHandler, installmentHandler, boletoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.GetLogger().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
