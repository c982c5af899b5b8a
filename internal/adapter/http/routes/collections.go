package routes

import (
	"cobranca_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSpreadsheets = "/spreadsheets"
	PathPayers       = "/payers"
	PathCreditors    = "/creditors"
	PathAgreements   = "/agreements"
	PathInstallments = "/installments"
	PathBoletos      = "/boletos"
)

func addCollectionsRoutes(
	rg *gin.RouterGroup,
	spreadsheetHandler *handlers.SpreadsheetHandler,
	payerHandler *handlers.PayerHandler,
	creditorHandler *handlers.CreditorHandler,
	agreementHandler *handlers.AgreementHandler,
	installmentHandler *handlers.InstallmentHandler,
	boletoHandler *handlers.BoletoHandler,
) {
	spreadsheets := rg.Group(PathSpreadsheets)
	{
		spreadsheets.POST("/process", spreadsheetHandler.Process)
		spreadsheets.GET("/results/:job_id", spreadsheetHandler.Results)
		spreadsheets.POST("/save_results/:job_id", spreadsheetHandler.SaveResults)
	}

	payers := rg.Group(PathPayers)
	{
		payers.POST("", payerHandler.Create)
		payers.GET("", payerHandler.List)
		payers.GET("/:cpf_cnpj", payerHandler.Get)
		payers.PUT("/:cpf_cnpj", payerHandler.Update)
		payers.DELETE("/:cpf_cnpj", payerHandler.Delete)
	}

	creditors := rg.Group(PathCreditors)
	{
		creditors.POST("", creditorHandler.Create)
		creditors.GET("", creditorHandler.List)
		creditors.GET("/:name", creditorHandler.Get)
		creditors.PUT("/:name", creditorHandler.Update)
		creditors.DELETE("/:name", creditorHandler.Delete)
	}

	agreements := rg.Group(PathAgreements)
	{
		agreements.POST("", agreementHandler.Create)
		agreements.GET("", agreementHandler.ListByPayer)
		agreements.GET("/:number", agreementHandler.Get)
		agreements.PATCH("/:number/close", agreementHandler.Close)
	}

	installments := rg.Group(PathInstallments)
	{
		installments.POST("", installmentHandler.Create)
		installments.GET("/:agreement_number", installmentHandler.ListByAgreement)
		installments.GET("/:agreement_number/:number", installmentHandler.Get)
	}

	boletos := rg.Group(PathBoletos)
	{
		boletos.POST("/:agreement_number/:number", boletoHandler.Create)
		boletos.GET("/:agreement_number/:number", boletoHandler.Get)
		boletos.PATCH("/:agreement_number/:number/pay", boletoHandler.MarkPaid)
	}
}
