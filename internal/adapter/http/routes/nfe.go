package routes

import (
	"nfe_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments     = "/documents"
	PathEmissions     = "/emissions"
	PathInvalidations = "/invalidations"
	PathOptions       = "/options"
	PathStatus        = "/status"
)

func addDocumentRoutes(rg *gin.RouterGroup, h Handlers) {
	docs := rg.Group(PathDocuments)
	{
		docs.GET("", h.Documents.ListDocuments)
		docs.POST("", h.Documents.SaveDraft)
		docs.GET("/next-number", h.Documents.NextNumber)
		docs.POST("/validate", h.Documents.Validate)
		docs.POST("/preview", h.Documents.Preview)
		docs.GET("/:id", h.Documents.GetDocument)
		docs.PUT("/:id", h.Documents.ReplaceDraft)
		docs.PUT("/:id/sections/:section", h.Documents.UpdateSection)
		docs.POST("/:id/clone", h.Documents.CloneDocument)

		docs.POST("/:id/cancel", h.PostEmission.CancelDocument)
		docs.POST("/:id/invalidate", h.PostEmission.InvalidateNumbers)
		docs.POST("/:id/corrections", h.PostEmission.IssueCorrectionLetter)
		docs.GET("/:id/corrections", h.PostEmission.ListCorrectionLetters)
		docs.GET("/:id/corrections/:seq/pdf", h.PostEmission.CorrectionLetterPDF)
		docs.POST("/:id/danfe", h.PostEmission.GenerateDANFE)
		docs.GET("/:id/xml", h.PostEmission.DownloadXML)
		docs.GET("/:id/pdf", h.PostEmission.DownloadPDF)
		docs.POST("/:id/email", h.PostEmission.SendEmail)
	}
	rg.POST(PathInvalidations, h.PostEmission.InvalidateNumbers)
}

func addEmissionRoutes(rg *gin.RouterGroup, h *handlers.EmissionHandler) {
	emissions := rg.Group(PathEmissions)
	{
		emissions.POST("", h.StartEmission)
		emissions.GET("/:id", h.GetEmission)
		emissions.POST("/:id/cancel", h.CancelEmission)
	}
}

func addOptionRoutes(rg *gin.RouterGroup, h *handlers.OptionHandler) {
	options := rg.Group(PathOptions)
	{
		options.GET("", h.ListOptions)
		options.POST("", h.CreateOption)
		options.GET("/:id", h.GetOption)
		options.PUT("/:id", h.UpdateOption)
		options.DELETE("/:id", h.DeleteOption)
		options.PUT("/:id/reorder", h.ReorderItems)
		options.POST("/:id/items", h.AddItem)
		options.PUT("/:id/items/:itemId", h.UpdateItem)
		options.DELETE("/:id/items/:itemId", h.DeleteItem)
		options.GET("/:id/items/:itemId/price", h.ResolvePrice)
		options.PUT("/:id/items/:itemId/prices/:tableId", h.SetPriceOverride)
	}
}

func addStatusRoutes(rg *gin.RouterGroup, h *handlers.StatusHandler) {
	status := rg.Group(PathStatus)
	{
		status.GET("", h.Overview)
		status.GET("/backend", h.Backend)
		status.GET("/sefaz", h.Sefaz)
		status.GET("/certificate", h.Certificate)
	}
}
