package routers

import (
	"athlete-intake/internal/delivery/http/handlers"
	"athlete-intake/internal/usecases"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, uploadService usecases.UploadService, submissionService usecases.SubmissionService) {
	uploadHandler := handlers.NewUploadHandler(uploadService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)

	app.Post("/upload/create-multipart", uploadHandler.CreateMultipart)
	app.Post("/upload/complete-multipart", uploadHandler.CompleteMultipart)
	app.Post("/upload/abort-multipart", uploadHandler.AbortMultipart)
	app.Post("/submit", submissionHandler.Submit)
}
