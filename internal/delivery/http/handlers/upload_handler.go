package handlers

import (
	"athlete-intake/internal/domain/dto"
	"athlete-intake/internal/usecases"
	"athlete-intake/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService usecases.UploadService
}

func NewUploadHandler(uploadService usecases.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// CreateMultipart
//
// @Summary      Initiate Multipart Upload
// @Description  Opens a multipart upload and returns one presigned URL per part
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateMultipartRequest true "File name, content type and size"
// @Success      200      {object}  dto.CreateMultipartResponse
// @Failure      400      {object}  dto.ErrorResponse "Invalid request or too many parts"
// @Failure      500      {object}  dto.ErrorResponse "Storage backend failure"
// @Router       /upload/create-multipart [post]
func (h *UploadHandler) CreateMultipart(c *fiber.Ctx) error {
	var req dto.CreateMultipartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	resp, err := h.uploadService.CreateMultipart(c.Context(), &req)
	if err != nil {
		return c.Status(errors.StatusOf(err)).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(resp)
}

// CompleteMultipart
//
// @Summary      Complete Multipart Upload
// @Description  Assembles the object from the uploaded parts and returns its public URL
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CompleteMultipartRequest true "Key, upload id and part list"
// @Success      200      {object}  dto.CompleteMultipartResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /upload/complete-multipart [post]
func (h *UploadHandler) CompleteMultipart(c *fiber.Ctx) error {
	var req dto.CompleteMultipartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	resp, err := h.uploadService.CompleteMultipart(c.Context(), &req)
	if err != nil {
		return c.Status(errors.StatusOf(err)).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(resp)
}

// AbortMultipart
//
// @Summary      Abort Multipart Upload
// @Description  Discards an in-progress multipart upload and its parts
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AbortMultipartRequest true "Key and upload id"
// @Success      200      {object}  dto.AbortMultipartResponse
// @Failure      400      {object}  dto.ErrorResponse "Missing key or uploadId"
// @Failure      500      {object}  dto.ErrorResponse "Storage backend failure"
// @Router       /upload/abort-multipart [post]
func (h *UploadHandler) AbortMultipart(c *fiber.Ctx) error {
	var req dto.AbortMultipartRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid request body"))
	}

	resp, err := h.uploadService.AbortMultipart(c.Context(), &req)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(resp)
}
