package handlers

import (
	"athlete-intake/internal/domain/dto"
	"athlete-intake/internal/usecases"
	"athlete-intake/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	submissionService usecases.SubmissionService
}

func NewSubmissionHandler(submissionService usecases.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Submit
//
// @Summary      Submit Intake Form
// @Description  Accepts the finished form plus media URLs and emails a summary to the owner
// @Tags         Submission
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SubmissionRequest true "Form fields and media URLs"
// @Success      200      {object}  dto.SubmissionResponse
// @Failure      400      {object}  dto.ErrorResponse "Malformed body or missing configuration"
// @Failure      500      {object}  dto.ErrorResponse "Email transport failure"
// @Failure      502      {object}  dto.ErrorResponse "Email provider rejected the send"
// @Router       /submit [post]
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrBadRequest("invalid request body"))
	}

	resp, err := h.submissionService.Submit(c.Context(), &req)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(resp)
}
