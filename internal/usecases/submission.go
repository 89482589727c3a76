package usecases

import (
	"context"
	"fmt"
	"strings"

	"athlete-intake/internal/domain/dto"
	"athlete-intake/internal/infrastructure/mailer"
	"athlete-intake/pkg/config"
	"athlete-intake/pkg/errors"
	"athlete-intake/pkg/mailaddr"
)

type SubmissionService interface {
	Submit(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	mailer mailer.Mailer
	cfg    config.EmailConfig
}

func NewSubmissionService(m mailer.Mailer, cfg config.EmailConfig) SubmissionService {
	return &submissionService{
		mailer: m,
		cfg:    cfg,
	}
}

// Submit renders the notification email and dispatches it to the owner.
// Configuration problems fail fast with 400 before any external call.
func (s *submissionService) Submit(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error) {
	if s.cfg.APIKey == "" {
		return nil, errors.ErrMissingConfig("email API key is not configured")
	}
	if s.cfg.Sender == "" {
		return nil, errors.ErrMissingConfig("sender address is not configured")
	}
	if s.cfg.Owner == "" {
		return nil, errors.ErrMissingConfig("owner address is not configured")
	}

	sender, err := mailaddr.Parse(s.cfg.Sender)
	if err != nil {
		return nil, errors.ErrInvalidAddress("sender", err)
	}
	owner, err := mailaddr.Parse(s.cfg.Owner)
	if err != nil {
		return nil, errors.ErrInvalidAddress("owner", err)
	}

	form := req.Form
	if form == nil {
		form = map[string]string{}
	}

	imageURLs := req.ImageURLs
	if req.ImageURL != "" {
		imageURLs = append(imageURLs, req.ImageURL)
	}

	body, err := renderEmailBody(form, req.VideoURLs, imageURLs)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	env := mailer.Envelope{
		From:    sender.String(),
		To:      []string{owner.Address},
		Subject: s.subjectFor(form),
		HTML:    body,
	}

	// The submitter's own address, when present and parseable, becomes
	// reply-to so the owner can answer directly.
	for _, k := range []string{"email", "submitterEmail", "parentEmail"} {
		if v := strings.TrimSpace(form[k]); v != "" && mailaddr.Valid(v) {
			env.ReplyTo = v
			break
		}
	}

	id, err := s.mailer.Send(ctx, env)
	if err != nil {
		return nil, err
	}

	return &dto.SubmissionResponse{Ok: true, ID: id}, nil
}

func (s *submissionService) subjectFor(form map[string]string) string {
	subject := s.cfg.Subject
	if subject == "" {
		subject = "New athlete submission"
	}

	name := strings.TrimSpace(form["playerFirstName"] + " " + form["playerLastName"])
	if name != "" {
		subject = fmt.Sprintf("%s - %s", subject, name)
	}
	return subject
}
