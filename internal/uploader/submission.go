package uploader

import (
	"context"
	"fmt"
	"strings"

	"athlete-intake/internal/domain/dto"
)

// Submission holds the collected form input before anything is sent.
type Submission struct {
	Form       map[string]string
	ImagePaths []string
	VideoPaths []string

	// RequiredFields must be non-empty in Form before submission starts.
	RequiredFields []string
	// RequireImage demands at least one selected image.
	RequireImage bool
}

// Validate runs the client-side checks. It performs no network calls; a
// failed submission never leaves the machine.
func (s *Submission) Validate() error {
	for _, f := range s.RequiredFields {
		if strings.TrimSpace(s.Form[f]) == "" {
			return fmt.Errorf("required field %q is empty", f)
		}
	}
	if s.RequireImage && len(s.ImagePaths) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	return nil
}

// Outcome is the server's answer plus the media URLs gathered on the way.
type Outcome struct {
	ImageURLs []string
	VideoURLs []string
	ID        string
}

// Submit validates, uploads all images then all videos one after another,
// and posts the finished form. The first failed upload aborts the whole
// submission; files already uploaded are left in place.
func (c *Client) Submit(ctx context.Context, sub *Submission) (*Outcome, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	outcome := &Outcome{}

	for _, p := range sub.ImagePaths {
		res, err := c.UploadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		outcome.ImageURLs = append(outcome.ImageURLs, res.FileURL)
	}

	for _, p := range sub.VideoPaths {
		res, err := c.UploadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		outcome.VideoURLs = append(outcome.VideoURLs, res.FileURL)
	}

	var resp dto.SubmissionResponse
	err := c.postJSON(ctx, "/submit", dto.SubmissionRequest{
		Form:      sub.Form,
		VideoURLs: outcome.VideoURLs,
		ImageURLs: outcome.ImageURLs,
	}, &resp)
	if err != nil {
		return nil, err
	}

	outcome.ID = resp.ID
	return outcome, nil
}
