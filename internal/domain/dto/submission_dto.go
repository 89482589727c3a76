package dto

// SubmissionRequest is the finished form payload plus the media URLs the
// browser collected from its uploads. ImageURL is the older single-image
// variant; when set it is folded into ImageURLs.
type SubmissionRequest struct {
	Form      map[string]string `json:"form"`
	VideoURLs []string          `json:"videoUrls"`
	ImageURLs []string          `json:"imageUrls"`
	ImageURL  string            `json:"imageUrl,omitempty"`
}

type SubmissionResponse struct {
	Ok bool   `json:"ok"`
	ID string `json:"id"`
}
