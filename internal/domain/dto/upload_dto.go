package dto

type CreateMultipartRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type CreateMultipartResponse struct {
	UploadID string   `json:"uploadId"`
	Key      string   `json:"key"`
	PartSize int64    `json:"partSize"`
	URLs     []string `json:"urls"`
}

// CompletedPart mirrors the S3 completion entry shape, so the browser can
// pass ETags back verbatim.
type CompletedPart struct {
	ETag       string `json:"ETag"`
	PartNumber int32  `json:"PartNumber"`
}

type CompleteMultipartRequest struct {
	Key      string          `json:"key"`
	UploadID string          `json:"uploadId"`
	Parts    []CompletedPart `json:"parts"`
}

type CompleteMultipartResponse struct {
	Ok      bool   `json:"ok"`
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

type AbortMultipartRequest struct {
	Key      string `json:"key"`
	UploadID string `json:"uploadId"`
}

type AbortMultipartResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
