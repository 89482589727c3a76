package constants

const (
	StatusOK         = "ok"
	StatusPending    = "pending"
	StatusInitiating = "initiating"
	StatusUploading  = "uploading"
	StatusCompleting = "completing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
