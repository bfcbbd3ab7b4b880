package service

import "portfolio/internal/validation"

// Status classifies the outcome of a submission.
type Status string

const (
	StatusOK           Status = "ok"
	StatusInvalid      Status = "invalid"
	StatusUploadFailed Status = "upload_failed"
	StatusSendFailed   Status = "send_failed"
	StatusNotFound     Status = "not_found"
	StatusSaveFailed   Status = "save_failed"
)

// Messages shown to the submitter when the store rejects a write.
const (
	msgInvalid      = "Invalid form data."
	msgSaveFailed   = "Could not save the entry to the database."
	msgDeleteFailed = "Could not delete the entry from the database."
	msgNotFound     = "The entry no longer exists."
)

// Result is what every submission returns. Failures are values, not Go errors,
// so callers can render them straight back into the form.
type Result struct {
	Status  Status                 `json:"status"`
	ID      string                 `json:"id,omitempty"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Issues  validation.FieldErrors `json:"issues,omitempty"`
}

// OK reports whether the submission succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

func invalid(fe validation.FieldErrors) Result {
	return Result{Status: StatusInvalid, Error: msgInvalid, Issues: fe}
}

func failed(status Status, msg string) Result {
	return Result{Status: status, Error: msg}
}
