package handler

import (
	"net/http"
	"time"

	"soltana-store-api/internal/assets"
	"soltana-store-api/pkg/apierror"
	"soltana-store-api/pkg/response"
)

// UploadHandler hands out signed-upload parameters for the image host.
type UploadHandler struct {
	signer *assets.Signer
}

// NewUploadHandler creates a new upload handler. signer may be nil
// when no credentials are configured.
func NewUploadHandler(signer *assets.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

// SignUpload handles POST /api/v1/uploads/sign
func (h *UploadHandler) SignUpload(w http.ResponseWriter, r *http.Request) {
	if h.signer == nil {
		response.Error(w, apierror.Unavailable("image uploads not configured"))
		return
	}
	response.OK(w, h.signer.SignUpload(time.Now()))
}
