package api

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/storage"
)

// multipart framing allowance on top of the logo limit
const formOverhead = 64 << 10

// uploadLogo godoc
// @Summary      Upload a company logo
// @Description  The image is scaled to fit 600x600 and stored as PNG.
// @Tags         logos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "logo image"
// @Success      201   {object}  Response{data=storage.Object}
// @Failure      400   {object}  Response
// @Failure      413   {object}  Response
// @Failure      415   {object}  Response
// @Failure      503   {object}  Response
// @Router       /api/v1/logos [post]
func (s *Server) uploadLogo(w http.ResponseWriter, r *http.Request) {
	if s.files == nil {
		writeError(w, http.StatusServiceUnavailable, "logo storage not configured")
		return
	}
	limit := s.files.MaxLogoBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit+formOverhead)
	if err := r.ParseMultipartForm(limit + formOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, storage.ErrTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeError(w, http.StatusUnsupportedMediaType, "only image uploads are accepted")
		return
	}
	if header.Size > limit {
		writeError(w, http.StatusRequestEntityTooLarge, storage.ErrTooLarge.Error())
		return
	}

	obj, err := s.files.StoreLogo(r.Context(), file)
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, storage.ErrNotImage):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case err != nil:
		s.log.Error("uploading logo", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to upload logo")
	default:
		writeJSON(w, http.StatusCreated, obj)
	}
}
