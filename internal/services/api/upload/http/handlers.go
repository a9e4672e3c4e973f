// Package http provides http transport for prompt uploads
package http

import (
	stdhttp "net/http"
	"strconv"

	"promptcorrector/internal/core/batch"
	"promptcorrector/internal/modkit/httpkit"
	perr "promptcorrector/internal/platform/errors"
	"promptcorrector/internal/services/api/upload/domain"
	svc "promptcorrector/internal/services/api/upload/service"
)

// MaxFileBytes caps a multipart upload
const MaxFileBytes = 10 << 20

// Register mounts upload endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.UploadInput](r, "/", h.rows)
	httpkit.Post(r, "/file", h.file)
}

type handlers struct{ svc svc.Service }

func preview(r *stdhttp.Request) (bool, error) {
	raw := r.URL.Query().Get("preview")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "preview %q is not a boolean", raw), "preview")
	}
	return v, nil
}

func created(out domain.UploadOutput) any {
	if out.Preview {
		return out
	}
	return httpkit.Created(out)
}

// swagger:route POST /upload Upload uploadRows
// @Summary Upload prompts as JSON rows
// @Description Each row becomes a pending record {creator}_Set_{set_num}_{index}. Every problem is reported at once
// @Tags Upload
// @Accept json
// @Produce json
// @Param preview query bool false "Build the records without writing them"
// @Param payload body domain.UploadInput true "Batch"
// @Success 200 {object} domain.UploadOutput "preview"
// @Success 201 {object} domain.UploadOutput "written"
// @Failure 400 {object} httpkit.Envelope
// @Router /upload [post]
func (h *handlers) rows(r *stdhttp.Request, in domain.UploadInput) (any, error) {
	pv, err := preview(r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(in.Rows))
	for i, s := range in.Rows {
		rows[i] = []string{s}
	}
	out, err := h.svc.Ingest(r.Context(), in.Params(), rows, pv)
	if err != nil {
		return nil, err
	}
	return created(out), nil
}

// swagger:route POST /upload/file Upload uploadFile
// @Summary Upload a header-less single column CSV or XLSX file
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param preview query bool false "Build the records without writing them"
// @Param file formData file true "prompts.csv or prompts.xlsx"
// @Param creator formData string true "Creator code"
// @Param set_num formData string true "Set number"
// @Param domain formData string false "Domain, default General"
// @Param creator_name formData string false "Display name, default creator"
// @Success 200 {object} domain.UploadOutput "preview"
// @Success 201 {object} domain.UploadOutput "written"
// @Failure 400 {object} httpkit.Envelope
// @Router /upload/file [post]
func (h *handlers) file(r *stdhttp.Request) (any, error) {
	pv, err := preview(r)
	if err != nil {
		return nil, err
	}
	if err := r.ParseMultipartForm(MaxFileBytes); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "expected a multipart form under 10MB")
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "file is required"), "file")
	}
	defer func() { _ = f.Close() }()

	rows, err := batch.Read(hdr.Filename, f)
	if err != nil {
		return nil, perr.WithField(err, "file")
	}
	p := domain.UploadInput{
		Creator:     r.FormValue("creator"),
		SetNum:      r.FormValue("set_num"),
		Domain:      r.FormValue("domain"),
		CreatorName: r.FormValue("creator_name"),
	}
	if err := httpkit.Validate(p); err != nil {
		return nil, err
	}
	out, err := h.svc.Ingest(r.Context(), p.Params(), rows, pv)
	if err != nil {
		return nil, err
	}
	return created(out), nil
}
