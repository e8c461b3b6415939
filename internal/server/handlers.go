package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/layoutc/pkg/buildinfo"
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/export"
	"github.com/matzehuels/layoutc/pkg/manifest"
	"github.com/matzehuels/layoutc/pkg/pipeline"
)

// Response headers set by the layout route.
const (
	HeaderLayoutID    = "X-Layout-ID"
	HeaderLayoutCache = "X-Layout-Cache"
)

type errorResponse struct {
	Error     string      `json:"error"`
	Detail    string      `json:"detail,omitempty"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	opts, err := layoutOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		if tooLarge := new(http.MaxBytesError); stderrors.As(err, &tooLarge) {
			s.fail(w, r, errors.Wrap(errors.ErrCodeTooLarge, err, "body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	if len(data) == 0 {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "empty body"))
		return
	}

	opts.Logger = s.logger.With("request_id", RequestIDFromContext(r.Context()))
	res, err := s.runner.Run(r.Context(), data, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := export.MarshalLayout(res.Layout)
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}

	cacheState := "miss"
	if res.Cached {
		cacheState = "hit"
	}
	w.Header().Set(HeaderLayoutID, res.ID)
	w.Header().Set(HeaderLayoutCache, cacheState)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// layoutOptions reads width, height, strict, format and nocache from the
// query. The format falls back to the Content-Type, then to JSON.
func layoutOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options

	var err error
	if opts.Width, err = queryFloat(q.Get("width"), "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = queryFloat(q.Get("height"), "height"); err != nil {
		return opts, err
	}
	if opts.Strict, err = queryBool(q.Get("strict"), "strict"); err != nil {
		return opts, err
	}
	if opts.NoCache, err = queryBool(q.Get("nocache"), "nocache"); err != nil {
		return opts, err
	}

	format := q.Get("format")
	if format == "" {
		format = formatFromContentType(r.Header.Get("Content-Type"))
	}
	if opts.Format, err = manifest.ParseFormat(format); err != nil {
		return opts, err
	}
	return opts, nil
}

func queryFloat(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidViewport, "%s must be a number, got %q", name, v)
	}
	return &f, nil
}

func queryBool(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}

func formatFromContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return string(manifest.FormatJSON)
	}
	switch {
	case strings.HasSuffix(mt, "toml"):
		return string(manifest.FormatTOML)
	case strings.HasSuffix(mt, "yaml"):
		return string(manifest.FormatYAML)
	default:
		return string(manifest.FormatJSON)
	}
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidViewport,
		errors.ErrCodeInvalidTree:
		return http.StatusBadRequest
	case errors.ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeSolver, errors.ErrCodeInvalidNode, errors.ErrCodeNotComputed:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	id := RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("layout request failed", "request_id", id, "err", err)
	} else {
		s.logger.Debug("layout request rejected", "request_id", id, "status", status, "err", err)
	}
	resp := errorResponse{
		Error:     errors.UserMessage(err),
		Code:      errors.GetCode(err),
		RequestID: id,
	}
	if status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
