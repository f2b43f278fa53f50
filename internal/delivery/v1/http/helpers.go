package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/e"
	"github.com/treinamento/produtos-service/pkg/logger"
)

const maxBodySize = 1 << 20

// StandardError описывает тело ответа для ошибок, не связанных с полями запроса.
type StandardError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ValidationErrorResponse описывает тело ответа 400 со списком ошибок полей.
type ValidationErrorResponse struct {
	Timestamp time.Time      `json:"timestamp"`
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Path      string         `json:"path"`
	Errors    []FieldMessage `json:"errors"`
}

// ToHTTPResponse сопоставляет ошибку usecase со статусом и текстом поля error.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, "Validation error"
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, e.ErrInvalidID),
		errors.Is(err, e.ErrInvalidPage),
		errors.Is(err, e.ErrMalformedBody),
		errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, "Bad request"
	case errors.Is(err, e.ErrAlreadyExists):
		return http.StatusConflict, "Already exists"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// WriteError пишет ответ об ошибке и логирует её: 4xx как предупреждение, 5xx как ошибку.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	code, title := ToHTTPResponse(err)
	now := time.Now().UTC()

	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%d %s %s", code, r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %v", code, r.Method, r.URL.Path, err)
	}

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		fields := make([]FieldMessage, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, FieldMessage{FieldName: fe.FieldName, Message: fe.Message})
		}

		WriteSuccess(w, code, &ValidationErrorResponse{
			Timestamp: now,
			Status:    code,
			Error:     title,
			Message:   e.ErrValidation.Error(),
			Path:      r.URL.Path,
			Errors:    fields,
		})
		return
	}

	msg := title
	if code < http.StatusInternalServerError {
		msg = err.Error()
	}

	WriteSuccess(w, code, &StandardError{
		Timestamp: now,
		Status:    code,
		Error:     title,
		Message:   msg,
		Path:      r.URL.Path,
	})
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля игнорируются, данные после объекта отклоняются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrMalformedBody)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return e.Wrap(whereami.WhereAmI(), e.ErrMalformedBody)
	}

	return nil
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(raw, e.ErrInvalidID)
	}

	return id, nil
}

// parsePageReq читает page (с нуля) и size; size ограничен сверху MaxPageSize.
func parsePageReq(r *http.Request, cfg *cfg.HTTPConfig) (*usecase.PageReq, error) {
	page, size := 0, cfg.DefaultPageSize
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, e.Wrap("page="+raw, e.ErrInvalidPage)
		}
		page = v
	}

	if raw := q.Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, e.Wrap("size="+raw, e.ErrInvalidPage)
		}
		size = min(v, cfg.MaxPageSize)
	}

	return usecase.NewPageReq(page, size), nil
}
