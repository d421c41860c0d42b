package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/pagecraft/internal/api/htmx"
	"github.com/codr1/pagecraft/internal/content"
	"github.com/codr1/pagecraft/internal/sections"
	"github.com/codr1/pagecraft/internal/store"
)

const maxBodyBytes = 1 << 20

type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// ClassifyStoreError maps store and section errors to a HandlerError. Persistence
// failures are 503s: the store has already reloaded, so the client can retry.
func ClassifyStoreError(err error) HandlerError {
	var persistErr *store.PersistenceError
	switch {
	case errors.As(err, &persistErr):
		return HandlerError{
			Status:  http.StatusServiceUnavailable,
			Message: "Your change could not be saved. The page was refreshed from the last saved state; please try again.",
			Err:     err,
		}
	case errors.Is(err, store.ErrSectionNotFound), errors.Is(err, store.ErrProjectNotFound):
		return HandlerError{Status: http.StatusNotFound, Message: "Not found", Err: err}
	case errors.Is(err, store.ErrIndexOutOfRange),
		errors.Is(err, store.ErrInvalidOrder),
		errors.Is(err, store.ErrProjectName),
		errors.Is(err, store.ErrInvalidTheme),
		errors.Is(err, content.ErrIndexInvalid),
		errors.Is(err, content.ErrInvalidPath),
		errors.Is(err, content.ErrEmptyPath),
		errors.Is(err, sections.ErrNotAList),
		errors.Is(err, sections.ErrInvalidNumber):
		return HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	default:
		return HandlerError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}
}

// WriteStoreError logs err and writes the classified response. HTMX requests get an
// HTML notice so the editor can show it in place.
func WriteStoreError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	herr := ClassifyStoreError(err)
	logger := log.Ctx(r.Context())
	event := logger.Warn()
	if herr.Status >= http.StatusInternalServerError && herr.Status != http.StatusServiceUnavailable {
		event = logger.Error()
	}
	event.Err(err).Int("status", herr.Status).Msg(msg)

	if htmx.IsRequest(r) {
		WriteHTMLFeedback(w, herr.Status, herr.Message)
		return
	}
	http.Error(w, herr.Message, herr.Status)
}
