package apiutil

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"
)

// RenderHTMLComponent renders component into a buffer first, so a failed render never
// leaves a half-written response. It reports whether the response was written.
func RenderHTMLComponent(ctx context.Context, w http.ResponseWriter, component templ.Component, headers map[string]string, logMsg, errMsg string) bool {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg(logMsg)
		http.Error(w, errMsg, http.StatusInternalServerError)
		return false
	}
	for key, value := range headers {
		w.Header().Set(key, value)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to write response")
	}
	return true
}

// WriteHTMLFeedback writes a small notice fragment. Error statuses get the error style.
func WriteHTMLFeedback(w http.ResponseWriter, status int, message string) {
	class := "pc-notice"
	if status >= http.StatusBadRequest {
		class += " pc-notice-error"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<div class="` + class + `" role="status">` + templ.EscapeString(message) + `</div>`))
}

func IsJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(strings.TrimSpace(r.Header.Get("Content-Type")), "application/json")
}
