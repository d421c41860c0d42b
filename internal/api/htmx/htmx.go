// Package htmx reads htmx request headers and sets its response headers.
package htmx

import (
	"net/http"
	"strings"
)

const (
	headerRequest  = "HX-Request"
	headerTrigger  = "HX-Trigger"
	headerRedirect = "HX-Redirect"
	headerRefresh  = "HX-Refresh"
)

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(headerRequest), "true")
}

// Trigger fires a client-side event once the response is processed. Events set earlier
// in the same response are kept.
func Trigger(w http.ResponseWriter, event string) {
	if prev := w.Header().Get(headerTrigger); prev != "" {
		event = prev + ", " + event
	}
	w.Header().Set(headerTrigger, event)
}

// Redirect makes htmx navigate the whole page to url.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set(headerRedirect, url)
}

// Refresh makes htmx reload the current page.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(headerRefresh, "true")
}
