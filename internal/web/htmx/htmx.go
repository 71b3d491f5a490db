// Package htmx holds helpers for responding to HTMX-initiated requests.
package htmx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// Toast severities understood by the notification surface.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// toastEvent is the HX-Trigger payload consumed by the toast surface.
type toastEvent struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Toast sets an HX-Trigger header that fires a toast event on the client.
func Toast(w http.ResponseWriter, severity, message string) {
	payload, err := json.Marshal(map[string]toastEvent{
		"toast": {Message: message, Severity: severity},
	})
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(payload))
}

// Redirect navigates the client. HTMX requests get an HX-Redirect header so
// the browser performs a full page load; plain requests get a 303.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
