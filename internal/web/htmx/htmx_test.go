package htmx

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsHTMXRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if IsHTMXRequest(r) {
		t.Fatal("expected plain request")
	}

	r.Header.Set(RequestHeaderKey, "true")
	if !IsHTMXRequest(r) {
		t.Fatal("expected HTMX request")
	}
}

func TestToastHeader(t *testing.T) {
	w := httptest.NewRecorder()

	Toast(w, ToastSuccess, "Keranjang disimpan!")

	trigger := w.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "Keranjang disimpan!") {
		t.Fatalf("expected toast message in trigger, got %q", trigger)
	}
	if !strings.Contains(trigger, ToastSuccess) {
		t.Fatalf("expected severity in trigger, got %q", trigger)
	}
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/cart/add", nil)

	Redirect(w, r, "/cart")
	if w.Code != 303 {
		t.Fatalf("expected 303 for plain request, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/cart" {
		t.Fatalf("expected location /cart, got %q", got)
	}

	w = httptest.NewRecorder()
	r.Header.Set(RequestHeaderKey, "true")
	Redirect(w, r, "/cart")
	if got := w.Header().Get("HX-Redirect"); got != "/cart" {
		t.Fatalf("expected HX-Redirect /cart, got %q", got)
	}
}
