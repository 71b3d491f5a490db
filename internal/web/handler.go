// Package web hosts the storefront HTTP server and its page handlers.
package web

import (
	"net/http"

	accountdomain "github.com/sableroast/storefront/internal/account/domain"
	accountservice "github.com/sableroast/storefront/internal/account/service"
	"github.com/sableroast/storefront/internal/account/token"
	cartdomain "github.com/sableroast/storefront/internal/cart/domain"
	cartservice "github.com/sableroast/storefront/internal/cart/service"
	"github.com/sableroast/storefront/internal/catalog"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "storefront_session"

// Handler serves every storefront page and HTMX endpoint.
type Handler struct {
	catalog  *catalog.Catalog
	cart     *cartservice.CartService
	accounts *accountservice.AccountService
	tokens   token.Config
}

// NewHandler builds the HTTP handler for the storefront.
func NewHandler(cat *catalog.Catalog, cart *cartservice.CartService, accounts *accountservice.AccountService, tokens token.Config) http.Handler {
	h := &Handler{
		catalog:  cat,
		cart:     cart,
		accounts: accounts,
		tokens:   tokens,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET /menu", h.handleMenu)
	mux.HandleFunc("GET /cart", h.handleCart)
	mux.HandleFunc("POST /cart/add", h.handleCartAdd)
	mux.HandleFunc("POST /cart/update", h.handleCartUpdate)
	mux.HandleFunc("POST /cart/remove", h.handleCartRemove)
	mux.HandleFunc("POST /cart/clear", h.handleCartClear)
	mux.HandleFunc("POST /cart/save", h.handleCartSave)
	mux.HandleFunc("POST /cart/restore", h.handleCartRestore)
	mux.HandleFunc("POST /cart/discount", h.handleCartDiscount)
	mux.HandleFunc("GET /checkout", h.handleCheckout)
	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("GET /register", h.handleRegisterPage)
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /logout", h.handleLogout)
	mux.HandleFunc("GET /profile", h.handleProfilePage)
	mux.HandleFunc("POST /profile", h.handleProfile)

	return withObservability(mux)
}

// baseView carries the fields every page template needs.
type baseView struct {
	Title     string
	CartCount int
	Session   *accountdomain.Session
}

// cartLineView decorates a cart line with the quantity targets the stepper
// buttons submit.
type cartLineView struct {
	cartdomain.Line
}

func (v cartLineView) DecQuantity() int { return v.Quantity - 1 }
func (v cartLineView) IncQuantity() int { return v.Quantity + 1 }

func cartLineViews(lines []cartdomain.Line) []cartLineView {
	views := make([]cartLineView, len(lines))
	for i, line := range lines {
		views[i] = cartLineView{Line: line}
	}
	return views
}

// base assembles the shared view fields for a page.
func (h *Handler) base(r *http.Request, title string) baseView {
	view := baseView{Title: title}

	if count, err := h.cart.TotalQuantity(r.Context()); err == nil {
		view.CartCount = count
	}
	if session, ok := h.currentSession(r); ok {
		view.Session = &session
	}
	return view
}

// currentSession resolves the logged-in session for a request. The cookie
// must verify and the session stores must still hold a matching record;
// anything else reads as logged out.
func (h *Handler) currentSession(r *http.Request) (accountdomain.Session, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return accountdomain.Session{}, false
	}
	claimed, _, err := h.tokens.Verify(cookie.Value)
	if err != nil {
		return accountdomain.Session{}, false
	}

	session, found, err := h.accounts.CurrentSession(r.Context())
	if err != nil || !found || session.UserID != claimed.UserID {
		return accountdomain.Session{}, false
	}
	return session, true
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string, remember bool) {
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.MaxAge = int(token.RememberedTTL.Seconds())
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, view); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// requireSession resolves the session or redirects to the login page with a
// redirect parameter pointing back at the requested page.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (accountdomain.Session, bool) {
	session, ok := h.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login?redirect="+r.URL.Path, http.StatusSeeOther)
		return accountdomain.Session{}, false
	}
	return session, true
}
