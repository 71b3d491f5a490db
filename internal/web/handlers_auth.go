package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sableroast/storefront/internal/account/domain"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/web/htmx"
)

type loginView struct {
	baseView
	Email    string
	Redirect string
	Error    string
}

type registerView struct {
	baseView
	FullName string
	Email    string
	Phone    string
	Error    string
}

type profileView struct {
	baseView
	User  domain.User
	Error string
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentSession(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	view := loginView{
		baseView: h.base(r, "Login"),
		Redirect: safeRedirect(r.URL.Query().Get("redirect")),
	}
	h.render(w, "login.html", view)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	remember := r.FormValue("remember") == "true"
	redirect := safeRedirect(r.FormValue("redirect"))

	session, err := h.accounts.Login(r.Context(), email, password, remember)
	if err != nil {
		view := loginView{
			baseView: h.base(r, "Login"),
			Email:    email,
			Redirect: redirect,
			Error:    loginErrorMessage(err),
		}
		w.WriteHeader(errors.CodeOf(err).HTTPStatus())
		h.render(w, "login.html", view)
		return
	}

	value, err := h.tokens.Mint(session, remember)
	if err != nil {
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, value, remember)

	htmx.Toast(w, htmx.ToastSuccess, fmt.Sprintf("Selamat datang, %s!", session.FullName))
	if redirect == "" {
		redirect = "/"
	}
	htmx.Redirect(w, r, redirect)
}

func (h *Handler) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	view := registerView{baseView: h.base(r, "Daftar")}
	h.render(w, "register.html", view)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reg := domain.Registration{
		FullName:        strings.TrimSpace(r.FormValue("full_name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Phone:           strings.TrimSpace(r.FormValue("phone")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if _, err := h.accounts.Register(r.Context(), reg); err != nil {
		view := registerView{
			baseView: h.base(r, "Daftar"),
			FullName: reg.FullName,
			Email:    reg.Email,
			Phone:    reg.Phone,
			Error:    registerErrorMessage(err),
		}
		w.WriteHeader(errors.CodeOf(err).HTTPStatus())
		h.render(w, "register.html", view)
		return
	}

	htmx.Toast(w, htmx.ToastSuccess, "Registrasi berhasil! Silakan login.")
	htmx.Redirect(w, r, "/login")
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentSession(r); !ok {
		htmx.Toast(w, htmx.ToastWarning, "Anda belum login")
		htmx.Redirect(w, r, "/")
		return
	}

	if err := h.accounts.Logout(r.Context()); err != nil {
		http.Error(w, "failed to log out", http.StatusInternalServerError)
		return
	}
	h.clearSessionCookie(w)

	htmx.Toast(w, htmx.ToastSuccess, "Logout berhasil!")
	htmx.Redirect(w, r, "/")
}

func (h *Handler) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	user, err := h.accounts.UserByID(r.Context(), session.UserID)
	if err != nil {
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}

	view := profileView{baseView: h.base(r, "Profil"), User: user}
	h.render(w, "profile.html", view)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	update := domain.ProfileUpdate{
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}

	if _, err := h.accounts.UpdateProfile(r.Context(), session.UserID, update); err != nil {
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	htmx.Toast(w, htmx.ToastSuccess, "Profil berhasil diperbarui!")
	htmx.Redirect(w, r, "/profile")
}

// loginErrorMessage keeps the distinct unknown-email and wrong-password
// messages the storefront shows, plus validation messages.
func loginErrorMessage(err error) string {
	switch errors.CodeOf(err) {
	case errors.CodeValidationMissingField:
		return "Email dan password harus diisi!"
	case errors.CodeValidationEmailFormat:
		return "Format email tidak valid!"
	case errors.CodeAccountInvalidCredentials:
		if strings.Contains(err.Error(), "email") {
			return "Email tidak terdaftar!"
		}
		return "Password salah!"
	default:
		return "Login gagal, coba lagi."
	}
}

func registerErrorMessage(err error) string {
	switch errors.CodeOf(err) {
	case errors.CodeValidationMissingField:
		return "Semua field harus diisi!"
	case errors.CodeValidationPasswordShort:
		return "Password minimal 8 karakter!"
	case errors.CodeValidationPasswordMatch:
		return "Password tidak cocok!"
	case errors.CodeValidationEmailFormat:
		return "Format email tidak valid!"
	case errors.CodeValidationPhoneFormat:
		return "Format nomor telepon tidak valid! (08xxxxxxxxxx)"
	case errors.CodeAccountEmailTaken:
		return "Email sudah terdaftar!"
	default:
		return "Registrasi gagal, coba lagi."
	}
}

// safeRedirect only allows same-site absolute paths as redirect targets.
func safeRedirect(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return ""
	}
	return target
}
