package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	stderrors "errors"

	cartdomain "github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/web/htmx"
)

type cartView struct {
	baseView
	Lines       []cartLineView
	Summary     cartdomain.Summary
	Discount    *cartdomain.Discount
	Suggestions []catalog.Product
}

// buildCartView assembles the cart page model, applying the promo code from
// the query string when one is present and valid.
func (h *Handler) buildCartView(r *http.Request, title string) (cartView, error) {
	ctx := r.Context()

	lines, err := h.cart.Get(ctx)
	if err != nil {
		return cartView{}, err
	}
	summary := cartdomain.ComputeSummary(lines)

	view := cartView{
		baseView: h.base(r, title),
		Lines:    cartLineViews(lines),
		Summary:  summary,
	}

	if code := strings.TrimSpace(r.URL.Query().Get("promo")); code != "" {
		if discount, err := h.cart.ApplyDiscount(code); err == nil {
			view.Discount = &discount
			view.Summary = summary.WithDiscount(discount)
		}
	}

	suggestions, err := h.cart.Suggestions(ctx)
	if err != nil {
		return cartView{}, err
	}
	view.Suggestions = suggestions

	return view, nil
}

func (h *Handler) handleCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildCartView(r, "Keranjang")
	if err != nil {
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}
	h.render(w, "cart.html", view)
}

func (h *Handler) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	productID, err := formInt(r, "product_id")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	line, err := h.cart.Add(r.Context(), productID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeProductNotFound {
			htmx.Toast(w, htmx.ToastError, "Produk tidak ditemukan")
			w.WriteHeader(errors.CodeProductNotFound.HTTPStatus())
			return
		}
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		return
	}

	// HTMX add buttons swap the nav badge in place and surface the toast;
	// plain requests go back to the page they came from, so no toast header
	// survives the redirect anyway.
	if htmx.IsHTMXRequest(r) {
		count, err := h.cart.TotalQuantity(r.Context())
		if err != nil {
			http.Error(w, "failed to load cart", http.StatusInternalServerError)
			return
		}
		if line.Quantity > 1 {
			htmx.Toast(w, htmx.ToastSuccess, fmt.Sprintf("%s ditambahkan (%d)", line.Name, line.Quantity))
		} else {
			htmx.Toast(w, htmx.ToastSuccess, fmt.Sprintf("%s ditambahkan ke keranjang", line.Name))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, strconv.Itoa(count))
		return
	}
	http.Redirect(w, r, refererOr(r, "/menu"), http.StatusSeeOther)
}

func (h *Handler) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	productID, err := formInt(r, "product_id")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	quantity, err := formInt(r, "quantity")
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), productID, quantity); err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	htmx.Redirect(w, r, "/cart")
}

func (h *Handler) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	productID, err := formInt(r, "product_id")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	removed, found, err := h.cart.Remove(r.Context(), productID)
	if err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	if found {
		htmx.Toast(w, htmx.ToastSuccess, fmt.Sprintf("%s dihapus dari keranjang", removed.Name))
	}
	htmx.Redirect(w, r, "/cart")
}

func (h *Handler) handleCartClear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		http.Error(w, "failed to clear cart", http.StatusInternalServerError)
		return
	}
	htmx.Toast(w, htmx.ToastSuccess, "Keranjang dikosongkan")
	htmx.Redirect(w, r, "/cart")
}

func (h *Handler) handleCartSave(w http.ResponseWriter, r *http.Request) {
	err := h.cart.SaveForLater(r.Context())
	switch {
	case err == nil:
		htmx.Toast(w, htmx.ToastSuccess, "Keranjang disimpan!")
	case errors.CodeOf(err) == errors.CodeCartEmpty:
		htmx.Toast(w, htmx.ToastWarning, "Keranjang kosong")
	default:
		http.Error(w, "failed to save cart", http.StatusInternalServerError)
		return
	}
	htmx.Redirect(w, r, "/cart")
}

func (h *Handler) handleCartRestore(w http.ResponseWriter, r *http.Request) {
	_, err := h.cart.RestoreSaved(r.Context())
	switch {
	case err == nil:
		htmx.Toast(w, htmx.ToastSuccess, "Keranjang berhasil dipulihkan!")
	case errors.CodeOf(err) == errors.CodeNoSavedCart:
		htmx.Toast(w, htmx.ToastWarning, "Tidak ada keranjang tersimpan")
	default:
		http.Error(w, "failed to restore cart", http.StatusInternalServerError)
		return
	}
	htmx.Redirect(w, r, "/cart")
}

func (h *Handler) handleCartDiscount(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.FormValue("code"))

	discount, err := h.cart.ApplyDiscount(code)
	if err != nil {
		htmx.Toast(w, htmx.ToastError, "Kode promo tidak valid")
		htmx.Redirect(w, r, "/cart")
		return
	}

	htmx.Toast(w, htmx.ToastSuccess, fmt.Sprintf("Kode promo %s berhasil diterapkan! (%s)", code, discount.Description))
	htmx.Redirect(w, r, "/cart?promo="+url.QueryEscape(discount.Code))
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	view, err := h.buildCartView(r, "Checkout")
	if err != nil {
		http.Error(w, "failed to load cart", http.StatusInternalServerError)
		return
	}
	if len(view.Lines) == 0 {
		htmx.Toast(w, htmx.ToastWarning, "Keranjang Anda kosong")
		htmx.Redirect(w, r, "/cart")
		return
	}
	view.Session = &session

	h.render(w, "checkout.html", view)
}

func formInt(r *http.Request, key string) (int, error) {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return 0, stderrors.New("missing form value")
	}
	return strconv.Atoi(value)
}

func refererOr(r *http.Request, fallback string) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return fallback
	}
	if parsed, err := url.Parse(referer); err == nil && parsed.Path != "" {
		return parsed.Path
	}
	return fallback
}
