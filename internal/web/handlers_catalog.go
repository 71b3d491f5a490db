package web

import (
	"net/http"
	"strings"

	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/web/htmx"
)

type homeView struct {
	baseView
	Products []catalog.Product
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	view := homeView{
		baseView: h.base(r, "Home"),
		Products: h.catalog.Featured(),
	}
	h.render(w, "home.html", view)
}

type menuView struct {
	baseView
	Products []catalog.Product
	Query    string
	Serving  string
	Category string
	Sort     string
}

func (h *Handler) handleMenu(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	serving := queryOr(r, "serving", "all")
	category := queryOr(r, "category", "all")
	sort := queryOr(r, "sort", "default")

	products := h.catalog.Filter(catalog.Serving(serving), catalog.Category(category))
	if query != "" {
		products = catalog.SearchIn(products, query, true)
	}
	products = catalog.SortProducts(products, catalog.SortOrder(sort))

	view := menuView{
		baseView: h.base(r, "Menu"),
		Products: products,
		Query:    query,
		Serving:  serving,
		Category: category,
		Sort:     sort,
	}

	// HTMX filter changes swap only the grid.
	if htmx.IsHTMXRequest(r) {
		h.render(w, "product_grid", view)
		return
	}
	h.render(w, "menu.html", view)
}

func queryOr(r *http.Request, key, fallback string) string {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return fallback
	}
	return value
}
