package web

import (
	"embed"
	"html/template"

	"github.com/sableroast/storefront/internal/catalog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"price":        catalog.FormatPrice,
	"categoryName": catalog.CategoryName,
}).ParseFS(templatesFS, "templates/*.html"))
