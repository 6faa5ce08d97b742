// Package pages renders the html pages a browser sees after being redirected here by the
// payment provider.
//
// All values are escaped by html/template, including the payment reference, which is taken
// from the query string as-is.
package pages

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	VerifySuccess = "verify_success.html"
	VerifyMissing = "verify_missing.html"
	PaymentFailed = "payment_failed.html"
)

var ErrUnknownPage = errors.New("no such page")

var templates = map[string]*template.Template{}

func init() {
	for _, name := range []string{VerifySuccess, VerifyMissing, PaymentFailed} {
		templates[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
}

// PageData is everything any of the pages may show.
type PageData struct {
	Title       string
	ServiceName string
	ClientName  string
	Reference   string
}

// Render executes the named page into memory, so the caller can still choose the status
// and a failure never leaves a half written page.
func Render(name string, data PageData) ([]byte, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, ErrUnknownPage
	}

	buf := bytes.Buffer{}
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
