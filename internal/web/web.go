// Package web serves the lyrics page and contact page as server-rendered HTML.
//
// # Routes
//
//	GET  /home    → empty lyrics form
//	POST /home    → fetch lyrics for the submitted youtube_url and render the result
//	GET  /contact → contact details from configuration
//	*    /...     → 302 redirect to /home
//
// Each request renders a fresh [page.Page]; the only shared object is the injected lyrics client.
// Copying happens in the browser through the Clipboard API, so the server never touches a clipboard.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/page"
	"github.com/desertthunder/lyrx/internal/routes"
	"github.com/desertthunder/lyrx/internal/server"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

// URLField is the form field holding the source URL.
const URLField = "youtube_url"

// App renders the web pages.
type App struct {
	client    services.LyricsClient
	contact   shared.ContactConfig
	lang      string
	logger    *log.Logger
	templates map[routes.Route]*template.Template
}

type viewData struct {
	Route   string
	Page    *page.Page
	Contact shared.ContactConfig
}

// New parses the embedded templates and creates an App.
func New(client services.LyricsClient, contact shared.ContactConfig, lang string, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	templates := make(map[routes.Route]*template.Template, len(routes.All))
	for _, r := range routes.All {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", fmt.Sprintf("templates/%s.html", r))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", r, err)
		}
		templates[r] = tmpl
	}

	return &App{
		client:    client,
		contact:   contact,
		lang:      lang,
		logger:    logger,
		templates: templates,
	}, nil
}

// Handler builds the router with logging and rate-limiting middleware.
func (a *App) Handler(cfg shared.ServerConfig) http.Handler {
	r := server.NewBasicRouter()
	r.Use(server.RequestLogger(a.logger), server.RateLimit(cfg.RateLimit, cfg.Burst))
	a.Register(r)
	return r
}

// Register adds the application routes to r.
func (a *App) Register(r *server.BasicRouter) {
	r.HandleMethods([]string{http.MethodGet, http.MethodPost}, routes.Home.Path(), http.HandlerFunc(a.Home))
	r.Handle(http.MethodGet, routes.Contact.Path(), http.HandlerFunc(a.Contact))
	r.Handler(redirectHandler{})
}

// Home renders the lyrics page, fetching lyrics on POST.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	logger := server.LoggerFrom(r.Context(), a.logger)
	p := page.New(a.client, nil, logger, page.WithLanguage(a.lang))

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		p.URL = r.PostFormValue(URLField)
		p.FetchLyrics(r.Context())
	}

	a.render(w, routes.Home, viewData{Route: routes.Home.String(), Page: p})
}

// Contact renders the contact page.
func (a *App) Contact(w http.ResponseWriter, r *http.Request) {
	a.render(w, routes.Contact, viewData{Route: routes.Contact.String(), Contact: a.contact})
}

func (a *App) render(w http.ResponseWriter, route routes.Route, data viewData) {
	var buf bytes.Buffer
	if err := a.templates[route].ExecuteTemplate(&buf, "base", data); err != nil {
		a.logger.Error("failed to render template", "route", route, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// redirectHandler catches every path not claimed by a page and sends the client home.
type redirectHandler struct{}

func (redirectHandler) Routes() []string { return []string{"/"} }

func (redirectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !routes.Redirects(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routes.Default.Path(), http.StatusFound)
}
