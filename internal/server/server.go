package server

import (
	"database/sql"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"blog/internal/auth"
	"blog/internal/config"
	"blog/internal/models"
)

type Server struct {
	DB       *sql.DB
	Auth     *auth.Core
	Sessions *auth.Sessions
	Google   *auth.Google

	log       *slog.Logger
	tmpl      map[string]*template.Template
	staticDir string
	uploadDir string
}

func New(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*Server, error) {
	templates := map[string]*template.Template{}
	layout := filepath.Join(cfg.TemplateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(cfg.TemplateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	funcs := template.FuncMap{"snippet": snippet}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.New(filepath.Base(page)).Funcs(funcs).ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}
	return &Server{
		DB:       db,
		Auth:     auth.NewCore(db),
		Sessions: auth.NewSessions(db, cfg.SessionSecret, cfg.SessionMaxAge),
		Google: auth.NewGoogle(auth.GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			CallbackURL:  cfg.GoogleCallbackURL,
			ProfileURL:   cfg.GoogleProfileURL,
		}),
		log:       logger,
		tmpl:      templates,
		staticDir: cfg.StaticDir,
		uploadDir: cfg.UploadDir,
	}, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/compose", s.requireAuth(s.handleCompose))
	mux.HandleFunc("/posts/", s.handlePost)
	mux.HandleFunc("/about", s.handleAbout)
	mux.HandleFunc("/contact", s.handleContact)
	mux.HandleFunc("/auth/google", s.handleGoogleLogin)
	mux.HandleFunc("/auth/google/blog", s.handleGoogleCallback)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(s.uploadDir))))
	return mux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := s.tmpl[name]
	if !ok {
		s.log.Error("template not found", "name", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		s.log.Error("render", "name", name, "error", err)
	}
}

// serverError hides detail from the client; the cause goes to the log only.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.render(w, http.StatusInternalServerError, "error", map[string]any{
		"Message": "Something went wrong. Please try again later.",
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "error", map[string]any{
		"Message": "Page not found.",
		"User":    s.Sessions.CurrentUser(r.Context(), r),
	})
}

// middleware
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, *models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := s.Sessions.CurrentUser(r.Context(), r)
		if user == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next(w, r, user)
	}
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + " ..."
}
