package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog/internal/auth"
	"blog/internal/models"
)

// listTimeout bounds the home-page listing query.
const listTimeout = 30 * time.Second

const stateCookie = "oauth_state"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.notFound(w, r)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	posts, err := models.ListPosts(ctx, s.DB)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "home", map[string]any{
		"StartingContent": homeStartingContent,
		"Posts":           posts,
		"User":            s.Sessions.CurrentUser(r.Context(), r),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, "register", map[string]any{"User": s.Sessions.CurrentUser(r.Context(), r)})
	case http.MethodPost:
		username := r.FormValue("username")
		password := r.FormValue("password")
		if username == "" || password == "" {
			s.render(w, http.StatusBadRequest, "register", map[string]any{"Error": "Username and password are required."})
			return
		}
		user, err := s.Auth.Register(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateUsername) {
				s.render(w, http.StatusBadRequest, "register", map[string]any{"Error": "That username is already taken."})
				return
			}
			s.serverError(w, r, err)
			return
		}
		// auto-login after registration
		if err := s.Sessions.Login(r.Context(), w, user.ID); err != nil {
			s.serverError(w, r, err)
			return
		}
		http.Redirect(w, r, "/compose", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, "login", map[string]any{
			"User":   s.Sessions.CurrentUser(r.Context(), r),
			"Google": s.Google.Enabled(),
		})
	case http.MethodPost:
		username := r.FormValue("username")
		password := r.FormValue("password")
		user, err := s.Auth.AuthenticateLocal(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			s.serverError(w, r, err)
			return
		}
		if err := s.Sessions.Login(r.Context(), w, user.ID); err != nil {
			s.serverError(w, r, err)
			return
		}
		http.Redirect(w, r, "/compose", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Logout(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request, user *models.User) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, "compose", map[string]any{"User": user})
	case http.MethodPost:
		title := r.FormValue("postTitle")
		body := r.FormValue("postBody")
		if title == "" || body == "" {
			s.render(w, http.StatusBadRequest, "compose", map[string]any{
				"User":  user,
				"Error": "Title and content are required.",
			})
			return
		}
		image, err := s.saveUpload(r, "image")
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		if _, err := models.CreatePost(r.Context(), s.DB, user.ID, title, body, image); err != nil {
			s.serverError(w, r, err)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/posts/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		s.notFound(w, r)
		return
	}
	post, err := models.GetPost(r.Context(), s.DB, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "post", map[string]any{
		"Post": post,
		"User": s.Sessions.CurrentUser(r.Context(), r),
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about", map[string]any{
		"AboutContent": aboutContent,
		"User":         s.Sessions.CurrentUser(r.Context(), r),
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "contact", map[string]any{
		"ContactContent": contactContent,
		"User":           s.Sessions.CurrentUser(r.Context(), r),
	})
}

func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.Google.Enabled() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.Google.AuthURL(state), http.StatusSeeOther)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(stateCookie)
	if err != nil || c.Value == "" || c.Value != r.FormValue("state") {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	code := r.FormValue("code")
	if code == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	profile, err := s.Google.Exchange(r.Context(), code)
	if err != nil {
		s.log.Warn("google login failed", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	user, err := s.Auth.AuthenticateFederated(r.Context(), profile)
	if err != nil {
		s.log.Warn("google login failed", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := s.Sessions.Login(r.Context(), w, user.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/compose", http.StatusSeeOther)
}
