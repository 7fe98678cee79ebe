package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	ProfileURL   string
}

// Google drives the authorization-code flow against Google's endpoints and
// fetches the profile used for federated login.
type Google struct {
	oauth      *oauth2.Config
	profileURL string
}

func NewGoogle(cfg GoogleConfig) *Google {
	return &Google{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"profile"},
			Endpoint:     google.Endpoint,
		},
		profileURL: cfg.ProfileURL,
	}
}

// Enabled reports whether provider credentials were configured.
func (g *Google) Enabled() bool {
	return g.oauth.ClientID != "" && g.oauth.ClientSecret != ""
}

// AuthURL returns the consent-page URL carrying the anti-CSRF state.
func (g *Google) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the profile.
func (g *Google) Exchange(ctx context.Context, code string) (Profile, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("code exchange: %w", err)
	}
	resp, err := g.oauth.Client(ctx, token).Get(g.profileURL)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("fetch profile: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	// v3 userinfo uses sub/name, the legacy endpoint id/displayName
	var raw struct {
		Sub         string `json:"sub"`
		ID          string `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	p := Profile{ID: raw.Sub, DisplayName: raw.Name}
	if p.ID == "" {
		p.ID = raw.ID
	}
	if p.DisplayName == "" {
		p.DisplayName = raw.DisplayName
	}
	if p.ID == "" {
		return Profile{}, fmt.Errorf("profile has no subject id")
	}
	return p, nil
}
