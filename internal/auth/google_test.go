package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGoogleEnabled(t *testing.T) {
	assert.False(t, NewGoogle(GoogleConfig{}).Enabled())
	assert.False(t, NewGoogle(GoogleConfig{ClientID: "id"}).Enabled())
	assert.True(t, NewGoogle(GoogleConfig{ClientID: "id", ClientSecret: "secret"}).Enabled())
}

func TestGoogleAuthURLCarriesState(t *testing.T) {
	g := NewGoogle(GoogleConfig{ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost/auth/google/blog"})

	url := g.AuthURL("xyz")
	assert.Contains(t, url, "state=xyz")
	assert.Contains(t, url, "scope=profile")
}

func TestGoogleExchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Authorization"), "tok") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"g-123","name":"Alice Example"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	g := NewGoogle(GoogleConfig{ClientID: "id", ClientSecret: "secret"})
	g.oauth.Endpoint = oauth2.Endpoint{TokenURL: ts.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	g.profileURL = ts.URL + "/profile"

	p, err := g.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, Profile{ID: "g-123", DisplayName: "Alice Example"}, p)
}

func TestGoogleExchangeLegacyProfileFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"g-9","displayName":"Bob"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	g := NewGoogle(GoogleConfig{ClientID: "id", ClientSecret: "secret"})
	g.oauth.Endpoint = oauth2.Endpoint{TokenURL: ts.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	g.profileURL = ts.URL + "/profile"

	p, err := g.Exchange(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, Profile{ID: "g-9", DisplayName: "Bob"}, p)
}

func TestGoogleExchangeProfileWithoutID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Nobody"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	g := NewGoogle(GoogleConfig{ClientID: "id", ClientSecret: "secret"})
	g.oauth.Endpoint = oauth2.Endpoint{TokenURL: ts.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	g.profileURL = ts.URL + "/profile"

	_, err := g.Exchange(context.Background(), "code")
	assert.Error(t, err)
}
