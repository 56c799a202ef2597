package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/oauth2"
)

// FormLogin signs in without a browser: it fetches the login page,
// pulls the CSRF token out of the form, posts the credentials over the
// same cookie session, and then exchanges that session for an API
// bearer token. Brittler than BrowserLogin when the portal changes its
// markup, but it runs anywhere.
func FormLogin(ctx context.Context, opts LoginOptions) (*oauth2.Token, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("login: BaseURL is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultLoginTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	hc := &http.Client{Jar: jar, Timeout: opts.Timeout}

	base := strings.TrimRight(opts.BaseURL, "/")
	csrf, err := fetchCSRFToken(ctx, hc, base+"/login")
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("username", opts.Username)
	form.Set("password", opts.Password)
	form.Set("_token", csrf)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to submit login form: %w", err)
	}
	res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("login rejected: %d %s", res.StatusCode, res.Status)
	}

	return exchangeSession(ctx, hc, base)
}

func fetchCSRFToken(ctx context.Context, hc *http.Client, loginURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return "", err
	}
	res, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("unable to load login page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", fmt.Errorf("unable to parse login page: %w", err)
	}
	token, ok := doc.Find(`form input[name="_token"]`).Attr("value")
	if !ok || token == "" {
		return "", fmt.Errorf("no CSRF token on login page")
	}
	return token, nil
}

// exchangeSession trades the cookie session for the same bearer token
// the SPA would have stored in localStorage.
func exchangeSession(ctx context.Context, hc *http.Client, base string) (*oauth2.Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/auth/token", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange session for token: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	body := struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unable to unmarshal token response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("empty token in response")
	}
	expiry := body.ExpiresAt
	if expiry.IsZero() {
		expiry = time.Now().Add(sessionTTL)
	}
	return &oauth2.Token{AccessToken: body.Token, TokenType: "Bearer", Expiry: expiry}, nil
}
