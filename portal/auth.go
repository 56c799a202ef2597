package portal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/oauth2"
)

// Default parameters for the browser login flow.
const (
	DefaultLoginTimeout = 60 * time.Second

	// the portal expires API sessions after roughly a day; staying
	// well under that avoids mid-fetch expiry
	sessionTTL = 12 * time.Hour
)

// LoginOptions defines parameters for authenticating against the
// member portal.
type LoginOptions struct {
	// BaseURL is the portal root, e.g. "https://members.example.org".
	BaseURL string

	Username string
	Password string

	// Timeout bounds the entire login flow. Zero means
	// DefaultLoginTimeout.
	Timeout time.Duration
}

// BrowserLogin drives a headless Chromium through the portal's login
// form and reads the bearer token the SPA stores in localStorage after
// a successful sign-in. The portal's login is JavaScript-heavy, which
// is why the primary path goes through a real browser; FormLogin is
// the fallback when none is available.
func BrowserLogin(parentCtx context.Context, opts LoginOptions) (*oauth2.Token, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("login: BaseURL is required")
	}
	if opts.Username == "" || opts.Password == "" {
		return nil, fmt.Errorf("login: credentials are required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultLoginTimeout
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	loginURL := strings.TrimRight(opts.BaseURL, "/") + "/login"

	var raw string
	tasks := chromedp.Tasks{
		chromedp.Navigate(loginURL),
		chromedp.WaitVisible(`input[name="username"]`, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="username"]`, opts.Username, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="password"]`, opts.Password, chromedp.ByQuery),
		chromedp.Click(`button[type="submit"]`, chromedp.ByQuery),
		// the member dashboard is the post-login marker
		chromedp.WaitVisible(`[data-member-home]`, chromedp.ByQuery),
		chromedp.Evaluate(`window.localStorage.getItem("api_token") || ""`, &raw),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("login: chromedp run failed: %w", err)
	}
	if raw == "" {
		return nil, fmt.Errorf("login: portal did not expose an API token")
	}

	return &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(sessionTTL),
	}, nil
}
