package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"git.sr.ht/~mariusor/lw"
	"golang.org/x/oauth2"

	"clubcal"
)

// Client talks to the portal's internal events API with a bearer
// token. It is the EventSource collaborator: it yields raw event
// records and nothing else.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger lw.Logger
}

func NewClient(baseURL string, tok *oauth2.Token, logger lw.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %s: %w", baseURL, err)
	}
	return &Client{
		base:   u,
		http:   oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(tok)),
		logger: logger,
	}, nil
}

// Events pages through the listing and hydrates each event with its
// detail payload. The waitlist-submitted flag only exists on the
// detail response, so the extra round-trips are not optional.
func (c *Client) Events(ctx context.Context) ([]clubcal.EventRecord, error) {
	records := make([]clubcal.EventRecord, 0)
	for page := 1; ; page++ {
		list := listResponse{}
		if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/events?page=%d", page), &list); err != nil {
			return nil, fmt.Errorf("unable to list events page %d: %w", page, err)
		}
		for _, p := range list.Events {
			e, err := c.Event(ctx, string(p.ID))
			if err != nil {
				c.logger.Errorf("unable to hydrate event %s: %s", p.ID, err)
				e = p.record()
			}
			records = append(records, e)
		}
		if page >= list.TotalPages || len(list.Events) == 0 {
			break
		}
	}
	c.logger.Debugf("fetched %d events", len(records))
	return records, nil
}

// Event fetches one event's detail record.
func (c *Client) Event(ctx context.Context, id string) (clubcal.EventRecord, error) {
	detail := detailResponse{}
	if err := c.getJSON(ctx, "/api/v1/events/"+id, &detail); err != nil {
		return clubcal.EventRecord{}, err
	}
	return detail.Event.record(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, into any) error {
	u := *c.base
	parsed, err := url.Parse(path)
	if err != nil {
		return err
	}
	u.Path = parsed.Path
	u.RawQuery = parsed.RawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("unable to read body: %w", err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("unable to unmarshal json body: %w", err)
	}
	return nil
}
