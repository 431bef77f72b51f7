package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const perPage = 100

// APIError is a non-2xx response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("harvest api: status %d: %s", e.StatusCode, e.Body)
}

type timeEntriesPage struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	NextPage    *int        `json:"next_page"`
}

// Client calls the Harvest v2 REST API
type Client struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client

	creds Credentials
}

// NewClient creates a new API client
func NewClient(creds Credentials, baseURL, userAgent string) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		HTTP:      http.DefaultClient,
		creds:     creds,
	}, nil
}

// TimeEntries fetches every page of entries spent within r
func (c *Client) TimeEntries(ctx context.Context, r Range) ([]TimeEntry, error) {
	var all []TimeEntry
	page := 1
	for {
		p, err := c.fetchPage(ctx, r, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.TimeEntries...)
		if p.NextPage == nil || *p.NextPage <= page {
			return all, nil
		}
		page = *p.NextPage
	}
}

func (c *Client) fetchPage(ctx context.Context, r Range, page int) (*timeEntriesPage, error) {
	q := url.Values{}
	q.Set("from", r.From.Format(DateLayout))
	q.Set("to", r.To.Format(DateLayout))
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/time_entries?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	req.Header.Set("Harvest-Account-Id", c.creds.AccountID)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch time entries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var p timeEntriesPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode time entries page %d: %w", page, err)
	}
	return &p, nil
}
