package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"sitedesk/internal/model"
	"sitedesk/internal/reconcile"
	"sitedesk/internal/session"
)

var allDigits = regexp.MustCompile(`^\d+$`)

// Login exchanges credentials for a session. The only call that runs
// without a token.
func (c *Client) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	var resp struct {
		AccessToken string       `json:"access_token"`
		User        session.User `json:"user"`
	}
	err := c.do(ctx, "POST", "/api/auth/login", nil,
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("login succeeded but no token returned")
	}
	return &session.Session{Token: resp.AccessToken, User: resp.User}, nil
}

// Search runs a site-id search and reconciles each hit. Results that
// resolve without a site id are dropped rather than rendered.
func (c *Client) Search(ctx context.Context, term string) ([]model.Site, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.New("search term is required")
	}

	q := url.Values{}
	q.Set("term", term)
	q.Set("site_id_search", "true")

	var resp struct {
		Results []map[string]any `json:"results"`
	}
	if err := c.do(ctx, "GET", "/api/search", q, nil, &resp); err != nil {
		return nil, err
	}

	sites := make([]model.Site, 0, len(resp.Results))
	for _, raw := range resp.Results {
		site, err := reconcile.Record(raw)
		if err != nil {
			c.log.Warn("dropping search result", zap.Error(err))
			continue
		}
		sites = append(sites, site)
	}
	if len(sites) == 0 {
		return nil, &NotFoundError{Message: "no results found"}
	}
	return sites, nil
}

// SearchSite finds a single site by id fragment and loads its full record.
// An all-numeric query that comes back empty is retried as the canonical
// "SITE"-prefixed id with the number zero-padded to three digits, so "1"
// finds SITE001 before the miss is reported.
func (c *Client) SearchSite(ctx context.Context, term string) (model.Site, error) {
	term = strings.ToUpper(strings.TrimSpace(term))

	sites, err := c.Search(ctx, term)
	var nf *NotFoundError
	if errors.As(err, &nf) && allDigits.MatchString(term) {
		// Left-pad the raw digits rather than reparsing them; "0001"
		// retries as SITE0001, not SITE001.
		pad := term
		for len(pad) < 3 {
			pad = "0" + pad
		}
		retry := "SITE" + pad
		c.log.Info("retrying search with canonical id", zap.String("term", retry))
		sites, err = c.Search(ctx, retry)
	}
	if err != nil {
		return model.Site{}, err
	}
	return c.Site(ctx, sites[0].SiteID)
}

// Site fetches one full record by exact site id.
func (c *Client) Site(ctx context.Context, siteID string) (model.Site, error) {
	if siteID == "" {
		return model.Site{}, errors.New("site id is required")
	}

	q := url.Values{}
	q.Set("site_id", siteID)

	var resp any
	if err := c.do(ctx, "GET", "/api/sites", q, nil, &resp); err != nil {
		return model.Site{}, err
	}
	raw, err := reconcile.Unwrap(resp)
	if err != nil {
		return model.Site{}, err
	}
	return reconcile.Record(raw)
}

// CreateSite submits a new record. The payload carries wire-form values
// keyed per the alias table.
func (c *Client) CreateSite(ctx context.Context, payload map[string]any) error {
	return c.do(ctx, "POST", "/api/sites", nil, payload, nil)
}

// UpdateSite submits a partial update scoped to one site id.
func (c *Client) UpdateSite(ctx context.Context, siteID string, payload map[string]any) error {
	if siteID == "" {
		return errors.New("site id is required")
	}
	return c.do(ctx, "PUT", "/api/sites/"+url.PathEscape(siteID), nil, payload, nil)
}

// Upload bulk-imports sites from a spreadsheet. Returns the server's
// summary message (how many rows were inserted).
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, err := newMultipartBody("file", filename, r)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "POST", "/api/upload", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ReportQuery selects a report dataset.
type ReportQuery struct {
	Type        string
	FromDate    string // wire form YYYY-MM-DD
	ToDate      string
	LeasePeriod string // only for the lease period report
	Division    string // optional, "ALL" means no filter
	Status      string
}

// Report fetches a filtered report dataset as raw rows; the report package
// shapes them into tables and CSV.
func (c *Client) Report(ctx context.Context, query ReportQuery) ([]map[string]any, error) {
	if query.Type == "" {
		return nil, errors.New("report type is required")
	}

	q := url.Values{}
	q.Set("type", query.Type)
	q.Set("from_date", query.FromDate)
	q.Set("to_date", query.ToDate)
	if query.LeasePeriod != "" {
		q.Set("lease_period", query.LeasePeriod)
	}
	if query.Division != "" {
		q.Set("div", query.Division)
	}
	if query.Status != "" {
		q.Set("status", query.Status)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.do(ctx, "GET", "/api/reports", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type multipartBody struct {
	buf         *bytes.Buffer
	contentType string
}

func newMultipartBody(field, filename string, r io.Reader) (*multipartBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &multipartBody{buf: buf, contentType: w.FormDataContentType()}, nil
}
