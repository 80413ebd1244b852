package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the host serving Google Sheets exports.
const DefaultBaseURL = "https://docs.google.com"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// ExportSource downloads a publicly shared sheet tab as CSV.
type ExportSource struct {
	// SheetID is the document id from the sheet URL.
	SheetID string
	// GID selects the tab. Empty means the first tab.
	GID string
	// Client performs the request; http.DefaultClient when nil.
	Client *http.Client
	// BaseURL replaces DefaultBaseURL when set.
	BaseURL string
}

// URL returns the CSV export address of the sheet tab.
func (s ExportSource) URL() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	gid := s.GID
	if gid == "" {
		gid = "0"
	}

	q := url.Values{}
	q.Set("format", "csv")
	q.Set("gid", gid)
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?%s", strings.TrimRight(base, "/"), url.PathEscape(s.SheetID), q.Encode())
}

// ViewURL returns the address a person would open to look at the sheet.
func (s ExportSource) ViewURL() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/spreadsheets/d/%s", strings.TrimRight(base, "/"), url.PathEscape(s.SheetID))
}

// Keys implements Source.
func (s ExportSource) Keys(ctx context.Context) ([]string, error) {
	if s.SheetID == "" {
		return nil, errors.New("sheet id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download sheet %s: %s", s.SheetID, resp.Status)
	}

	// Sheets that are not shared publicly answer with a sign-in page.
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt == "text/html" {
		return nil, fmt.Errorf("sheet %s is not publicly accessible", s.SheetID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", s.SheetID, err)
	}
	body = bytes.TrimPrefix(body, []byte("\ufeff"))
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("empty response from Google Sheets for sheet %s", s.SheetID)
	}

	rows, err := readCSV(bytes.NewReader(body), ',')
	if err != nil {
		return nil, err
	}
	return keysFrom(rows, "sheet "+s.SheetID)
}
