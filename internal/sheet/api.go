package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultRange is the A1 range holding the key column.
const DefaultRange = "A:A"

// APISource reads a sheet through the Google Sheets API. Unlike
// ExportSource it can read sheets that are not shared publicly.
type APISource struct {
	// SheetID is the spreadsheet id.
	SheetID string
	// Range is an A1 range such as "Strings!A:A". DefaultRange when empty.
	Range string
	// CredentialsFile is a service account or OAuth client JSON file.
	CredentialsFile string
	// APIKey authenticates reads of public sheets.
	APIKey string

	// Endpoint and HTTPClient replace the API endpoint and transport.
	Endpoint   string
	HTTPClient *http.Client
}

func (s APISource) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case s.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(s.CredentialsFile))
	case s.APIKey != "":
		opts = append(opts, option.WithAPIKey(s.APIKey))
	}
	if s.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.Endpoint))
	}
	if s.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(s.HTTPClient))
	}
	return opts
}

// Keys implements Source.
func (s APISource) Keys(ctx context.Context) ([]string, error) {
	if s.SheetID == "" {
		return nil, errors.New("sheet id is required")
	}

	srv, err := sheets.NewService(ctx, s.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("building sheets service: %w", err)
	}

	rng := s.Range
	if rng == "" {
		rng = DefaultRange
	}

	resp, err := srv.Spreadsheets.Values.Get(s.SheetID, rng).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching sheet %s: %w", s.SheetID, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		for _, cell := range row {
			rows[i] = append(rows[i], fmt.Sprint(cell))
		}
	}
	return keysFrom(rows, "sheet "+s.SheetID)
}
