// Package locdir adapts the remote location directory to the
// domain.LocationDirectory port and ships the static fallback list used
// when the remote is unreachable or the keyword is too short.
package locdir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripdesk/tripsearch/internal/domain"
)

const searchPath = "/api/locations/search"

// Config contains configuration options for the remote directory client.
type Config struct {
	// BaseURL is the root of the remote directory API.
	BaseURL string

	// Timeout bounds a single lookup call.
	Timeout time.Duration
}

// Remote implements domain.LocationDirectory over HTTP.
type Remote struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewRemote creates a directory client for the given API.
func NewRemote(cfg Config, log zerolog.Logger) *Remote {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// wireLocation is one row of the remote directory response.
type wireLocation struct {
	IataCode    string `json:"iataCode"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	SubType     string `json:"subType"`
}

// Search implements domain.LocationDirectory. Failures yield an error and
// no partial list; the resolver falls back to the static directory.
func (r *Remote) Search(ctx context.Context, keyword string, category domain.LookupCategory) ([]domain.Location, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("category", string(category))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: directory returned status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var rows []wireLocation
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrDirectoryUnavailable, err)
	}

	return normalize(rows), nil
}

// normalize reduces wire rows to the common location shape, dropping
// entries without a usable name.
func normalize(rows []wireLocation) []domain.Location {
	result := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		code := row.IataCode
		if code == "" {
			code = row.Code
		}
		loc := domain.Location{
			CityName:    row.CityName,
			Code:        strings.ToUpper(code),
			DisplayName: row.Name,
			CountryCode: strings.ToUpper(row.CountryCode),
			Subtype:     parseSubtype(row.SubType),
			FlagGlyph:   domain.FlagGlyph(row.CountryCode),
		}
		if !loc.HasName() {
			continue
		}
		result = append(result, loc)
	}
	return result
}

func parseSubtype(s string) domain.LocationSubtype {
	switch strings.ToUpper(s) {
	case string(domain.SubtypeCity):
		return domain.SubtypeCity
	case string(domain.SubtypeHotel):
		return domain.SubtypeHotel
	default:
		return domain.SubtypeAirport
	}
}

// Ensure Remote implements the port at compile time.
var _ domain.LocationDirectory = (*Remote)(nil)
