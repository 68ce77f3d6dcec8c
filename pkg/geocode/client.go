// pkg/geocode/client.go
//
// Client for the BAN address API (api-adresse.data.gouv.fr): forward
// search-as-you-type suggestions and reverse (GPS) lookups. Both calls are
// read only; failures degrade to empty results so the form can always fall
// back to manual entry.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	searchLimit    = 6
	defaultTimeout = 12 * time.Second
)

// MinQueryLen is the shortest trimmed query worth sending upstream.
const MinQueryLen = 2

type Result struct {
	Label    string `json:"label"`
	Postcode string `json:"postcode"`
	City     string `json:"city"`
	Context  string `json:"context,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, reverseTimeout time.Duration) *Client {
	if reverseTimeout <= 0 {
		reverseTimeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: reverseTimeout},
	}
}

// Search returns up to six ranked candidates for a free-text query. Queries
// shorter than MinQueryLen after trimming and any transport or decode failure
// yield an empty slice, never an error.
func (c *Client) Search(ctx context.Context, query string) []Result {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLen {
		return nil
	}

	u := fmt.Sprintf("%s/search/?q=%s&limit=%d&autocomplete=1",
		c.baseURL, url.QueryEscape(query), searchLimit)

	features, err := c.fetch(ctx, u)
	if err != nil {
		log.Printf("geocode: search %q failed: %v", query, err)
		return nil
	}

	var out []Result
	for _, f := range features {
		r := f.result()
		if (r.Postcode != "" && r.City != "") || r.Label != "" {
			out = append(out, r)
		}
	}
	return out
}

// Reverse resolves coordinates to the nearest address. A nil result means
// the position could not be resolved; the caller surfaces "location
// unavailable" and the form stays usable.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) *Result {
	u := fmt.Sprintf("%s/reverse/?lat=%s&lon=%s&limit=1",
		c.baseURL,
		url.QueryEscape(strconv.FormatFloat(lat, 'f', -1, 64)),
		url.QueryEscape(strconv.FormatFloat(lon, 'f', -1, 64)))

	features, err := c.fetch(ctx, u)
	if err != nil {
		log.Printf("geocode: reverse (%f, %f) failed: %v", lat, lon, err)
		return nil
	}
	if len(features) == 0 {
		return nil
	}
	r := features[0].result()
	return &r
}

type feature struct {
	Properties struct {
		Label        string `json:"label"`
		Postcode     string `json:"postcode"`
		City         string `json:"city"`
		Municipality string `json:"municipality"`
		Context      string `json:"context"`
	} `json:"properties"`
}

func (f feature) result() Result {
	p := f.Properties
	city := p.City
	if city == "" {
		city = p.Municipality
	}
	label := p.Label
	if label == "" {
		if p.Postcode != "" && city != "" {
			label = p.Postcode + " " + city
		} else if city != "" {
			label = city
		} else {
			label = p.Postcode
		}
	}
	return Result{Label: label, Postcode: p.Postcode, City: city, Context: p.Context}
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Features []feature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Features, nil
}
