// pkg/seo/seo.go
package seo

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

var site = struct {
	Name    string
	BaseURL string
}{
	Name:    "PremiumArtisan",
	BaseURL: "http://localhost:3000",
}

// Init sets the site identity used for absolute URLs. Call once at startup.
func Init(name, baseURL string) {
	if name != "" {
		site.Name = name
	}
	if baseURL != "" {
		site.BaseURL = baseURL
	}
}

func SiteName() string {
	return site.Name
}

// SlugifyCity turns a display name into a URL slug: "Fontaine-lès-Dijon" ->
// "fontaine-les-dijon".
func SlugifyCity(name string) string {
	return goslug.Make(name)
}

// BuildTravauxSlug produces the intent landing slug, e.g. /travaux/devis-peinture-dijon.
func BuildTravauxSlug(s Service, c City) string {
	return s.IntentKeyword + "-" + SlugifyCity(c.Name)
}

// ParseTravauxSlug resolves "devis-peinture-dijon" back into its service and
// city. Either return value may miss when the slug names unknown entries.
func ParseTravauxSlug(rawSlug string) (Service, City, bool) {
	parts := strings.Split(rawSlug, "-")
	if len(parts) < 3 {
		return Service{}, City{}, false
	}

	intent := parts[0] + "-" + parts[1]
	citySlug := strings.Join(parts[2:], "-")

	var svc Service
	var svcOK bool
	for _, s := range services {
		if s.IntentKeyword == intent {
			svc, svcOK = s, true
			break
		}
	}

	var city City
	var cityOK bool
	for _, c := range cities {
		if SlugifyCity(c.Name) == citySlug {
			city, cityOK = c, true
			break
		}
	}

	return svc, city, svcOK && cityOK
}

// AbsURL joins a path onto the configured site base URL.
func AbsURL(path string) string {
	base := strings.TrimSuffix(site.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
