// pkg/seo/sitemap.go
package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapEntries enumerates the core pages plus one intent landing page per
// service/city pair. The conversion form outranks everything but the home page.
func SitemapEntries(now time.Time) []SitemapURL {
	lastMod := now.Format("2006-01-02")

	entries := []SitemapURL{
		{Loc: AbsURL("/"), LastMod: lastMod, ChangeFreq: "weekly", Priority: 1},
		{Loc: AbsURL("/publier-projet/form"), LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.95},
	}

	for _, s := range services {
		for _, c := range cities {
			entries = append(entries, SitemapURL{
				Loc:        AbsURL("/travaux/" + BuildTravauxSlug(s, c)),
				LastMod:    lastMod,
				ChangeFreq: "weekly",
				Priority:   0.85,
			})
		}
	}
	return entries
}

// RenderSitemap renders the sitemap.xml document.
func RenderSitemap(now time.Time) ([]byte, error) {
	doc := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  SitemapEntries(now),
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RenderRobots renders robots.txt: everything crawlable except the API and
// admin surfaces.
func RenderRobots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + AbsURL("/sitemap.xml") + "\n")
	b.WriteString("Host: " + strings.TrimSuffix(site.BaseURL, "/") + "\n")
	return b.String()
}
