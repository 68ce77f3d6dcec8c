package seo

import (
	"strings"
	"testing"
	"time"
)

func TestSlugifyCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dijon", "dijon"},
		{"Chenôve", "chenove"},
		{"Fontaine-lès-Dijon", "fontaine-les-dijon"},
	}
	for _, tt := range tests {
		if got := SlugifyCity(tt.in); got != tt.want {
			t.Errorf("SlugifyCity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildAndParseTravauxSlug(t *testing.T) {
	for _, s := range GetServices() {
		for _, c := range GetCities() {
			slug := BuildTravauxSlug(s, c)
			gotService, gotCity, ok := ParseTravauxSlug(slug)
			if !ok {
				t.Fatalf("ParseTravauxSlug(%q) failed", slug)
			}
			if gotService.ID != s.ID || gotCity.ID != c.ID {
				t.Errorf("round trip of %q gave %s/%s, want %s/%s",
					slug, gotService.ID, gotCity.ID, s.ID, c.ID)
			}
		}
	}
}

func TestParseTravauxSlugUnknown(t *testing.T) {
	for _, slug := range []string{"", "devis", "devis-peinture", "devis-peinture-nowhere", "devis-couverture-dijon"} {
		if _, _, ok := ParseTravauxSlug(slug); ok {
			t.Errorf("ParseTravauxSlug(%q) = ok, want miss", slug)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	if _, ok := GetServiceByMetierSlug("peinture"); !ok {
		t.Error("expected peinture service")
	}
	if _, ok := GetServiceByMetierSlug("couverture"); ok {
		t.Error("unexpected couverture service")
	}
	if _, ok := GetCityBySlug("dijon"); !ok {
		t.Error("expected dijon city")
	}
}

func TestSitemapEntries(t *testing.T) {
	Init("PremiumArtisan", "https://premiumartisan.fr")

	entries := SitemapEntries(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	want := 2 + len(GetServices())*len(GetCities())
	if len(entries) != want {
		t.Fatalf("got %d sitemap entries, want %d", len(entries), want)
	}
	if entries[0].Loc != "https://premiumartisan.fr/" || entries[0].Priority != 1 {
		t.Errorf("unexpected home entry: %+v", entries[0])
	}
	if entries[1].Loc != "https://premiumartisan.fr/publier-projet/form" {
		t.Errorf("unexpected form entry: %+v", entries[1])
	}
	if entries[2].Loc != "https://premiumartisan.fr/travaux/devis-peinture-dijon" {
		t.Errorf("unexpected first landing entry: %+v", entries[2])
	}
	for _, e := range entries {
		if e.LastMod != "2026-03-01" {
			t.Errorf("entry %s has lastmod %q", e.Loc, e.LastMod)
		}
	}
}

func TestRenderSitemapAndRobots(t *testing.T) {
	Init("PremiumArtisan", "https://premiumartisan.fr")

	body, err := RenderSitemap(time.Now())
	if err != nil {
		t.Fatalf("RenderSitemap: %v", err)
	}
	if !strings.Contains(string(body), "<urlset") || !strings.Contains(string(body), "devis-renovation-beaune") {
		t.Errorf("sitemap body incomplete:\n%s", body)
	}

	robots := RenderRobots()
	for _, want := range []string{"Disallow: /api/", "Disallow: /admin/", "Sitemap: https://premiumartisan.fr/sitemap.xml"} {
		if !strings.Contains(robots, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, robots)
		}
	}
}
