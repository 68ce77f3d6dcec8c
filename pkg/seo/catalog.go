// pkg/seo/catalog.go
package seo

// Read-only service and city catalogs backing the programmatic landing pages.
// Loaded once, never mutated at runtime; expand the lists freely without
// touching page or sitemap logic.

type Service struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	LabelShort    string   `json:"label_short"`
	IntentKeyword string   `json:"intent_keyword"` // /travaux/<intent>-<city>
	MetierSlug    string   `json:"metier_slug"`    // /<metier>/<ville>
	Bullets       []string `json:"bullets"`
}

type City struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DeptLabel      string   `json:"dept_label"`
	DeptCode       string   `json:"dept_code"`
	PostalExamples []string `json:"postal_examples"`
	Nearby         []string `json:"nearby"`
}

var services = []Service{
	{
		ID:            "peinture",
		Label:         "Peinture (intérieure, plafonds, rénovation)",
		LabelShort:    "Peinture",
		IntentKeyword: "devis-peinture",
		MetierSlug:    "peinture",
		Bullets: []string{
			"Jusqu’à 4 devis maximum (volume maîtrisé)",
			"Artisans locaux, sélectionnés selon votre zone",
			"Demande privée (numéro non diffusé publiquement)",
			"Réponse sous 24h selon disponibilité",
		},
	},
	{
		ID:            "renovation",
		Label:         "Rénovation (peinture + remise en état)",
		LabelShort:    "Rénovation",
		IntentKeyword: "devis-renovation",
		MetierSlug:    "renovation",
		Bullets: []string{
			"Jusqu’à 4 réponses maximum",
			"Matching local (zone + besoin)",
			"Projet privé",
			"Délais réalistes, artisans sérieux",
		},
	},
}

var cities = []City{
	{
		ID:             "dijon",
		Name:           "Dijon",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21000", "21100"},
		Nearby:         []string{"Chenôve", "Talant", "Quetigny", "Fontaine-lès-Dijon"},
	},
	{
		ID:             "chenove",
		Name:           "Chenôve",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21300"},
		Nearby:         []string{"Dijon", "Talant"},
	},
	{
		ID:             "talant",
		Name:           "Talant",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21240"},
		Nearby:         []string{"Dijon", "Chenôve"},
	},
	{
		ID:             "beaune",
		Name:           "Beaune",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21200"},
		Nearby:         []string{"Chagny", "Nuits-Saint-Georges"},
	},
	{
		ID:             "quetigny",
		Name:           "Quetigny",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21800"},
		Nearby:         []string{"Dijon", "Chevigny-Saint-Sauveur"},
	},
	{
		ID:             "fontaine-les-dijon",
		Name:           "Fontaine-lès-Dijon",
		DeptLabel:      "Côte-d'Or",
		DeptCode:       "21",
		PostalExamples: []string{"21121"},
		Nearby:         []string{"Dijon", "Talant"},
	},
}

func GetServices() []Service {
	return services
}

func GetCities() []City {
	return cities
}

func GetServiceByMetierSlug(metier string) (Service, bool) {
	for _, s := range services {
		if s.MetierSlug == metier {
			return s, true
		}
	}
	return Service{}, false
}

func GetCityBySlug(ville string) (City, bool) {
	for _, c := range cities {
		if c.ID == ville {
			return c, true
		}
	}
	return City{}, false
}
