// pkg/utils/catalog/catalog.go
package catalog

// Option lists offered by the intake form. Read-only after init; serve them,
// never mutate them.

var PaintOptions = []string{
	"intérieure",
	"rénovation",
	"décorative",
	"bois et menuiserie",
	"commerciale",
	"extérieure",
}

// ExpandPaintShorthand rewrites bare paint option labels into their full
// "Peinture <sub>" form so canonicalization groups them: "intérieure" ->
// "Peinture intérieure". Unknown labels pass through untouched.
func ExpandPaintShorthand(raw []string) []string {
	out := make([]string, len(raw))
	for i, entry := range raw {
		out[i] = entry
		for _, opt := range PaintOptions {
			if entry == opt {
				out[i] = "Peinture " + entry
				break
			}
		}
	}
	return out
}

type BudgetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var BudgetOptions = []BudgetOption{
	{Value: "lt_500", Label: "Moins de 500€"},
	{Value: "500_1500", Label: "500€ – 1500€"},
	{Value: "1500_3000", Label: "1500€ – 3000€"},
	{Value: "3000_7000", Label: "3000€ – 7000€"},
	{Value: "7000_plus", Label: "7000€+"},
}

func ValidBudget(value string) bool {
	for _, opt := range BudgetOptions {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func BudgetLabel(value string) string {
	for _, opt := range BudgetOptions {
		if opt.Value == value {
			return opt.Label
		}
	}
	return "-"
}
