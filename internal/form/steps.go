package form

import (
	"strings"

	"premiumartisan_backend/pkg/utils/catalog"
)

type StepKey string

const (
	StepCategories   StepKey = "categories"
	StepName         StepKey = "name"
	StepPhone        StepKey = "phone"
	StepLocalisation StepKey = "localisation"
	StepBudget       StepKey = "budget"
	StepPhotos       StepKey = "photos"
	StepDescription  StepKey = "description"
	StepReview       StepKey = "review"
)

type Step struct {
	Key      StepKey `json:"key"`
	Title    string  `json:"title"`
	Required bool    `json:"required"`
}

// Steps is the ordered sequence the controller walks. Review is terminal:
// reaching it enables submission, not further advancement.
var Steps = []Step{
	{Key: StepCategories, Title: "Catégorie", Required: true},
	{Key: StepName, Title: "Nom", Required: true},
	{Key: StepPhone, Title: "Téléphone", Required: true},
	{Key: StepLocalisation, Title: "Localisation", Required: true},
	{Key: StepBudget, Title: "Budget estimé", Required: true},
	{Key: StepPhotos, Title: "Photos", Required: false},
	{Key: StepDescription, Title: "Description", Required: false},
	{Key: StepReview, Title: "Résumé", Required: true},
}

// ready reports whether the given step's requirements are satisfied by the
// session's current fields. Optional steps are always ready.
func ready(key StepKey, f *Fields) bool {
	switch key {
	case StepCategories:
		return len(f.Categories) > 0
	case StepName:
		return len([]rune(strings.TrimSpace(f.Name))) >= 2
	case StepPhone:
		return len(f.PhoneDigits()) == 10
	case StepLocalisation:
		return len(f.Postal) == 5 && strings.TrimSpace(f.Location) != ""
	case StepBudget:
		return f.Budget != "" && catalog.ValidBudget(f.Budget)
	case StepPhotos, StepDescription, StepReview:
		return true
	default:
		return false
	}
}
