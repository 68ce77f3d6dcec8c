package controller

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/internal/model"
	"premiumartisan_backend/pkg/database"
	"premiumartisan_backend/pkg/email"
	"premiumartisan_backend/pkg/utils/catalog"
	"premiumartisan_backend/pkg/utils/category"
)

const (
	msgMissingRequired = "Veuillez remplir les champs obligatoires."
	msgMissingCategory = "Veuillez sélectionner une catégorie."
	msgDBError         = "Erreur serveur DB. Réessayez."
)

// LeadInput is the intake payload. Category arrives either as a single joined
// string (the step form) or as a list of raw labels.
type LeadInput struct {
	Honeypot    string          `json:"honeypot"`
	Category    json.RawMessage `json:"category"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Postal      string          `json:"postal"`
	Surface     string          `json:"surface"`
	Location    string          `json:"location"`
	Budget      string          `json:"budget"`
	Description string          `json:"description"`
	PhotoName   string          `json:"photoName"`
}

// categories decodes the category member. present distinguishes "field
// missing" from "selection cleans down to nothing": an empty list is present
// but canonicalizes to the empty string, a different rejection.
func (in *LeadInput) categories() (list []string, present bool) {
	if len(in.Category) == 0 || string(in.Category) == "null" {
		return nil, false
	}
	if err := json.Unmarshal(in.Category, &list); err == nil {
		return list, true
	}
	var single string
	if err := json.Unmarshal(in.Category, &single); err == nil && single != "" {
		return []string{single}, true
	}
	return nil, false
}

func InitLeadController() {}

// CreateLead handles POST /api/publier-projet. Order matters: tolerant
// parse, honeypot trap, required fields, category canonicalization, insert.
func CreateLead(c *fiber.Ctx) error {
	input := new(LeadInput)
	// A malformed body behaves like an empty payload, which then fails the
	// required-field check below.
	if err := c.BodyParser(input); err != nil {
		input = new(LeadInput)
	}

	// Honeypot: respond success without persisting.
	if strings.TrimSpace(input.Honeypot) != "" {
		return c.JSON(fiber.Map{"ok": true})
	}

	rawCategories, categoryPresent := input.categories()
	if !categoryPresent || input.Name == "" || input.Phone == "" || input.Postal == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": msgMissingRequired,
		})
	}

	categoryValue := category.Format(catalog.ExpandPaintShorthand(rawCategories))
	if categoryValue == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": msgMissingCategory,
		})
	}

	// Budget travels with the payload for the artisan match but is not a
	// stored column; reject unknown values instead of dropping them quietly.
	if input.Budget != "" && !catalog.ValidBudget(input.Budget) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": msgMissingRequired,
		})
	}

	lead := model.Lead{
		Category:    categoryValue,
		Name:        input.Name,
		Phone:       input.Phone,
		Postal:      input.Postal,
		Surface:     optional(input.Surface),
		Location:    optional(input.Location),
		Description: optional(input.Description),
		PhotoName:   optional(input.PhotoName),
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		log.Printf("Could not create lead: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": msgDBError,
		})
	}

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendLeadNotification(&lead, catalog.BudgetLabel(input.Budget)); err != nil {
			log.Printf("Could not send lead notification email: %v", err)
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListLeads handles GET /api/admin/leads: the 200 most recent leads,
// newest first, filtered in process the way the admin view filters its
// snapshot. Query params: q (substring) and with_phone.
func ListLeads(c *fiber.Ctx) error {
	var leads []model.Lead
	err := database.GetDB().
		Order("created_at desc").
		Limit(model.AdminListLimit).
		Find(&leads).Error
	if err != nil {
		log.Printf("Could not fetch leads: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	query := c.Query("q")
	onlyWithPhone := c.Query("with_phone") == "true"

	filtered := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if onlyWithPhone && !l.HasPhone() {
			continue
		}
		if !l.MatchesQuery(query) {
			continue
		}
		filtered = append(filtered, l)
	}

	return c.JSON(fiber.Map{
		"total":     len(leads),
		"displayed": len(filtered),
		"leads":     filtered,
	})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
