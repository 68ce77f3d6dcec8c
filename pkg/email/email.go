// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"premiumartisan_backend/internal/model"
)

type EmailService struct {
	apiKey     string
	from       string
	adminEmail string
	templates  *template.Template
	http       *http.Client
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type LeadNotificationData struct {
	Category    string
	Name        string
	Phone       string
	Postal      string
	Location    string
	Surface     string
	Budget      string
	Description string
	PhotoName   string
	CreatedAt   time.Time
}

type DailyDigestData struct {
	Date       string
	LeadCount  int64
	TotalCount int64
}

func NewEmailService(apiKey, from, adminEmail string) (*EmailService, error) {
	tmpl, err := template.New("emails").Parse(emailTemplates)
	if err != nil {
		return nil, fmt.Errorf("could not parse email templates: %w", err)
	}
	return &EmailService{
		apiKey:     apiKey,
		from:       from,
		adminEmail: adminEmail,
		templates:  tmpl,
		http:       &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendLeadNotification mails the operator about a freshly stored lead.
func (s *EmailService) SendLeadNotification(lead *model.Lead, budgetLabel string) error {
	if s.adminEmail == "" {
		return nil
	}

	data := LeadNotificationData{
		Category:  lead.Category,
		Name:      lead.Name,
		Phone:     lead.Phone,
		Postal:    lead.Postal,
		Budget:    budgetLabel,
		CreatedAt: lead.CreatedAt,
	}
	if lead.Location != nil {
		data.Location = *lead.Location
	}
	if lead.Surface != nil {
		data.Surface = *lead.Surface
	}
	if lead.Description != nil {
		data.Description = *lead.Description
	}
	if lead.PhotoName != nil {
		data.PhotoName = *lead.PhotoName
	}

	html, err := s.render("lead_notification", data)
	if err != nil {
		return err
	}
	return s.send(s.adminEmail, fmt.Sprintf("Nouveau projet : %s (%s)", lead.Category, lead.Postal), html)
}

// SendDailyDigest mails the operator the day's lead counts.
func (s *EmailService) SendDailyDigest(date string, leadCount, totalCount int64) error {
	if s.adminEmail == "" {
		return nil
	}
	html, err := s.render("daily_digest", DailyDigestData{
		Date:       date,
		LeadCount:  leadCount,
		TotalCount: totalCount,
	})
	if err != nil {
		return err
	}
	return s.send(s.adminEmail, fmt.Sprintf("Leads du %s : %d", date, leadCount), html)
}

func (s *EmailService) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("could not render template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (s *EmailService) send(to, subject, html string) error {
	payload, err := json.Marshal(EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
