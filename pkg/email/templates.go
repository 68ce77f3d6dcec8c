// pkg/email/templates.go
package email

const emailTemplates = `
{{define "lead_notification"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1e1b4b;">Nouveau projet publié</h2>
    <div style="background: #f8fafc; border-radius: 8px; padding: 16px;">
        <p><strong>Catégorie :</strong> {{.Category}}</p>
        <p><strong>Nom :</strong> {{.Name}}</p>
        <p><strong>Téléphone :</strong> {{.Phone}}</p>
        <p><strong>Code postal :</strong> {{.Postal}}</p>
        {{if .Location}}<p><strong>Ville / Zone :</strong> {{.Location}}</p>{{end}}
        {{if .Surface}}<p><strong>Surface :</strong> {{.Surface}} m²</p>{{end}}
        <p><strong>Budget estimé :</strong> {{.Budget}}</p>
        {{if .Description}}<p><strong>Description :</strong> {{.Description}}</p>{{end}}
        {{if .PhotoName}}<p><strong>Photos :</strong> {{.PhotoName}}</p>{{end}}
    </div>
    <p style="color: #64748b; font-size: 13px;">À diffuser à 4 artisans maximum.</p>
</div>
{{end}}

{{define "daily_digest"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1e1b4b;">Résumé du {{.Date}}</h2>
    <p><strong>{{.LeadCount}}</strong> nouveau(x) lead(s) aujourd'hui.</p>
    <p style="color: #64748b;">Total depuis le lancement : {{.TotalCount}}</p>
</div>
{{end}}
`
