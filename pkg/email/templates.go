package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Template is a rendered email body. Builders are pure: same input, same
// output, no I/O, so they are testable without a transport.
type Template struct {
	Subject string
	HTML    string
}

const dateLayout = "02/01/2006"

var alertTmpl = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: {{.HeaderColor}}; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
    .alert-box { background: {{.BoxColor}}; border-left: 5px solid {{.BorderColor}}; padding: 20px; margin: 20px 0; border-radius: 5px; }
    .footer { text-align: center; color: #666; margin-top: 30px; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.Title}}</h1>
    </div>
    <div class="content">
      <div class="alert-box">
        <h2 style="margin-top: 0;">{{.Headline}}</h2>
        <p style="font-size: 18px;">{{.Lead}}</p>
      </div>
      {{range .Details}}<p><strong>{{.Label}}:</strong> {{.Value}}</p>
      {{end}}
      <p><strong>Acción requerida:</strong></p>
      <ul>
        {{range .Actions}}<li>{{.}}</li>
        {{end}}
      </ul>
    </div>
    <div class="footer">
      <p>Sistema de Gestión de Flota Paviotti<br>
      Este es un email automático, por favor no responder.</p>
    </div>
  </div>
</body>
</html>
`))

type detail struct {
	Label string
	Value string
}

type alertBody struct {
	Title       string
	Headline    string
	Lead        template.HTML
	Details     []detail
	Actions     []string
	HeaderColor string
	BoxColor    string
	BorderColor string
}

func render(body alertBody) string {
	var buf bytes.Buffer
	if err := alertTmpl.Execute(&buf, body); err != nil {
		// The template and inputs are fully under our control; a failure
		// here is a programming error.
		panic(err)
	}
	return buf.String()
}

// VTVInput feeds the VTV alert template.
type VTVInput struct {
	Plate           string
	Brand           string
	Model           string
	VTVExpiry       time.Time
	DaysUntilExpiry int
	IsExpired       bool
}

// VTVAlert builds the email for a VTV expiry alert.
func VTVAlert(in VTVInput) Template {
	isCritical := in.DaysUntilExpiry >= 0 && in.DaysUntilExpiry <= 7

	urgency := "AVISO"
	headline := "VTV Próxima a Vencer"
	lead := fmt.Sprintf("La VTV del vehículo <strong>%s</strong> vence en <strong>%d días</strong>.", in.Plate, in.DaysUntilExpiry)
	action := "Programar turno para VTV"
	boxColor, borderColor := "#e7f3ff", "#0d6efd"

	switch {
	case in.IsExpired:
		urgency = "VENCIDA"
		headline = "VTV VENCIDA"
		lead = fmt.Sprintf("La VTV del vehículo <strong>%s</strong> está VENCIDA hace <strong>%d días</strong>.", in.Plate, -in.DaysUntilExpiry)
		action = "Programar VTV de forma INMEDIATA"
		boxColor, borderColor = "#fee", "#dc3545"
	case isCritical:
		urgency = "URGENTE"
		boxColor, borderColor = "#fff3cd", "#ffc107"
	}

	return Template{
		Subject: fmt.Sprintf("%s: VTV del vehículo %s", urgency, in.Plate),
		HTML: render(alertBody{
			Title:    "Alerta de VTV",
			Headline: fmt.Sprintf("%s: %s", urgency, headline),
			Lead:     template.HTML(lead),
			Details: []detail{
				{"Patente", in.Plate},
				{"Marca", in.Brand},
				{"Modelo", in.Model},
				{"Vencimiento VTV", in.VTVExpiry.Format(dateLayout)},
			},
			Actions: []string{
				action,
				"Verificar disponibilidad en plantas verificadoras",
				"Preparar documentación necesaria",
			},
			HeaderColor: "#667eea",
			BoxColor:    boxColor,
			BorderColor: borderColor,
		}),
	}
}

// LicenseInput feeds the driver-license alert template.
type LicenseInput struct {
	UserName          string
	UserEmail         string
	LicenseExpiration time.Time
	DaysExpired       int
}

// LicenseAlert builds the email for an expired or due-today license.
func LicenseAlert(in LicenseInput) Template {
	dueToday := in.DaysExpired == 0

	urgency := "CRÍTICO"
	state := "VENCIDA"
	lead := fmt.Sprintf("La licencia de conducir de <strong>%s</strong> está VENCIDA hace %d días.", in.UserName, in.DaysExpired)
	firstAction := "El conductor NO puede conducir vehículos de la empresa"
	if dueToday {
		urgency = "URGENTE"
		state = "vence HOY"
		lead = fmt.Sprintf("La licencia de conducir de <strong>%s</strong> vence HOY.", in.UserName)
		firstAction = "Suspender asignación de vehículos HOY"
	}

	return Template{
		Subject: fmt.Sprintf("%s: Licencia de conducir %s", urgency, state),
		HTML: render(alertBody{
			Title:    "Alerta de Licencia de Conducir",
			Headline: fmt.Sprintf("LICENCIA %s", state),
			Lead:     template.HTML(lead),
			Details: []detail{
				{"Conductor", in.UserName},
				{"Email", in.UserEmail},
				{"Vencimiento", in.LicenseExpiration.Format(dateLayout)},
			},
			Actions: []string{
				firstAction,
				"Gestionar renovación de licencia",
				"Actualizar documentación en el sistema",
			},
			HeaderColor: "#dc3545",
			BoxColor:    "#fee",
			BorderColor: "#dc3545",
		}),
	}
}

// InsuranceInput feeds the insurance alert template.
type InsuranceInput struct {
	Plate           string
	Brand           string
	Model           string
	InsuranceExpiry time.Time
	DaysUntilExpiry int
	IsExpired       bool
}

// InsuranceAlert builds the email for an insurance expiry alert.
func InsuranceAlert(in InsuranceInput) Template {
	urgency := "AVISO"
	state := "Próximo a Vencer"
	lead := fmt.Sprintf("El seguro del vehículo <strong>%s</strong> vence en %d días.", in.Plate, in.DaysUntilExpiry)
	firstAction := "Contactar aseguradora para renovación"
	boxColor, borderColor := "#fff3cd", "#ffc107"

	if in.IsExpired {
		urgency = "CRÍTICO"
		state = "VENCIDO"
		lead = fmt.Sprintf("El seguro del vehículo <strong>%s</strong> está VENCIDO hace %d días.", in.Plate, -in.DaysUntilExpiry)
		firstAction = "NO usar el vehículo hasta renovar seguro"
		boxColor, borderColor = "#fee", "#dc3545"
	}

	return Template{
		Subject: fmt.Sprintf("%s: Seguro del vehículo %s", urgency, in.Plate),
		HTML: render(alertBody{
			Title:    "Alerta de Seguro Vehicular",
			Headline: fmt.Sprintf("SEGURO %s", state),
			Lead:     template.HTML(lead),
			Details: []detail{
				{"Vehículo", fmt.Sprintf("%s %s (%s)", in.Brand, in.Model, in.Plate)},
				{"Vencimiento", in.InsuranceExpiry.Format(dateLayout)},
			},
			Actions: []string{
				firstAction,
				"Verificar cobertura actual",
				"Actualizar póliza en el sistema",
			},
			HeaderColor: "#28a745",
			BoxColor:    boxColor,
			BorderColor: borderColor,
		}),
	}
}

// MaintenanceInput feeds the service-due alert template.
type MaintenanceInput struct {
	Plate  string
	Brand  string
	Model  string
	Reason string
}

// MaintenanceAlert builds the email for a service-due alert.
func MaintenanceAlert(in MaintenanceInput) Template {
	return Template{
		Subject: fmt.Sprintf("Mantenimiento Requerido: %s", in.Plate),
		HTML: render(alertBody{
			Title:    "Alerta de Mantenimiento",
			Headline: "MANTENIMIENTO PROGRAMADO",
			Lead:     template.HTML(fmt.Sprintf("El vehículo <strong>%s</strong> necesita service.", in.Plate)),
			Details: []detail{
				{"Vehículo", fmt.Sprintf("%s %s (%s)", in.Brand, in.Model, in.Plate)},
				{"Motivo", in.Reason},
			},
			Actions: []string{
				"Programar turno en taller",
				"Verificar disponibilidad mecánico",
				"Coordinar vehículo de reemplazo si es necesario",
			},
			HeaderColor: "#ffc107",
			BoxColor:    "#fff3cd",
			BorderColor: "#ffc107",
		}),
	}
}
