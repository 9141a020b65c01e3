package alerts

import (
	"fmt"
	"math"
	"time"

	"github.com/paviotti-fleet/monitor/internal/model"
)

// Alert windows in days.
const (
	vtvWarningDays       = 30
	vtvCriticalDays      = 7
	insuranceWarningDays = 30
)

const msPerDay = 24 * 60 * 60 * 1000

// daysBetween returns the whole days from "from" to "to", computed as the
// floor of the millisecond delta over 86 400 000. Floor, not truncation: a
// target 12 hours in the future yields 0, a target 12 hours in the past
// yields -1.
func daysBetween(from, to time.Time) int {
	ms := to.UnixMilli() - from.UnixMilli()
	d := ms / msPerDay
	if ms%msPerDay != 0 && ms < 0 {
		d--
	}
	return int(d)
}

// Evaluate runs every category check in a fixed order: VTV, driver licenses,
// insurance, service. Within a category, findings follow the iteration order
// of the input slice. No cross-category severity sort is applied; sorting for
// display is a caller's concern.
func Evaluate(now time.Time, vehicles []model.Vehicle, users []model.User, cfg model.ThresholdConfig) []Finding {
	var findings []Finding
	findings = append(findings, CheckVTV(now, vehicles)...)
	findings = append(findings, CheckLicenses(now, users)...)
	findings = append(findings, CheckInsurance(now, vehicles)...)
	findings = append(findings, CheckService(now, vehicles, cfg)...)
	return findings
}

// CheckVTV emits a finding for every vehicle whose VTV certificate expires
// within 30 days or has already expired.
func CheckVTV(now time.Time, vehicles []model.Vehicle) []Finding {
	var findings []Finding

	for _, v := range vehicles {
		if v.VTVExpiry == nil {
			continue
		}

		days := daysBetween(now, *v.VTVExpiry)
		if days > vtvWarningDays {
			continue
		}

		var typ, severity, message string
		switch {
		case days < 0:
			typ = TypeVTVExpired
			severity = SeverityCritical
			message = fmt.Sprintf("CRÍTICO: VTV del vehículo %s VENCIDA hace %d días", v.Plate, -days)
		case days <= vtvCriticalDays:
			typ = TypeVTVExpiringCritical
			severity = SeverityCritical
			message = fmt.Sprintf("URGENTE: VTV del vehículo %s vence en %d días", v.Plate, days)
		default:
			typ = TypeVTVExpiring
			severity = SeverityWarning
			message = fmt.Sprintf("AVISO: VTV del vehículo %s vence en %d días", v.Plate, days)
		}

		findings = append(findings, Finding{
			Type:          typ,
			EntityType:    EntityVehicle,
			EntityID:      v.ID,
			Severity:      severity,
			DaysRemaining: days,
			Message:       message,
			Data: map[string]any{
				"plate":           v.Plate,
				"brand":           v.Brand,
				"model":           v.Model,
				"vtvExpiry":       v.VTVExpiry.Format(time.RFC3339),
				"daysUntilExpiry": days,
			},
		})
	}

	return findings
}

// CheckLicenses emits a finding for every active user whose driver license
// is already due or overdue. Upcoming expirations are deliberately not
// reported, asymmetric with the vehicle checks. The finding type is always
// "license_expiring", for both due-today and overdue licenses; the external
// consumer depends on that name.
func CheckLicenses(now time.Time, users []model.User) []Finding {
	var findings []Finding

	for _, u := range users {
		if !u.Active || u.LicenseExpiration == nil {
			continue
		}
		if u.LicenseExpiration.After(now) {
			continue
		}

		daysExpired := daysBetween(*u.LicenseExpiration, now)

		var message string
		if daysExpired == 0 {
			message = fmt.Sprintf("URGENTE: Licencia de %s vence HOY", u.Name)
		} else {
			message = fmt.Sprintf("CRÍTICO: Licencia de %s VENCIDA hace %d días", u.Name, daysExpired)
		}

		findings = append(findings, Finding{
			Type:          TypeLicenseExpiring,
			EntityType:    EntityUser,
			EntityID:      u.ID,
			Severity:      SeverityCritical,
			DaysRemaining: -daysExpired,
			Message:       message,
			Data: map[string]any{
				"userName":          u.Name,
				"userEmail":         u.Email,
				"licenseExpiration": u.LicenseExpiration.Format(time.RFC3339),
				"daysExpired":       daysExpired,
			},
		})
	}

	return findings
}

// CheckInsurance emits a finding for every vehicle whose insurance expires
// within 30 days or has already expired. Unlike VTV there is no separate
// critical tier, only expired vs. expiring.
func CheckInsurance(now time.Time, vehicles []model.Vehicle) []Finding {
	var findings []Finding

	for _, v := range vehicles {
		if v.InsuranceExpiry == nil {
			continue
		}

		days := daysBetween(now, *v.InsuranceExpiry)
		if days > insuranceWarningDays {
			continue
		}

		typ := TypeInsuranceExpiring
		severity := SeverityWarning
		message := fmt.Sprintf("AVISO: Seguro del vehículo %s vence en %d días", v.Plate, days)
		if days < 0 {
			typ = TypeInsuranceExpired
			severity = SeverityCritical
			message = fmt.Sprintf("CRÍTICO: Seguro del vehículo %s VENCIDO hace %d días", v.Plate, -days)
		}

		findings = append(findings, Finding{
			Type:          typ,
			EntityType:    EntityVehicle,
			EntityID:      v.ID,
			Severity:      severity,
			DaysRemaining: days,
			Message:       message,
			Data: map[string]any{
				"plate":           v.Plate,
				"brand":           v.Brand,
				"model":           v.Model,
				"insuranceExpiry": v.InsuranceExpiry.Format(time.RFC3339),
				"daysUntilExpiry": days,
			},
		})
	}

	return findings
}

// CheckService emits a finding for every vehicle due for service, either by
// accumulated kilometers or by months since the last service (30.44-day
// months). Vehicles missing mileage data are skipped: they cannot be
// evaluated. A negative km delta (odometer reset) counts as not due by km.
func CheckService(now time.Time, vehicles []model.Vehicle, cfg model.ThresholdConfig) []Finding {
	var findings []Finding

	for _, v := range vehicles {
		if v.CurrentMileage == nil || v.LastServiceMileage == nil {
			continue
		}

		kmSinceService := *v.CurrentMileage - *v.LastServiceMileage
		dueByKm := kmSinceService >= 0 && kmSinceService >= cfg.ServiceKmInterval

		var monthsSinceService float64
		dueByDate := false
		if v.LastServiceDate != nil {
			monthsSinceService = now.Sub(*v.LastServiceDate).Hours() / (24 * 30.44)
			dueByDate = monthsSinceService >= float64(cfg.ServiceMonthInterval)
		}

		if !dueByKm && !dueByDate {
			continue
		}

		months := int(math.Floor(monthsSinceService))

		var reason string
		switch {
		case dueByKm && dueByDate:
			reason = fmt.Sprintf("%d km y %d meses desde último service", kmSinceService, months)
		case dueByKm:
			reason = fmt.Sprintf("%d km desde último service (límite: %d km)", kmSinceService, cfg.ServiceKmInterval)
		default:
			reason = fmt.Sprintf("%d meses desde último service (límite: %d meses)", months, cfg.ServiceMonthInterval)
		}

		findings = append(findings, Finding{
			Type:       TypeServiceDue,
			EntityType: EntityVehicle,
			EntityID:   v.ID,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("MANTENIMIENTO: Vehículo %s necesita service (%s)", v.Plate, reason),
			Data: map[string]any{
				"plate":              v.Plate,
				"brand":              v.Brand,
				"model":              v.Model,
				"currentMileage":     *v.CurrentMileage,
				"lastServiceMileage": *v.LastServiceMileage,
				"kmSinceService":     kmSinceService,
				"monthsSinceService": months,
				"reason":             reason,
			},
		})
	}

	return findings
}
