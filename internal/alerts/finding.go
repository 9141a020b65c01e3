// Package alerts contains the threshold evaluator: pure functions that turn
// fleet snapshots and configured thresholds into findings. No I/O happens
// here; dispatching findings is the notification service's job.
package alerts

// Finding types, part of the wire contract with the external system.
const (
	TypeVTVExpired          = "vtv_expired"
	TypeVTVExpiringCritical = "vtv_expiring_critical"
	TypeVTVExpiring         = "vtv_expiring"
	TypeLicenseExpiring     = "license_expiring"
	TypeInsuranceExpired    = "insurance_expired"
	TypeInsuranceExpiring   = "insurance_expiring"
	TypeServiceDue          = "service_due"
)

// Finding severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Entity types a finding can refer to.
const (
	EntityVehicle = "vehicle"
	EntityUser    = "user"
)

// Finding describes one detected compliance violation. Findings are
// ephemeral: they are produced fresh on every evaluation run and never
// deduplicated against prior runs, so the same violation is re-emitted
// until the underlying condition changes.
type Finding struct {
	Type          string         `json:"type"`
	EntityType    string         `json:"entityType"`
	EntityID      string         `json:"entityId"`
	Severity      string         `json:"severity"`
	DaysRemaining int            `json:"daysRemaining"` // negative when already overdue
	Message       string         `json:"message"`
	Data          map[string]any `json:"data,omitempty"`
}
