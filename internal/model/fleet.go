package model

import "time"

// Vehicle is a read-only snapshot of a fleet vehicle. The monitor never
// mutates vehicles; they are consumed from the fleet store as-is.
type Vehicle struct {
	ID                 string     `json:"id"`
	Plate              string     `json:"plate"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	VTVExpiry          *time.Time `json:"vtvExpiry"`
	InsuranceExpiry    *time.Time `json:"insuranceExpiry"`
	CurrentMileage     *int       `json:"currentMileage"`     // km
	LastServiceMileage *int       `json:"lastServiceMileage"` // km
	LastServiceDate    *time.Time `json:"lastServiceDate"`
}

// User is a read-only snapshot of a driver.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Active            bool       `json:"active"`
	LicenseExpiration *time.Time `json:"licenseExpiration"`
}

// ThresholdConfig carries the alert thresholds and email settings for one
// evaluation run. It is supplied once per run and immutable during it.
type ThresholdConfig struct {
	ServiceKmInterval    int      `json:"serviceKmInterval"`    // km between services
	ServiceMonthInterval int      `json:"serviceMonthInterval"` // months between services
	CheckIntervalDays    int      `json:"checkIntervalDays"`
	Recipients           []string `json:"notificationRecipients"` // deduplicated, order preserved
	EnableEmailAlerts    bool     `json:"enableEmailAlerts"`
}
