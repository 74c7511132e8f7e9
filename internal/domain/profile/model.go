package profile

// UserProfile son los datos del productor. Texto libre, sin validación de formato.
type UserProfile struct {
	Name     string
	Phone    string
	Email    string
	FarmName string
	Location string
}

// NotificationPreferences es un conjunto cerrado de toggles independientes.
type NotificationPreferences struct {
	BoundaryAlerts bool
	BatteryAlerts  bool
	MovementAlerts bool
	DailySummary   bool
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Name:     "John Mokoena",
		Phone:    "073 123 4567",
		Email:    "john@example.com",
		FarmName: "Green Hills Farm",
		Location: "Eastern Cape, South Africa",
	}
}

func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		BoundaryAlerts: true,
		BatteryAlerts:  true,
		MovementAlerts: true,
		DailySummary:   false,
	}
}

// Setting nombra un toggle de NotificationPreferences.
// @Enum boundary_alerts, battery_alerts, movement_alerts, daily_summary
type Setting string

const (
	SettingBoundaryAlerts Setting = "boundary_alerts"
	SettingBatteryAlerts  Setting = "battery_alerts"
	SettingMovementAlerts Setting = "movement_alerts"
	SettingDailySummary   Setting = "daily_summary"
)

var Settings = []Setting{SettingBoundaryAlerts, SettingBatteryAlerts, SettingMovementAlerts, SettingDailySummary}

func (s Setting) Valid() bool {
	switch s {
	case SettingBoundaryAlerts, SettingBatteryAlerts, SettingMovementAlerts, SettingDailySummary:
		return true
	default:
		return false
	}
}

// Toggle devuelve una copia con el setting invertido; los demás no cambian.
func (p NotificationPreferences) Toggle(s Setting) NotificationPreferences {
	switch s {
	case SettingBoundaryAlerts:
		p.BoundaryAlerts = !p.BoundaryAlerts
	case SettingBatteryAlerts:
		p.BatteryAlerts = !p.BatteryAlerts
	case SettingMovementAlerts:
		p.MovementAlerts = !p.MovementAlerts
	case SettingDailySummary:
		p.DailySummary = !p.DailySummary
	}
	return p
}

func (p NotificationPreferences) Enabled(s Setting) bool {
	switch s {
	case SettingBoundaryAlerts:
		return p.BoundaryAlerts
	case SettingBatteryAlerts:
		return p.BatteryAlerts
	case SettingMovementAlerts:
		return p.MovementAlerts
	case SettingDailySummary:
		return p.DailySummary
	default:
		return false
	}
}
