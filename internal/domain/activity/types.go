package activity

type EventType string

const (
	EventTypeLivestockAdded         EventType = "LIVESTOCK_ADDED"
	EventTypeLivestockStatusChanged EventType = "LIVESTOCK_STATUS_CHANGED"
	EventTypeAlertRaised            EventType = "ALERT_RAISED"
	EventTypeAlertRead              EventType = "ALERT_READ"
	EventTypeAlertsAllRead          EventType = "ALERTS_ALL_READ"
	EventTypeProfileSaved           EventType = "PROFILE_SAVED"
	EventTypeNotificationToggled    EventType = "NOTIFICATION_TOGGLED"
	EventTypeAnimalSelected         EventType = "ANIMAL_SELECTED"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeLivestockAdded,
		EventTypeLivestockStatusChanged,
		EventTypeAlertRaised,
		EventTypeAlertRead,
		EventTypeAlertsAllRead,
		EventTypeProfileSaved,
		EventTypeNotificationToggled,
		EventTypeAnimalSelected:
		return true
	default:
		return false
	}
}
