package models

// ✅ Availability statuses shown on a profile
const (
	StatusOpenToWork = "Open to Work"
	StatusMentoring  = "Mentoring"
	StatusHiring     = "Hiring"
	StatusBusy       = "Busy"
	StatusTraveling  = "Traveling"
)

// AvailabilityStatuses lists every valid profile status value.
var AvailabilityStatuses = []string{
	StatusOpenToWork,
	StatusMentoring,
	StatusHiring,
	StatusBusy,
	StatusTraveling,
}

// ✅ Connection statuses between a viewer and a target profile
const (
	ConnectionStatusConnected       = "connected"
	ConnectionStatusPendingSent     = "pending_sent"
	ConnectionStatusPendingReceived = "pending_received"
	ConnectionStatusNone            = "none"
)

// ✅ Discovery modes
const (
	DiscoveryModeAll         = "all"
	DiscoveryModeRecommended = "recommended"
	DiscoveryModeNearby      = "nearby"
)

// ✅ Event filter modes
const (
	EventFilterAll      = "all"
	EventFilterVirtual  = "virtual"
	EventFilterInPerson = "in-person"
)

// SessionKey is the single local key the authenticated profile snapshot is
// persisted under.
const SessionKey = "mindhuddle_user"

// IsValidAvailabilityStatus reports whether s is one of the known statuses.
func IsValidAvailabilityStatus(s string) bool {
	for _, status := range AvailabilityStatuses {
		if s == status {
			return true
		}
	}
	return false
}
