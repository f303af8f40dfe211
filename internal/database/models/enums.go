package models

// ActivityType defines the kinds of activities that appear on the planning
type ActivityType string

const (
	ActivityTypeGaming      ActivityType = "gaming"
	ActivityTypeFormation   ActivityType = "formation"
	ActivityTypeMaintenance ActivityType = "maintenance"
	ActivityTypeAdmin       ActivityType = "admin"
	ActivityTypeITWork      ActivityType = "it_work"
	ActivityTypeCleaning    ActivityType = "cleaning"
)

// ActivityStatus defines the lifecycle states of an activity
type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusAssigned  ActivityStatus = "assigned"
	ActivityStatusConfirmed ActivityStatus = "confirmed"
	ActivityStatusCancelled ActivityStatus = "cancelled"
	ActivityStatusDeleted   ActivityStatus = "deleted"
	ActivityStatusCompleted ActivityStatus = "completed"
)

// ActivitySource defines where an activity originated from
type ActivitySource string

const (
	ActivitySourceManual       ActivitySource = "manual"
	ActivitySourceExternalSync ActivitySource = "external_sync"
)

// AssignmentStatus defines the states of an event assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusDeclined  AssignmentStatus = "declined"
)

// NotificationType defines the kinds of notifications sent to game masters
type NotificationType string

const (
	NotificationTypeAssignment NotificationType = "assignment"
	NotificationTypeModified   NotificationType = "modified"
	NotificationTypeCancelled  NotificationType = "cancelled"
	NotificationTypeUnassigned NotificationType = "unassigned"
)

// IsValid checks if the ActivityType is valid
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeGaming, ActivityTypeFormation, ActivityTypeMaintenance,
		ActivityTypeAdmin, ActivityTypeITWork, ActivityTypeCleaning:
		return true
	}
	return false
}

// IsValid checks if the ActivityStatus is valid
func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityStatusPending, ActivityStatusAssigned, ActivityStatusConfirmed,
		ActivityStatusCancelled, ActivityStatusDeleted, ActivityStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the ActivitySource is valid
func (s ActivitySource) IsValid() bool {
	switch s {
	case ActivitySourceManual, ActivitySourceExternalSync:
		return true
	}
	return false
}

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeAssignment, NotificationTypeModified,
		NotificationTypeCancelled, NotificationTypeUnassigned:
		return true
	}
	return false
}
