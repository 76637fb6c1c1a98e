package models

// TicketStatus defines the lifecycle states of a ticket
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "new"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority drives the SLA due-date computed at creation
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// IsValid checks if the TicketPriority is valid
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// CIStatus defines the states of a configuration item
type CIStatus string

const (
	CIStatusActive      CIStatus = "active"
	CIStatusInactive    CIStatus = "inactive"
	CIStatusMaintenance CIStatus = "maintenance"
	CIStatusRetired     CIStatus = "retired"
)

// IsValid checks if the CIStatus is valid
func (s CIStatus) IsValid() bool {
	switch s {
	case CIStatusActive, CIStatusInactive, CIStatusMaintenance, CIStatusRetired:
		return true
	}
	return false
}

// ProblemStatus defines the lifecycle states of a problem record
type ProblemStatus string

const (
	ProblemStatusOpen       ProblemStatus = "open"
	ProblemStatusIdentified ProblemStatus = "identified"
	ProblemStatusResolved   ProblemStatus = "resolved"
	ProblemStatusClosed     ProblemStatus = "closed"
)

// IsValid checks if the ProblemStatus is valid
func (s ProblemStatus) IsValid() bool {
	switch s {
	case ProblemStatusOpen, ProblemStatusIdentified, ProblemStatusResolved, ProblemStatusClosed:
		return true
	}
	return false
}

// ChangeType classifies a change request
type ChangeType string

const (
	ChangeTypeStandard  ChangeType = "standard"
	ChangeTypeNormal    ChangeType = "normal"
	ChangeTypeEmergency ChangeType = "emergency"
)

// IsValid checks if the ChangeType is valid
func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeTypeStandard, ChangeTypeNormal, ChangeTypeEmergency:
		return true
	}
	return false
}

// ChangeStatus defines the change-management workflow states
type ChangeStatus string

const (
	ChangeStatusDraft      ChangeStatus = "draft"
	ChangeStatusRequested  ChangeStatus = "requested"
	ChangeStatusApproved   ChangeStatus = "approved"
	ChangeStatusInProgress ChangeStatus = "in-progress"
	ChangeStatusCompleted  ChangeStatus = "completed"
	ChangeStatusFailed     ChangeStatus = "failed"
	ChangeStatusCancelled  ChangeStatus = "cancelled"
)

// IsValid checks if the ChangeStatus is valid
func (s ChangeStatus) IsValid() bool {
	switch s {
	case ChangeStatusDraft, ChangeStatusRequested, ChangeStatusApproved,
		ChangeStatusInProgress, ChangeStatusCompleted, ChangeStatusFailed, ChangeStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s
func (s ChangeStatus) IsTerminal() bool {
	switch s {
	case ChangeStatusCompleted, ChangeStatusFailed, ChangeStatusCancelled:
		return true
	}
	return false
}

// changeForwardPath holds the single allowed forward step per state.
var changeForwardPath = map[ChangeStatus]ChangeStatus{
	ChangeStatusDraft:      ChangeStatusRequested,
	ChangeStatusRequested:  ChangeStatusApproved,
	ChangeStatusApproved:   ChangeStatusInProgress,
	ChangeStatusInProgress: ChangeStatusCompleted,
}

// CanTransitionTo reports whether moving from s to target is a legal
// workflow step: one step forward along the
// draft -> requested -> approved -> in-progress -> completed path, or an
// escape to cancelled/failed from any non-terminal state.
func (s ChangeStatus) CanTransitionTo(target ChangeStatus) bool {
	if s == target {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if target == ChangeStatusCancelled || target == ChangeStatusFailed {
		return true
	}
	return changeForwardPath[s] == target
}

// ChangeRisk classifies the risk of a change
type ChangeRisk string

const (
	ChangeRiskLow    ChangeRisk = "low"
	ChangeRiskMedium ChangeRisk = "medium"
	ChangeRiskHigh   ChangeRisk = "high"
)

// IsValid checks if the ChangeRisk is valid
func (r ChangeRisk) IsValid() bool {
	switch r {
	case ChangeRiskLow, ChangeRiskMedium, ChangeRiskHigh:
		return true
	}
	return false
}

// UserRoleName defines the application-level roles
type UserRoleName string

const (
	RoleUser       UserRoleName = "user"
	RoleTechnician UserRoleName = "technician"
	RoleAdmin      UserRoleName = "admin"
)

// IsValid checks if the UserRoleName is valid
func (r UserRoleName) IsValid() bool {
	switch r {
	case RoleUser, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}
