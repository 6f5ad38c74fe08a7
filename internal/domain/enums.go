package domain

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeStudyPlan EntityType = "STUDY_PLAN"
	EntityTypeDocument  EntityType = "DOCUMENT"
	EntityTypeUser      EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeStudyPlan, EntityTypeDocument, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// CompletionTrigger tells which path changed a plan's completed flag.
type CompletionTrigger string

const (
	// CompletionTriggerTopic is the auto-derived path: a topic toggle
	// completed or reopened the plan.
	CompletionTriggerTopic CompletionTrigger = "topic"
	// CompletionTriggerManual is the direct override of the plan flag.
	CompletionTriggerManual CompletionTrigger = "manual"
)

func (c CompletionTrigger) String() string { return string(c) }
