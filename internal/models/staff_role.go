package models

// StaffRole is the ordered staff role hierarchy. Roles compare by level:
// a role satisfies a requirement iff its level is >= the required level.
type StaffRole int

const (
	RoleTeachingAssistant StaffRole = iota + 1
	RoleInstructor
	RoleSeniorInstructor
	RoleAdministrator
)

// Level returns the security clearance level for the role (1-4, higher = more access).
func (r StaffRole) Level() int {
	return int(r)
}

// DisplayName returns the human-readable name for the role.
func (r StaffRole) DisplayName() string {
	switch r {
	case RoleTeachingAssistant:
		return "Teaching Assistant"
	case RoleInstructor:
		return "Instructor"
	case RoleSeniorInstructor:
		return "Senior Instructor"
	case RoleAdministrator:
		return "Administrator"
	default:
		return "Unknown"
	}
}

// Description returns the responsibilities associated with the role.
func (r StaffRole) Description() string {
	switch r {
	case RoleTeachingAssistant:
		return "Basic grading and student support functions"
	case RoleInstructor:
		return "Course management, grading, and content creation"
	case RoleSeniorInstructor:
		return "Advanced course management and staff supervision"
	case RoleAdministrator:
		return "Complete system administration and user management"
	default:
		return ""
	}
}

// HasAccess reports whether this role meets or exceeds the required role.
func (r StaffRole) HasAccess(required StaffRole) bool {
	return r.Level() >= required.Level()
}

// Valid reports whether the role is one of the defined hierarchy levels.
func (r StaffRole) Valid() bool {
	return r >= RoleTeachingAssistant && r <= RoleAdministrator
}

func (r StaffRole) String() string {
	return r.DisplayName()
}
