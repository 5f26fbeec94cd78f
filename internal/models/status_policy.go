package models

// ApplicationStatusPolicy decides which status transitions an employer may
// perform. The platform historically allows any status to replace any other
// (employers use it to correct mistakes), so AllowAny is the default; the
// strict table is available behind config for deployments that want
// forward-only flows.
type ApplicationStatusPolicy struct {
	AllowAny    bool
	Transitions map[ApplicationStatus][]ApplicationStatus
}

// DefaultStatusPolicy permits every transition, including no-ops and
// "backwards" moves such as hired -> pending.
func DefaultStatusPolicy() ApplicationStatusPolicy {
	return ApplicationStatusPolicy{AllowAny: true}
}

// StrictStatusPolicy is the declared forward-only transition table.
func StrictStatusPolicy() ApplicationStatusPolicy {
	return ApplicationStatusPolicy{
		Transitions: map[ApplicationStatus][]ApplicationStatus{
			ApplicationStatusPending:   {ApplicationStatusReviewing, ApplicationStatusRejected},
			ApplicationStatusReviewing: {ApplicationStatusInterview, ApplicationStatusRejected},
			ApplicationStatusInterview: {ApplicationStatusHired, ApplicationStatusRejected},
		},
	}
}

// CanTransition reports whether the policy allows from -> to.
func (p ApplicationStatusPolicy) CanTransition(from, to ApplicationStatus) bool {
	if p.AllowAny {
		return true
	}
	for _, next := range p.Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
