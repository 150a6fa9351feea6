package domain

// PolicyType is the billing plan of a workspace.
type PolicyType string

// Available policy types.
const (
	// PolicyTypeFree is the free workspace plan.
	PolicyTypeFree PolicyType = "free"

	// PolicyTypeTeam is the collect/team plan.
	PolicyTypeTeam PolicyType = "team"

	// PolicyTypeCorporate is the control/corporate plan.
	PolicyTypeCorporate PolicyType = "corporate"
)

// IsValid returns true if the policy type is recognised.
func (t PolicyType) IsValid() bool {
	switch t {
	case PolicyTypeFree, PolicyTypeTeam, PolicyTypeCorporate:
		return true
	default:
		return false
	}
}

// Policy is a read-only snapshot of a workspace, used for room naming and
// plan lookups.
type Policy struct {
	// PolicyID uniquely identifies the workspace.
	PolicyID string

	// Name is the workspace display name.
	Name string

	// Type is the billing plan.
	Type PolicyType
}
