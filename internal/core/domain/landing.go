package domain

const (
	PathHome               = "/"
	PathLogin              = "/login"
	PathExecutiveDashboard = "/dashboard/executive"
	PathCandidates         = "/candidates"
	PathClientPortal       = "/portal/client"
	PathVendorPortal       = "/portal/vendor"
	PathCandidatePortal    = "/portal/candidate"
)

// LandingPath is the default page for role, used after login and when access
// to a page is denied.
func LandingPath(r Role) string {
	switch r {
	case RoleAdmin:
		return PathExecutiveDashboard
	case RoleRecruiter:
		return PathCandidates
	case RoleClient:
		return PathClientPortal
	case RoleVendor:
		return PathVendorPortal
	case RoleCandidate:
		return PathCandidatePortal
	default:
		return PathHome
	}
}
