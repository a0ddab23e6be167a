package auth

import "github.com/yigit/campuserp/internal/app/models"

// Capabilities lists what a role may do on the portal screens
type Capabilities struct {
	CanManageAdmissions bool `json:"canManageAdmissions"`
	CanManageFees       bool `json:"canManageFees"`
	CanManageHostel     bool `json:"canManageHostel"`
	CanManageLibrary    bool `json:"canManageLibrary"`
	CanManageExams      bool `json:"canManageExams"`
	CanIssueBooks       bool `json:"canIssueBooks"`
	ViewsOwnRecordsOnly bool `json:"viewsOwnRecordsOnly"`
}

var capabilities = map[models.Role]Capabilities{
	models.RoleAdmin: {
		CanManageAdmissions: true,
		CanManageFees:       true,
		CanManageHostel:     true,
		CanManageLibrary:    true,
		CanManageExams:      true,
		CanIssueBooks:       true,
	},
	models.RoleStaff: {
		CanManageAdmissions: true,
		CanManageHostel:     true,
		CanManageLibrary:    true,
		CanManageExams:      true,
		CanIssueBooks:       true,
	},
	models.RoleStudent: {
		CanIssueBooks:       true,
		ViewsOwnRecordsOnly: true,
	},
}

// For returns the capabilities of role. Unknown roles get none.
func For(role models.Role) Capabilities {
	return capabilities[role]
}

// NavItem is an entry of the portal navigation
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

var (
	navDashboard = NavItem{Label: "Dashboard", Path: "/dashboard", Icon: "home"}
	navProfile   = NavItem{Label: "Profile", Path: "/profile", Icon: "user"}
	navSettings  = NavItem{Label: "Settings", Path: "/settings", Icon: "settings"}
)

var roleNavItems = map[models.Role][]NavItem{
	models.RoleAdmin: {
		{Label: "Admissions", Path: "/admissions", Icon: "user-plus"},
		{Label: "Fee Management", Path: "/fees", Icon: "credit-card"},
		{Label: "Library Records", Path: "/library", Icon: "book-open"},
		{Label: "Examinations", Path: "/examinations", Icon: "clipboard-list"},
	},
	models.RoleStaff: {
		{Label: "Admissions", Path: "/admissions", Icon: "user-plus"},
		{Label: "Hostel Management", Path: "/hostel", Icon: "building"},
		{Label: "Library Records", Path: "/library", Icon: "book-open"},
		{Label: "Examinations", Path: "/examinations", Icon: "clipboard-list"},
	},
	models.RoleStudent: {
		{Label: "My Fees", Path: "/fees", Icon: "credit-card"},
		{Label: "Hostel Info", Path: "/hostel", Icon: "building"},
		{Label: "Library", Path: "/library", Icon: "book-open"},
		{Label: "Examinations", Path: "/examinations", Icon: "clipboard-list"},
	},
}

// NavItems returns the navigation for role: Dashboard, the role's own
// screens, then Profile and Settings
func NavItems(role models.Role) []NavItem {
	items := make([]NavItem, 0, len(roleNavItems[role])+3)
	items = append(items, navDashboard)
	items = append(items, roleNavItems[role]...)
	return append(items, navProfile, navSettings)
}

// OwnedBy reports whether a record with rollNumber may be shown to identity.
// Roles that see every record always pass.
func OwnedBy(identity *models.Identity, rollNumber string) bool {
	if identity == nil {
		return false
	}
	if !For(identity.Role).ViewsOwnRecordsOnly {
		return true
	}
	return identity.RollNumber != "" && identity.RollNumber == rollNumber
}
