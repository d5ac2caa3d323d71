package models

// Permission names are capability tags only; nothing in the system enforces
// them yet.
const (
	PermCreateReservation = "CreateReservation"
	PermUpdateReservation = "UpdateReservation"
	PermManageStaff       = "ManageStaff"
	PermViewReports       = "ViewReports"
)

// Role bundles a name with a set of permission names.
type Role struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// NewRole keeps the permission list a set: duplicates are dropped, first
// occurrence order preserved.
func NewRole(name string, permissions ...string) Role {
	seen := make(map[string]bool, len(permissions))
	unique := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}
	return Role{Name: name, Permissions: unique}
}

func (r Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

type Staff struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Role    Role   `json:"role"`
}

func NewFrontDeskStaff(name, contact string) *Staff {
	return &Staff{
		Name:    name,
		Contact: contact,
		Role:    NewRole("Front Desk", PermCreateReservation, PermUpdateReservation),
	}
}

func NewManager(name, contact string) *Staff {
	return &Staff{
		Name:    name,
		Contact: contact,
		Role: NewRole("Manager",
			PermCreateReservation, PermUpdateReservation, PermManageStaff, PermViewReports),
	}
}
