package models

// Restaurant wraps one booking sheet with the static catalogs: the menu and
// the staff roster.
type Restaurant struct {
	Name    string
	Address string
	Sheet   *BookingSheet

	menu  []MenuItem
	staff []*Staff
}

func NewRestaurant(name, address string, sheet *BookingSheet) *Restaurant {
	return &Restaurant{Name: name, Address: address, Sheet: sheet}
}

func (r *Restaurant) AddMenuItem(item MenuItem) {
	r.menu = append(r.menu, item)
}

func (r *Restaurant) Menu() []MenuItem { return r.menu }

// FindMenuItem looks an item up by exact name.
func (r *Restaurant) FindMenuItem(name string) (MenuItem, bool) {
	for _, item := range r.menu {
		if item.Name == name {
			return item, true
		}
	}
	return MenuItem{}, false
}

func (r *Restaurant) AddStaff(member *Staff) {
	r.staff = append(r.staff, member)
}

func (r *Restaurant) Staff() []*Staff { return r.staff }

func (r *Restaurant) GenerateDailyReport() *Report {
	return r.Sheet.GenerateReport()
}
