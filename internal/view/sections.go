// Package view maps navigation keys onto page sections. Exactly one section
// renders per request; navigating to a section triggers its data refresh.
package view

// Section identifies a page section. The zero value is Home.
type Section int

const (
	Home Section = iota
	Phones
	OrderPhone
	AddPhone
	Profile
	AdminDashboard
	AdminOrders
	AdminReports
	Login
	Register
)

// Spec describes how a section renders and who may see it.
type Spec struct {
	Key       string
	Template  string
	Title     string
	AdminOnly bool
	// RequiresAuth gates sections that are meaningless when logged out.
	RequiresAuth bool
}

// table drives dispatch; order matters only for Nav.
var table = map[Section]Spec{
	Home:           {Key: "home", Template: "home.html", Title: "PhoneTech"},
	Phones:         {Key: "phones", Template: "phones.html", Title: "Shop Phones"},
	OrderPhone:     {Key: "order-phone", Template: "order.html", Title: "Place Order", RequiresAuth: true},
	AddPhone:       {Key: "add-phone", Template: "phone_form.html", Title: "Add New Phone", AdminOnly: true},
	Profile:        {Key: "profile", Template: "profile.html", Title: "My Profile"},
	AdminDashboard: {Key: "admin-dashboard", Template: "admin_dashboard.html", Title: "Dashboard", AdminOnly: true},
	AdminOrders:    {Key: "admin-orders", Template: "admin_orders.html", Title: "Manage Orders", AdminOnly: true},
	AdminReports:   {Key: "admin-reports", Template: "admin_reports.html", Title: "Reports", AdminOnly: true},
	Login:          {Key: "login", Template: "login.html", Title: "Login"},
	Register:       {Key: "register", Template: "register.html", Title: "Register"},
}

// Lookup resolves a navigation key. Unknown keys resolve to Home, matching
// the storefront's behavior of never dead-ending navigation.
func Lookup(key string) Section {
	for section, spec := range table {
		if spec.Key == key {
			return section
		}
	}
	return Home
}

// Describe returns the section's spec.
func Describe(s Section) Spec {
	if spec, ok := table[s]; ok {
		return spec
	}
	return table[Home]
}

// NavItem is a navigation entry with its visibility already decided.
type NavItem struct {
	Key       string
	Title     string
	AdminOnly bool
}

// navOrder fixes the navigation bar ordering.
var navOrder = []Section{Home, Phones, Profile, AdminDashboard, AddPhone, AdminOrders, AdminReports}

// Nav returns the navigation entries visible to the current user. Admin-only
// sections are dropped entirely for non-admins.
func Nav(isAdmin bool) []NavItem {
	items := make([]NavItem, 0, len(navOrder))
	for _, section := range navOrder {
		spec := table[section]
		if spec.AdminOnly && !isAdmin {
			continue
		}
		items = append(items, NavItem{Key: spec.Key, Title: spec.Title, AdminOnly: spec.AdminOnly})
	}
	return items
}

// Visible reports whether the user may enter the section. Sections that
// merely require auth are still routed; the handler renders the guest hint.
func Visible(s Section, isAdmin bool) bool {
	spec := Describe(s)
	return !spec.AdminOnly || isAdmin
}
