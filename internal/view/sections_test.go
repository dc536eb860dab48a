package view

import "testing"

func TestLookupKnownKeys(t *testing.T) {
	cases := map[string]Section{
		"home":            Home,
		"phones":          Phones,
		"order-phone":     OrderPhone,
		"add-phone":       AddPhone,
		"profile":         Profile,
		"admin-dashboard": AdminDashboard,
		"admin-orders":    AdminOrders,
		"admin-reports":   AdminReports,
		"login":           Login,
		"register":        Register,
	}
	for key, want := range cases {
		if got := Lookup(key); got != want {
			t.Fatalf("Lookup(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestLookupUnknownKeyFallsBackToHome(t *testing.T) {
	for _, key := range []string{"", "reports", "nope"} {
		if got := Lookup(key); got != Home {
			t.Fatalf("Lookup(%q) = %v, want Home", key, got)
		}
	}
}

func TestNavHidesAdminSectionsFromNonAdmins(t *testing.T) {
	for _, item := range Nav(false) {
		if item.AdminOnly {
			t.Fatalf("non-admin nav leaked %q", item.Key)
		}
	}

	var adminEntries int
	for _, item := range Nav(true) {
		if item.AdminOnly {
			adminEntries++
		}
	}
	if adminEntries == 0 {
		t.Fatal("admin nav must include admin sections")
	}
}

func TestVisibleGatesAdminSections(t *testing.T) {
	if Visible(AdminOrders, false) {
		t.Fatal("admin-orders must be hidden from non-admins")
	}
	if !Visible(AdminOrders, true) {
		t.Fatal("admin-orders must be visible to admins")
	}
	if !Visible(Profile, false) {
		t.Fatal("profile is reachable for everyone")
	}
}

func TestEverySectionHasTemplate(t *testing.T) {
	for section, spec := range table {
		if spec.Template == "" || spec.Key == "" {
			t.Fatalf("section %v missing template or key", section)
		}
	}
}
