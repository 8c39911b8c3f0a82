package role

import "ClinicDesk/util"

const (
	User  = "user"
	Admin = "admin"
)

// Valid reports whether name is a role an account may hold.
func Valid(name string) bool {
	return name == User || name == Admin
}

// LandingPage is where the client should go after login. Ordinary users
// stay where they are.
func LandingPage(name string) string {
	if name == Admin {
		return util.ADMIN_REDIRECT
	}
	return ""
}
