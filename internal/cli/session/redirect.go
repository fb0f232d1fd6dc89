package session

// RedirectTarget is the resolved destination after a successful login
type RedirectTarget string

// Default post-login destinations on the web frontend, by role
const (
	AdminHome RedirectTarget = "/admin-dashboard.html"
	UserHome  RedirectTarget = "/user-dashboard.html"
)

// ResolveRedirect picks the post-login destination. An explicit caller
// -supplied URL always wins; otherwise admins land on the admin dashboard
// and everyone else on the user dashboard.
func ResolveRedirect(sess Session, explicitURL string) RedirectTarget {
	if explicitURL != "" {
		return RedirectTarget(explicitURL)
	}
	if sess.Identity != nil && sess.Identity.Role == RoleAdmin {
		return AdminHome
	}
	return UserHome
}
