package domain

// User is the transient display-session identity. It is never persisted;
// the display comes back up anonymous.
type User struct {
	IsAdmin bool   `json:"is_admin"`
	AdminID string `json:"admin_id,omitempty"`
}
