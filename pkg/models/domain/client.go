package domain

// Client is an organization whose posture is tracked. Profiles come from the
// client registry file, not from the entity stores.
type Client struct {
	ID        int
	Name      string
	Framework string
}
