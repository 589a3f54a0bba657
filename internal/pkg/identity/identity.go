package identity

// User is the identity of the portal's current user. There is no
// authentication layer; the identity is fixed at startup from configuration
// and treated as opaque by the rest of the application.
type User struct {
	ID   string
	Name string
}

// Provider supplies the current user identity to the application.
type Provider interface {
	CurrentUser() User
}

// StaticProvider returns the same user for every call.
type StaticProvider struct {
	user User
}

// NewStaticProvider creates a provider pinned to the given user.
func NewStaticProvider(id, name string) *StaticProvider {
	return &StaticProvider{user: User{ID: id, Name: name}}
}

// CurrentUser returns the configured identity.
func (p *StaticProvider) CurrentUser() User {
	return p.user
}
