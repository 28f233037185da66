package identifiers

// AccountOwner is the owner of an account: either a user or an
// application. The set of implementations is closed; switch on the
// concrete type.
type AccountOwner interface {
	isAccountOwner()
	String() string
}

// UserAccount is an account held by a user.
type UserAccount struct {
	Owner Owner `yaml:"user"`
}

// ApplicationAccount is an account held by an application.
type ApplicationAccount struct {
	ApplicationID ApplicationID `yaml:"application"`
}

func (UserAccount) isAccountOwner()        {}
func (ApplicationAccount) isAccountOwner() {}

func (u UserAccount) String() string        { return "User:" + u.Owner.String() }
func (a ApplicationAccount) String() string { return "Application:" + a.ApplicationID.String() }
