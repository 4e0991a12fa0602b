package domain

// Caller is the per-request classification produced once by the auth
// middleware. The zero value is an anonymous caller.
type Caller struct {
	subject    string
	isAdmin    bool
	identified bool
}

// Anonymous returns a caller with no verified identity.
func Anonymous() Caller { return Caller{} }

// Identified returns a caller backed by a verified token.
func Identified(subject string, isAdmin bool) Caller {
	return Caller{subject: subject, isAdmin: isAdmin, identified: true}
}

// IsIdentified reports whether the caller presented a valid token.
func (c Caller) IsIdentified() bool { return c.identified }

// Subject returns the verified username, or "" for anonymous callers.
func (c Caller) Subject() string { return c.subject }

// IsAdmin reports whether the caller is an identified administrator.
func (c Caller) IsAdmin() bool { return c.identified && c.isAdmin }

func (c Caller) String() string {
	switch {
	case !c.identified:
		return "anonymous"
	case c.isAdmin:
		return c.subject + " (admin)"
	default:
		return c.subject
	}
}
