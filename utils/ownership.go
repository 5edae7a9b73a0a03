package utils

// UserOwnsMapping reports whether the first creator of mapping is user, identified by the
// user URI or any of the user's identity URIs.
func UserOwnsMapping(user *User, mapping *Mapping) bool {
	if user == nil || mapping == nil || len(mapping.Creator) == 0 {
		return false
	}
	creator := mapping.Creator[0].URI
	if creator == "" {
		return false
	}
	if creator == user.URI {
		return true
	}
	for _, identity := range user.Identities {
		if identity.URI == creator {
			return true
		}
	}
	return false
}
