package domain

// User represents a registered account. The store assigns ID on insert;
// Friends is the embedded, denormalized friend list stored with the record.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	IsAdmin      bool        `json:"admin"`
	FirstName    string      `json:"firstName,omitempty"`
	LastName     string      `json:"lastName,omitempty"`
	DateOfBirth  string      `json:"dob,omitempty"`
	Friends      []FriendRef `json:"friends"`
}

// FriendRef is a denormalized snapshot of another user embedded in a
// User's friend list. It is not a foreign key; display fields are copied
// at the time the edge is created.
type FriendRef struct {
	FriendID  string `json:"friendId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// PublicProfile is the reduced shape returned for single-user lookups.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Profile returns the public view of a user.
func (u *User) Profile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Ref returns the FriendRef snapshot other users embed for this user.
func (u *User) Ref() FriendRef {
	return FriendRef{
		FriendID:  u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// HasFriend reports whether the user's list already contains an edge to
// friendID. Used for set-semantics pushes so retries converge.
func (u *User) HasFriend(friendID string) bool {
	for _, ref := range u.Friends {
		if ref.FriendID == friendID {
			return true
		}
	}
	return false
}
