package core

// User is a participant bound to a live connection, either the owner of a
// room or a player inside one. Owners never carry a character.
type User struct {
	Name      string
	IsOwner   bool
	Character *Character
	client    *Client
}

// NewOwner builds the owner identity for a room bound to the given client.
func NewOwner(name string, client *Client) *User {
	return &User{Name: name, IsOwner: true, client: client}
}

// NewPlayer builds a player identity bound to the given client. character
// may be nil.
func NewPlayer(name string, client *Client, character *Character) *User {
	return &User{Name: name, Character: character, client: client}
}

// Client returns the connection the user is bound to.
func (u *User) Client() *Client {
	return u.client
}

// UserView is the wire projection of a user.
type UserView struct {
	Name      string         `json:"name"`
	IsOwner   bool           `json:"isOwner"`
	Character *CharacterView `json:"character,omitempty"`
}

// View returns the serializable projection of the user.
func (u *User) View() UserView {
	v := UserView{Name: u.Name, IsOwner: u.IsOwner}
	if u.Character != nil {
		cv := u.Character.View()
		v.Character = &cv
	}
	return v
}
