package entity

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// User is the demo account record. Fields are only reachable through the
// accessors below; the zero value is a valid, empty user.
type User struct {
	id       int64
	username string
	email    string
	age      int
}

// New returns a user with every field populated.
func New(id int64, username, email string, age int) *User {
	return &User{id: id, username: username, email: email, age: age}
}

func (u *User) ID() int64        { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Email() string    { return u.email }
func (u *User) Age() int         { return u.age }

func (u *User) SetID(id int64)              { u.id = id }
func (u *User) SetUsername(username string) { u.username = username }
func (u *User) SetEmail(email string)       { u.email = email }
func (u *User) SetAge(age int)              { u.age = age }

// String renders the user as
// User(id=1, username=test, email=test@example.com, age=25).
// Values are written verbatim, in declaration order.
func (u *User) String() string {
	return fmt.Sprintf("User(id=%d, username=%s, email=%s, age=%d)", u.id, u.username, u.email, u.age)
}

// Equal reports whether both users hold the same field values.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return *u == *other
}

// userJSON is the wire shape used by MarshalJSON.
type userJSON struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{ID: u.id, Username: u.username, Email: u.email, Age: u.age})
}

// MarshalLogObject lets the user be passed directly as a zap field.
func (u *User) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("id", u.id)
	enc.AddString("username", u.username)
	enc.AddString("email", u.email)
	enc.AddInt("age", u.age)
	return nil
}
