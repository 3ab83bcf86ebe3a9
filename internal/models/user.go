package models

// UserType distinguishes the two client kinds the fee schedule branches on.
type UserType string

const (
	UserTypeNatural UserType = "natural"
	UserTypeLegal   UserType = "legal"
)

// User is a fee-schedule client. Users are created once during ingestion
// and shared by reference across all of their operations.
type User struct {
	ID   int
	Type UserType
}

func (u *User) IsNatural() bool { return u.Type == UserTypeNatural }

func (u *User) IsLegal() bool { return u.Type == UserTypeLegal }
