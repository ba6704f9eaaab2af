package entity

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

type User struct {
	Username     string
	PasswordHash string
	Name         string
	Role         UserRole
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
