package request

type RegisterRequest struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=4"`
	Name     string `validate:"required"`
	Role     string `validate:"required,oneof=admin customer"`
}

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=admin customer"`
}
