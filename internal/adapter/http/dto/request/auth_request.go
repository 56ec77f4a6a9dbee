package request

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginAsRequest is the quick per-role login used for internal testing.
type LoginAsRequest struct {
	Role string `json:"role" binding:"required"`
}
