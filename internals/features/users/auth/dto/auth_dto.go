// file: internals/features/users/auth/dto/auth_dto.go
package dto

type LoginRequest struct {
	Role     string `json:"role" validate:"required,oneof=admin tentor siswa mitra"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	Role        string      `json:"role"`
	Account     interface{} `json:"account"`
}
