package dto

// LoginInput 은 POST /auth/login 요청 본문이다. 값은 다듬지 않고 그대로 비교한다.
type LoginInput struct {
	LoginOrEmail string `json:"loginOrEmail" validate:"required,notblank" msg:"loginOrEmail is required"`
	Password     string `json:"password" validate:"required,notblank" msg:"password is required"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"accessToken"`
}

type MeDTO struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
	Email  string `json:"email"`
}

// RegistrationConfirmationInput 은 POST /auth/registration-confirmation 요청 본문이다.
type RegistrationConfirmationInput struct {
	Code string `json:"code" validate:"required,notblank" msg:"code is required"`
}
