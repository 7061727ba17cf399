package auth

import "github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	TokenType            string `json:"token_type"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
