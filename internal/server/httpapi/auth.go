package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Yashraj9595/mealmate/internal/common"
	"github.com/Yashraj9595/mealmate/internal/server/models"
	"github.com/Yashraj9595/mealmate/internal/server/services"
)

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrorValidation)
	}
	return nil
}

// userWithMess attaches owned-mess details for mess-owner accounts.
func (s *Server) userWithMess(r *http.Request, user *models.User) userDTO {
	if user.Role != models.RoleMessOwner {
		return toUserDTO(user, nil)
	}
	mess, err := s.messes.OwnedMess(r.Context(), user.ID)
	if err != nil {
		return toUserDTO(user, nil)
	}
	return toUserDTO(user, mess)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Address  string `json:"address"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := s.users.Register(r.Context(), services.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		Address:  in.Address,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondAuth(w, token, s.userWithMess(r, user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := s.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondAuth(w, token, s.userWithMess(r, user))
}

func (s *Server) createAdmin(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	user, err := s.users.CreateAdmin(r.Context(), services.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, map[string]any{"user": toUserDTO(user, nil)})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forgotPasswordRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}
	if in.Email == "" {
		respondError(w, fmt.Errorf("%w: email is required", common.ErrorValidation))
		return
	}
	if !s.forgotLimiter.Allow(in.Email) {
		respondError(w, common.ErrTooManyCodes)
		return
	}

	if err := s.users.ForgotPassword(r.Context(), in.Email); err != nil {
		s.log.Error(r.Context(), "forgot password failed", "error", err)
		respondError(w, common.ErrorInternal)
		return
	}

	respondMessage(w, "if the email is registered, a code has been sent")
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var in verifyOTPRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	if err := s.users.VerifyOTP(r.Context(), in.Email, in.OTP); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "code verified")
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	if err := s.users.ResetPassword(r.Context(), in.Email, in.OTP, in.Password); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, "password updated")
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	user, err := s.users.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, s.userWithMess(r, user))
}

type updateProfileRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var in updateProfileRequest
	if err := decodeBody(r, &in); err != nil {
		respondError(w, err)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), claims.UserID, in.Name, in.Address)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, s.userWithMess(r, user))
}
