package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/email"
	"github.com/speakwise/speakwise-api/pkg/oauth"
	"github.com/speakwise/speakwise-api/pkg/otp"
	"github.com/speakwise/speakwise-api/pkg/sms"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo          repository.UserRepository
	roleRepo          repository.RoleRepository
	passwordResetRepo repository.PasswordResetTokenRepository
	jwtManager        *utils.JWTManager
	emailService      *email.EmailService
	smsService        *sms.SMSService
	otpManager        *otp.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	passwordResetRepo repository.PasswordResetTokenRepository,
	jwtManager *utils.JWTManager,
	emailService *email.EmailService,
	smsService *sms.SMSService,
	otpManager *otp.Manager,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		roleRepo:          roleRepo,
		passwordResetRepo: passwordResetRepo,
		jwtManager:        jwtManager,
		emailService:      emailService,
		smsService:        smsService,
		otpManager:        otpManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.Password == "" || !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// issueTokens loads the user with roles and generates a token pair
func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID) (*LoginOutput, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	roles := make([]string, 0)
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}
	permissions := user.GetPermissions()

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, roles, permissions)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	if input.Phone != nil {
		existingUser, err = s.userRepo.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, apperror.NewConflictError("Phone number already registered")
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  hashedPassword,
		Provider:  "local",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.assignDefaultRole(ctx, user.ID)

	return user, nil
}

// assignDefaultRole attaches the "user" role; registration still succeeds
// if the role is missing
func (s *AuthService) assignDefaultRole(ctx context.Context, userID uuid.UUID) {
	defaultRole, err := s.roleRepo.GetByName(ctx, "user")
	if err != nil || defaultRole == nil {
		return
	}
	_ = s.userRepo.AssignRole(ctx, userID, defaultRole.ID)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(ctx, userID)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// RequestOTP issues a one-time login code for a phone number and hands it to
// the SMS gateway for delivery. The code never appears in the API response;
// without a configured gateway it goes to the server log (development sink).
func (s *AuthService) RequestOTP(ctx context.Context, phone string) error {
	code, err := s.otpManager.Issue(ctx, phone)
	if err != nil {
		return err
	}
	return s.smsService.SendOTP(phone, code)
}

// VerifyOTPInput represents the OTP verification input
type VerifyOTPInput struct {
	Phone string
	Code  string
	Name  string
}

// VerifyOTP checks a one-time code and logs the user in, creating an account
// on first verification
func (s *AuthService) VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*LoginOutput, error) {
	if err := s.otpManager.Verify(ctx, input.Phone, input.Code); err != nil {
		if errors.Is(err, otp.ErrCodeExpired) || errors.Is(err, otp.ErrTooManyAttempts) {
			return nil, apperror.ErrInvalidOTP
		}
		return nil, err
	}

	user, err := s.userRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}

	if user == nil {
		name := input.Name
		if name == "" {
			name = "Learner"
		}
		now := time.Now()
		phone := input.Phone
		user = &entity.User{
			FirstName:       name,
			Email:           phone + "@phone.speakwise.in",
			Phone:           &phone,
			Provider:        "phone",
			PhoneVerifiedAt: &now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.assignDefaultRole(ctx, user.ID)
	} else if user.PhoneVerifiedAt == nil {
		now := time.Now()
		user.PhoneVerifiedAt = &now
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(ctx, user.ID)
}

// HandleGoogleUser finds or creates the account for a Google profile and
// logs it in
func (s *AuthService) HandleGoogleUser(ctx context.Context, info *oauth.GoogleUserInfo) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		now := time.Now()
		providerID := info.ID
		firstName := info.GivenName
		if firstName == "" {
			firstName = info.Name
		}
		user = &entity.User{
			FirstName:       firstName,
			LastName:        info.FamilyName,
			Email:           info.Email,
			Provider:        "google",
			ProviderID:      &providerID,
			EmailVerifiedAt: &now,
		}
		if info.Picture != "" {
			picture := info.Picture
			user.Avatar = &picture
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.assignDefaultRole(ctx, user.ID)
	} else if user.ProviderID == nil {
		// Link the Google identity to an existing email account
		providerID := info.ID
		user.ProviderID = &providerID
		if user.EmailVerifiedAt == nil {
			now := time.Now()
			user.EmailVerifiedAt = &now
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(ctx, user.ID)
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if user.Password == "" || !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Avatar    *string
}

// UpdateProfile updates the user's profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ForgotPasswordInput represents the forgot password input
type ForgotPasswordInput struct {
	Email string
}

// ForgotPassword initiates the password reset process
func (s *AuthService) ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error {
	// Check if user exists (but don't reveal this to the caller)
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		// Don't return the error to prevent email enumeration
		return nil
	}
	if user == nil {
		// User doesn't exist, but return nil to prevent email enumeration
		return nil
	}

	// Delete any existing tokens for this email
	_ = s.passwordResetRepo.DeleteByEmail(ctx, input.Email)

	// Generate a secure random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return err
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := &entity.PasswordResetToken{
		Email:     input.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		Used:      false,
	}

	if err := s.passwordResetRepo.Create(ctx, resetToken); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(input.Email, token); err != nil {
		return err
	}

	return nil
}

// ResetPasswordInput represents the reset password input
type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// ResetPassword resets the user's password using a valid token
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	resetToken, err := s.passwordResetRepo.GetByToken(ctx, input.Token)
	if err != nil {
		return err
	}
	if resetToken == nil {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	if resetToken.Email != input.Email {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	if !resetToken.IsValid() {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewBadRequestError("Invalid or expired reset token")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.passwordResetRepo.MarkAsUsed(ctx, input.Token); err != nil {
		// Password was already changed; do not fail the request
		return nil
	}

	_ = s.passwordResetRepo.DeleteByEmail(ctx, input.Email)

	return nil
}
