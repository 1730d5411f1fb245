package server

import (
	"strconv"
	"strings"
	"time"

	"leavedesk/internal/middleware"
	"leavedesk/internal/models"
	"leavedesk/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	EmployeeCode string `json:"employee_code"`
	LocationID   *uint  `json:"location_id"`
	SupervisorID *uint  `json:"supervisor_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a user account with a role, location and optional supervisor
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.FirstName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("first_name"))
	}
	if req.LastName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("last_name"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if code := strings.TrimSpace(req.EmployeeCode); code != "" {
		if err := validation.ValidateEmployeeCode(code); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if req.Role == "" {
		role = models.RoleEmployee
	}
	if !role.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("role must be employee, supervisor or admin"))
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         role,
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		LocationID:   req.LocationID,
		SupervisorID: req.SupervisorID,
	}

	if user.RequiresLocation() && user.LocationID == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewMissingFieldError("location_id"))
	}
	if user.LocationID != nil {
		if _, err := s.locationRepo.GetByID(c.UserContext(), *user.LocationID); err != nil {
			return respondServiceError(c, err)
		}
	}
	if user.SupervisorID != nil {
		supervisor, err := s.userRepo.GetByID(c.UserContext(), *user.SupervisorID)
		if err != nil {
			return respondServiceError(c, err)
		}
		if supervisor.Role == models.RoleEmployee {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("supervisor_id must reference a supervisor or admin"))
		}
	}

	existing, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Email already registered"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}
	user.Password = string(hash)

	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID, "role", user.Role)

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{Token: token, User: user})
}

// Login handles user authentication
// @Summary Log in
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("email and password are required"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	// Same response for unknown email and wrong password.
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)

	return c.JSON(AuthResponse{Token: token, User: user})
}

// generateToken creates a signed JWT for a user with standard claims.
func (s *Server) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(user.ID), 10),
		"role": string(user.Role),
		"iss":  tokenIssuer,
		"aud":  tokenAudience,
		"exp":  now.Add(72 * time.Hour).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  generateJTI(),
	}
	if user.LocationID != nil {
		claims["location_id"] = *user.LocationID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func generateJTI() string {
	return uuid.NewString()
}
