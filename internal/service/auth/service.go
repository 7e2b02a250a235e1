package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

const userCacheTTL = 5 * time.Minute

type Service struct {
	companyRepo ports.CompanyRepository
	userRepo    ports.UserRepository
	cache       ports.Cache
	jwtSecret   []byte
	log         *zap.Logger
}

func NewService(companyRepo ports.CompanyRepository, userRepo ports.UserRepository, cache ports.Cache, jwtSecret string, log *zap.Logger) ports.AuthService {
	return &Service{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		cache:       cache,
		jwtSecret:   []byte(jwtSecret),
		log:         log,
	}
}

func (s *Service) Login(ctx context.Context, companyCode, username, password string) (string, string, error) {
	company, err := s.companyRepo.FindByCode(ctx, companyCode)
	if err != nil {
		return "", "", err
	}
	if company == nil {
		return "", "", errors.New("invalid credentials")
	}
	if company.Status != domain.CompanyStatusActive {
		return "", "", errors.New("company suspended")
	}

	user, err := s.userRepo.FindByCompanyAndUsername(ctx, company.ID, username)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", errors.New("invalid credentials")
	}

	return s.generateTokens(user)
}

func (s *Service) Register(ctx context.Context, companyCode string, user *domain.User) error {
	company, err := s.companyRepo.FindByCode(ctx, companyCode)
	if err != nil {
		return err
	}
	if company == nil {
		return errors.New("company not found")
	}
	if company.Status != domain.CompanyStatusActive {
		return errors.New("company suspended")
	}

	existing, err := s.userRepo.FindByCompanyAndUsername(ctx, company.ID, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already registered")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.ID = uuid.New().String()
	user.CompanyID = company.ID
	user.Password = string(hashedPwd)
	if user.Role == "" {
		user.Role = domain.UserRoleOperator
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	return s.userRepo.Save(ctx, user)
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if t, _ := claims["type"].(string); t != "refresh" {
		return "", errors.New("invalid refresh token")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid user id in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return "", errors.New("user not found")
	}

	return s.generateAccessToken(user)
}

func (s *Service) ValidateToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid sub")
	}

	return s.lookupUser(ctx, userID)
}

// lookupUser resolves a user by id through the cache, falling back to the
// repository on a miss.
func (s *Service) lookupUser(ctx context.Context, userID string) (*domain.User, error) {
	cacheKey := "user:" + userID
	if raw, err := s.cache.Get(ctx, cacheKey); err == nil && raw != "" {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			return &user, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if raw, err := json.Marshal(user); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(raw), userCacheTTL); err != nil {
			s.log.Debug("Failed to cache user", zap.Error(err))
		}
	}

	return user, nil
}

func (s *Service) generateTokens(user *domain.User) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"type": "refresh",
	})
	refreshTokenStr, err := refreshToken.SignedString(s.jwtSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshTokenStr, nil
}

func (s *Service) generateAccessToken(user *domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        user.ID,
		"company_id": user.CompanyID,
		"role":       user.Role,
		"exp":        time.Now().Add(15 * time.Minute).Unix(),
		"type":       "access",
	})
	return token.SignedString(s.jwtSecret)
}
