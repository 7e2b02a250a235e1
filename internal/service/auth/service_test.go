package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hashed)
}

func activeCompany() *domain.Company {
	return &domain.Company{
		ID:     "company-1",
		Code:   "ACME",
		Name:   "Acme Industries",
		Status: domain.CompanyStatusActive,
	}
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			if code == "ACME" {
				return activeCompany(), nil
			}
			return nil, nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return &domain.User{
				ID:        "user-1",
				CompanyID: companyID,
				Username:  username,
				Password:  hashOf(t, "secret"),
				Role:      domain.UserRoleOperator,
			}, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	access, refresh, err := service.Login(ctx, "ACME", "jdoe", "secret")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestLogin_UnknownCompany(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return nil, nil
		},
	}

	service := NewService(mockCompanies, &mocks.MockUserRepository{}, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	_, _, err := service.Login(ctx, "NOPE", "jdoe", "secret")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "invalid credentials" {
		t.Errorf("expected 'invalid credentials', got %q", err.Error())
	}
}

func TestLogin_SuspendedCompany(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return &domain.Company{ID: "company-1", Code: code, Status: domain.CompanyStatusSuspended}, nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			t.Fatal("user lookup must not happen for a suspended company")
			return nil, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	_, _, err := service.Login(ctx, "ACME", "jdoe", "secret")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "company suspended" {
		t.Errorf("expected 'company suspended', got %q", err.Error())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Password: hashOf(t, "secret")}, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	_, _, err := service.Login(ctx, "ACME", "jdoe", "wrong")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "invalid credentials" {
		t.Errorf("expected 'invalid credentials', got %q", err.Error())
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()

	storedUser := &domain.User{
		ID:        "user-1",
		CompanyID: "company-1",
		Username:  "jdoe",
		Password:  hashOf(t, "secret"),
		Role:      domain.UserRoleOperator,
	}

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return storedUser, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == storedUser.ID {
				return storedUser, nil
			}
			return nil, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	access, _, err := service.Login(ctx, "ACME", "jdoe", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Act
	user, err := service.ValidateToken(ctx, access)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "user-1" || user.CompanyID != "company-1" {
		t.Errorf("expected resolved user user-1/company-1, got %s/%s", user.ID, user.CompanyID)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	// Arrange
	ctx := context.Background()

	service := NewService(&mocks.MockCompanyRepository{}, &mocks.MockUserRepository{}, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	_, err := service.ValidateToken(ctx, "not-a-jwt")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Password: hashOf(t, "secret")}, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	access, _, err := service.Login(ctx, "ACME", "jdoe", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Act
	_, err = service.RefreshToken(ctx, access)

	// Assert
	if err == nil {
		t.Fatal("expected access token to be rejected as refresh token")
	}
}

func TestRefreshToken_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()

	storedUser := &domain.User{ID: "user-1", CompanyID: "company-1", Password: hashOf(t, "secret")}

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return storedUser, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return storedUser, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	_, refresh, err := service.Login(ctx, "ACME", "jdoe", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Act
	access, err := service.RefreshToken(ctx, refresh)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if access == "" {
		t.Error("expected a new access token")
	}
}

func TestRegister_DefaultsRoleAndHashesPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var saved *domain.User
	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, user *domain.User) error {
			saved = user
			return nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	err := service.Register(ctx, "ACME", &domain.User{Username: "jdoe", Password: "secret"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected user to be saved")
	}
	if saved.Role != domain.UserRoleOperator {
		t.Errorf("expected default role operator, got %s", saved.Role)
	}
	if saved.CompanyID != "company-1" {
		t.Errorf("expected user bound to company-1, got %s", saved.CompanyID)
	}
	if saved.Password == "secret" {
		t.Error("expected password to be hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret")) != nil {
		t.Error("expected stored hash to verify against original password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockCompanies := &mocks.MockCompanyRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*domain.Company, error) {
			return activeCompany(), nil
		},
	}
	mockUsers := &mocks.MockUserRepository{
		FindByCompanyAndUsernameFunc: func(ctx context.Context, companyID, username string) (*domain.User, error) {
			return &domain.User{ID: "existing"}, nil
		},
	}

	service := NewService(mockCompanies, mockUsers, mocks.NewMockCache(), "test-secret", newTestLogger())

	// Act
	err := service.Register(ctx, "ACME", &domain.User{Username: "jdoe", Password: "secret"})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "username already registered" {
		t.Errorf("expected 'username already registered', got %q", err.Error())
	}
}
