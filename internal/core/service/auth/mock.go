package auth

import (
	"time"

	"upload-relay/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) ValidateCredentials(email, password string) *domain.Identity {
	args := m.Called(email, password)
	return args.Get(0).(*domain.Identity)
}

func (m *MockAuthService) IssueSession(identity domain.Identity) (string, time.Time, error) {
	args := m.Called(identity)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) ResolveSession(token string) (*domain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(*domain.Identity), args.Error(1)
}
