package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-demo/internal/domain"
	"go.uber.org/zap"
)

// AccountService управляет клиентами и администраторами
type AccountService struct {
	userRepo domain.UserRepository
	rt       Runtime
	logger   *zap.Logger
}

// NewAccountService создает новый AccountService
func NewAccountService(userRepo domain.UserRepository, rt Runtime, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		userRepo: userRepo,
		rt:       rt,
		logger:   logger,
	}
}

// RegisterClient регистрирует клиента
func (s *AccountService) RegisterClient(ctx context.Context, profile domain.Profile) (*domain.User, error) {
	return s.register(ctx, domain.NewClient(profile))
}

// RegisterAdmin регистрирует администратора
func (s *AccountService) RegisterAdmin(ctx context.Context, profile domain.Profile) (*domain.User, error) {
	return s.register(ctx, domain.NewAdmin(profile))
}

func (s *AccountService) register(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := s.userRepo.CreateUser(ctx, user)
	s.rt.Observer.record("user", "register", err)
	if err != nil {
		return nil, wrapErr("account", fmt.Sprintf("register user %d", user.ID), err)
	}

	user.Register(s.rt.sink())
	s.logger.Debug("User registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	s.rt.Observer.publish(ctx, domain.EventUserRegistered, user.ID, map[string]any{
		"name": user.Name,
		"role": string(user.Role),
	})

	return user, nil
}

// Login отмечает вход пользователя
func (s *AccountService) Login(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetUser(ctx, userID)
	s.rt.Observer.record("user", "login", err)
	if err != nil {
		return wrapErr("account", fmt.Sprintf("login user %d", userID), err)
	}

	user.Login(s.rt.sink())
	return nil
}

// UpdateProfile заменяет контактные данные пользователя
func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, profile domain.Profile) (*domain.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		s.rt.Observer.record("user", "update", err)
		return nil, wrapErr("account", fmt.Sprintf("get user %d", userID), err)
	}

	user.UpdateData(profile, s.rt.sink())
	err = s.userRepo.UpdateUser(ctx, user)
	s.rt.Observer.record("user", "update", err)
	if err != nil {
		return nil, wrapErr("account", fmt.Sprintf("update user %d", userID), err)
	}

	return user, nil
}

// AwardLoyaltyPoints начисляет баллы клиенту
func (s *AccountService) AwardLoyaltyPoints(ctx context.Context, userID, points int64) (int64, error) {
	if err := s.rt.guard().CheckLoyaltyAward(points); err != nil {
		s.rt.Observer.record("user", "award_points", err)
		return 0, err
	}

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		s.rt.Observer.record("user", "award_points", err)
		return 0, wrapErr("account", fmt.Sprintf("get user %d", userID), err)
	}

	if err := user.AddLoyaltyPoints(points); err != nil {
		s.rt.Observer.record("user", "award_points", err)
		return 0, err
	}

	err = s.userRepo.UpdateUser(ctx, user)
	s.rt.Observer.record("user", "award_points", err)
	if err != nil {
		return 0, wrapErr("account", fmt.Sprintf("award points to user %d", userID), err)
	}

	return user.LoyaltyPoints, nil
}

// LogAdminAction пишет действие в журнал администратора
func (s *AccountService) LogAdminAction(ctx context.Context, userID int64, action string) error {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		s.rt.Observer.record("user", "log_action", err)
		return wrapErr("account", fmt.Sprintf("get user %d", userID), err)
	}

	err = user.LogAction(action, s.rt.sink())
	s.rt.Observer.record("user", "log_action", err)
	return err
}

// GetUser возвращает пользователя по идентификатору
func (s *AccountService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, wrapErr("account", fmt.Sprintf("get user %d", userID), err)
	}
	return user, nil
}
