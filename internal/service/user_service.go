package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetAll(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, userID, role string) (*models.User, error)
	ApplyAction(ctx context.Context, userID, accion string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	// email нормализуем к нижнему регистру - уникальность без учета регистра
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь с email %s уже существует", email)
	}

	user := &models.User{
		Name:   req.Name,
		Email:  email,
		Role:   models.RoleReader,
		Status: models.UserStatusActive,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("неверный email или пароль")
	}

	// заблокированный или удаленный аккаунт не пускаем даже с верным паролем
	if user.Status == models.UserStatusBanned {
		return nil, "", fmt.Errorf("аккаунт заблокирован, обратитесь в поддержку")
	}

	if user.Status == models.UserStatusDeleted {
		return nil, "", fmt.Errorf("аккаунт с этим email был удален")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, "", fmt.Errorf("неверный email или пароль")
	}

	now := time.Now()
	user.LastLoginAt = &now

	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	// токен - base64 от "id:millis", без подписи и срока действия.
	// Известная слабость, сознательно не заменяем на подписанный токен.
	payload := user.ID + ":" + strconv.FormatInt(now.UnixMilli(), 10)
	token := base64.StdEncoding.EncodeToString([]byte(payload))

	return user, token, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, userID, role string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// безусловная перезапись роли
	user.Role = role

	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ApplyAction(ctx context.Context, userID, accion string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// любое действие применимо из любого статуса, графа переходов нет
	switch strings.ToUpper(accion) {
	case models.UserActionBan:
		user.Status = models.UserStatusBanned
	case models.UserActionUnban:
		user.Status = models.UserStatusActive
	case models.UserActionDelete:
		user.Status = models.UserStatusDeleted
	default:
		return nil, fmt.Errorf("неподдерживаемое действие: %s", accion)
	}

	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
