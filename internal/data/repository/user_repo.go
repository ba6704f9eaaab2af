package repository

import (
	"fmt"
	"strings"

	"airline-reservation/internal/data/entity"
	"airline-reservation/pkg/database"

	"go.uber.org/zap"
)

const usersFile = "users.txt"

type UserRepository interface {
	All() []*entity.User
	Customers() []*entity.User
	FindByUsername(username string) (*entity.User, bool)
	Create(user *entity.User) error
	Delete(username string) error
}

type userRepository struct {
	store database.Store
	log   *zap.Logger
	users []*entity.User
}

func NewUserRepository(store database.Store, log *zap.Logger) UserRepository {
	r := &userRepository{
		store: store,
		log:   log.With(zap.String("repository", "user")),
	}
	r.load()
	return r
}

func (r *userRepository) load() {
	data, err := r.store.Load(usersFile)
	if err != nil {
		r.log.Warn("Failed to load users, starting empty", zap.Error(err))
		return
	}

	for _, line := range strings.Split(data, "\n") {
		tokens := strings.Split(line, ",")
		if len(tokens) < 4 {
			continue
		}

		role := entity.RoleCustomer
		if tokens[3] == string(entity.RoleAdmin) {
			role = entity.RoleAdmin
		}

		r.users = append(r.users, &entity.User{
			Username:     tokens[0],
			PasswordHash: tokens[1],
			Name:         tokens[2],
			Role:         role,
		})
	}
}

func (r *userRepository) All() []*entity.User {
	return r.users
}

func (r *userRepository) Customers() []*entity.User {
	var out []*entity.User
	for _, u := range r.users {
		if !u.IsAdmin() {
			out = append(out, u)
		}
	}
	return out
}

func (r *userRepository) FindByUsername(username string) (*entity.User, bool) {
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

func (r *userRepository) Create(user *entity.User) error {
	if _, exists := r.FindByUsername(user.Username); exists {
		return fmt.Errorf("%w: username %s already exists", entity.ErrValidation, user.Username)
	}

	if err := r.store.Append(usersFile, encodeUser(user)); err != nil {
		r.log.Error("Failed to persist user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("persist user: %w", err)
	}

	r.users = append(r.users, user)
	return nil
}

func (r *userRepository) Delete(username string) error {
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return r.saveAll()
		}
	}
	return fmt.Errorf("%w: user %s not found", entity.ErrValidation, username)
}

func (r *userRepository) saveAll() error {
	var b strings.Builder
	for _, u := range r.users {
		b.WriteString(encodeUser(u))
		b.WriteString("\n")
	}

	if err := r.store.Overwrite(usersFile, b.String()); err != nil {
		r.log.Error("Failed to save users", zap.Error(err))
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func encodeUser(u *entity.User) string {
	return strings.Join([]string{u.Username, u.PasswordHash, u.Name, string(u.Role)}, ",")
}
