package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/errs"
	"github.com/deppfellow/go-adverts/internal/model"
	"github.com/deppfellow/go-adverts/internal/repository"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/deppfellow/go-adverts/internal/sqlerr"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	server *server.Server
	repo   *repository.UserRepository

	// hashCost is the bcrypt work factor.
	hashCost int
}

func NewUserService(s *server.Server, repo *repository.UserRepository) *UserService {
	return &UserService{
		server:   s,
		repo:     repo,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) GetUser(ctx context.Context, sess *database.Session, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, sess, id)
}

// passwordDigest reduces a password of any length to 44 bytes, inside the
// 72-byte input limit of bcrypt.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	digest := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(digest, sum[:])
	return digest
}

// CreateUser hashes the password and stores the user. A taken name is a
// 409 "User already exists".
func (s *UserService) CreateUser(ctx context.Context, sess *database.Session, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    &email,
		Password: string(hash),
	}

	if err := s.repo.Create(ctx, sess, user); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, errs.NewConflictError("User already exists", nil)
		}
		return nil, err
	}

	s.server.Logger.Info().
		Int64("user_id", user.ID).
		Msg("user created")

	return user, nil
}
