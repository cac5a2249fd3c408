//go:build unit || e2e

package builder

import (
	domuser "tutorlink/internal/domain/user"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Name         string
	Role         domuser.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "learner@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Name:         "Test Learner",
		Role:         domuser.RoleLearner,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) AsTutor() *UserBuilder {
	b.Email = "tutor@example.com"
	b.Name = "Test Tutor"
	b.Role = domuser.RoleTutor
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, b.PasswordHash, b.Name, b.Role)
}
