package app

import (
	"fmt"
	"sync"

	userRepository "github.com/studybuddy/certtracker/internal/user/repository"
	userUsecase "github.com/studybuddy/certtracker/internal/user/usecase"
)

// userComponents groups the user-module dependencies inside the container.
type userComponents struct {
	repo    userUsecase.UserRepository
	useCase userUsecase.UseCase

	repoInit    sync.Once
	useCaseInit sync.Once
}

// UserRepository returns the user repository matching the configured driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.user.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.user.repo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.user.repo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.user.repo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.user.useCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get tx manager for user use case: %w", err)
			return
		}

		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		passwordHasher, err := c.PasswordHasher()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get password hasher for user use case: %w", err)
			return
		}

		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get token service for user use case: %w", err)
			return
		}

		authMetrics, err := c.AuthMetrics()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get auth metrics for user use case: %w", err)
			return
		}

		c.user.useCase = userUsecase.NewUserUseCase(txManager, userRepo, passwordHasher, tokenService, authMetrics)
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.user.useCase, nil
}
