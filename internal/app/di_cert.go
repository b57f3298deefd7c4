package app

import (
	"fmt"
	"sync"

	certRepository "github.com/studybuddy/certtracker/internal/cert/repository"
	certUsecase "github.com/studybuddy/certtracker/internal/cert/usecase"
)

// certComponents groups the certification-module dependencies inside the container.
type certComponents struct {
	certRepo        certUsecase.CertificationRepository
	userCertRepo    certUsecase.UserCertRepository
	certUseCase     certUsecase.CertificationUseCase
	userCertUseCase certUsecase.UserCertUseCase

	certRepoInit        sync.Once
	userCertRepoInit    sync.Once
	certUseCaseInit     sync.Once
	userCertUseCaseInit sync.Once
}

// CertificationRepository returns the catalog repository matching the configured driver.
func (c *Container) CertificationRepository() (certUsecase.CertificationRepository, error) {
	c.cert.certRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["certRepo"] = fmt.Errorf("failed to get database for certification repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.cert.certRepo = certRepository.NewMySQLCertificationRepository(db)
		case "postgres":
			c.cert.certRepo = certRepository.NewPostgreSQLCertificationRepository(db)
		default:
			c.initErrors["certRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["certRepo"]; exists {
		return nil, storedErr
	}
	return c.cert.certRepo, nil
}

// UserCertRepository returns the tracked-certification repository matching the configured driver.
func (c *Container) UserCertRepository() (certUsecase.UserCertRepository, error) {
	c.cert.userCertRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userCertRepo"] = fmt.Errorf("failed to get database for user cert repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.cert.userCertRepo = certRepository.NewMySQLUserCertRepository(db)
		case "postgres":
			c.cert.userCertRepo = certRepository.NewPostgreSQLUserCertRepository(db)
		default:
			c.initErrors["userCertRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userCertRepo"]; exists {
		return nil, storedErr
	}
	return c.cert.userCertRepo, nil
}

// CertificationUseCase returns the catalog use case instance.
func (c *Container) CertificationUseCase() (certUsecase.CertificationUseCase, error) {
	c.cert.certUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["certUseCase"] = fmt.Errorf("failed to get tx manager for certification use case: %w", err)
			return
		}

		certRepo, err := c.CertificationRepository()
		if err != nil {
			c.initErrors["certUseCase"] = fmt.Errorf("failed to get repository for certification use case: %w", err)
			return
		}

		c.cert.certUseCase = certUsecase.NewCertificationUseCase(txManager, certRepo)
	})
	if storedErr, exists := c.initErrors["certUseCase"]; exists {
		return nil, storedErr
	}
	return c.cert.certUseCase, nil
}

// UserCertUseCase returns the tracked-certification use case instance.
func (c *Container) UserCertUseCase() (certUsecase.UserCertUseCase, error) {
	c.cert.userCertUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["userCertUseCase"] = fmt.Errorf("failed to get tx manager for user cert use case: %w", err)
			return
		}

		userCertRepo, err := c.UserCertRepository()
		if err != nil {
			c.initErrors["userCertUseCase"] = fmt.Errorf("failed to get repository for user cert use case: %w", err)
			return
		}

		c.cert.userCertUseCase = certUsecase.NewUserCertUseCase(txManager, userCertRepo)
	})
	if storedErr, exists := c.initErrors["userCertUseCase"]; exists {
		return nil, storedErr
	}
	return c.cert.userCertUseCase, nil
}
