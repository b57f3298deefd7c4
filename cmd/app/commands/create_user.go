package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/studybuddy/certtracker/internal/user/usecase"
)

// RunCreateUser registers a new account from the command line, bypassing the
// HTTP surface. Useful for bootstrapping a first account on a fresh database.
// Outputs the new user ID and username in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	username string,
	password string,
	firstName string,
	lastName string,
	format string,
	out io.Writer,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	logger.Info("creating user", slog.String("username", username))

	result, err := useCase.Register(ctx, userUseCase.RegisterUserInput{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	if format == "json" {
		output := map[string]any{
			"user_id":  result.User.ID,
			"username": result.User.Username,
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}

	fmt.Fprintf(out, "User created successfully\n")
	fmt.Fprintf(out, "  ID:       %d\n", result.User.ID)
	fmt.Fprintf(out, "  Username: %s\n", result.User.Username)
	return nil
}
