package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := c.session.Register(ctx, username, password); err != nil {
		return err
	}

	c.io.Println("Account created, logged in.")
	c.io.Println("Run 'refkeeper sync' to synchronize your library.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println("Logged in.")
	c.io.Println("Run 'refkeeper sync' to synchronize your library.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out.")
	return nil
}
