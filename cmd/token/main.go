// Command token issues bearer tokens for running the API with AUTH_MODE=token.
package main

import (
	"GymAttendanceTracker/internal/auth"
	"GymAttendanceTracker/internal/config"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		subject string
		email   string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for the gym attendance API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET_KEY is not set")
			}
			if subject == "" {
				subject = cfg.DemoUserID
			}
			token, err := auth.GenerateToken([]byte(cfg.JWTSecret), auth.Identity{Subject: subject, Email: email}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "user id to put in the sub claim (default DEMO_USER_ID)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
