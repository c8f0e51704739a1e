package main

import (
	"github.com/grievance-portal/grievance-api/internal/auth"
	"github.com/grievance-portal/grievance-api/internal/database"
	"github.com/grievance-portal/grievance-api/internal/models"
	"github.com/grievance-portal/grievance-api/internal/repository"
	"github.com/grievance-portal/grievance-api/internal/services"
	"github.com/spf13/cobra"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE:  runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "login e-mail")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "login password")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	authService := services.NewAuthService(repository.NewUserRepository(db), tokens, log)
	user, err := authService.Signup(cmd.Context(), services.SignupInput{
		Name:     adminName,
		Email:    adminEmail,
		Password: adminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Infow("admin created", "user_id", user.ID, "email", user.Email)
	return nil
}
