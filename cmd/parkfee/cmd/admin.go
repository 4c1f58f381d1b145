package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/infra/db"
	"facility-parking/internal/infra/repository"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/errs"
	"facility-parking/internal/pkg/password"

	"github.com/spf13/cobra"
)

const adminPasswordEnv = "PARKFEE_ADMIN_PASSWORD"

var (
	adminUsername string
	adminName     string
	adminRole     string
	adminApproved bool
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account in the database configured by the DB_* variables.

The password is read from ` + adminPasswordEnv + ` so it never shows up in shell history.`,
	Args: cobra.NoArgs,
	RunE: runAdminCreate,
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminUsername, "username", "", "login name")
	adminCreateCmd.Flags().StringVar(&adminName, "name", "", "display name")
	adminCreateCmd.Flags().StringVar(&adminRole, "role", string(admin.RoleManager), "MANAGER or SUPER_ADMIN")
	adminCreateCmd.Flags().BoolVar(&adminApproved, "approved", true, "approve the account immediately")

	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("name")

	adminCmd.AddCommand(adminCreateCmd)
}

func runAdminCreate(cmd *cobra.Command, _ []string) error {
	username, err := admin.NewUsername(adminUsername)
	if err != nil {
		return err
	}
	role, err := admin.NewRole(adminRole)
	if err != nil {
		return err
	}
	plain, err := admin.NewPassword(os.Getenv(adminPasswordEnv))
	if err != nil {
		return errs.Wrapf(err, "%s", adminPasswordEnv)
	}

	hash, err := password.NewHasher(password.DefaultCost).Hash(plain.Value())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	account, err := admin.NewAdmin(username, hash, adminName, role, now)
	if err != nil {
		return err
	}
	if adminApproved {
		account.Approve(now)
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}

	if err := repository.NewAdminRepository(pool).Create(ctx, account); err != nil {
		return err
	}

	slog.Debug("admin created", "admin_id", account.ID(), "role", role)
	printf(cmd, "created %s (%s) id=%s approved=%t\n", username.Value(), role, account.ID(), account.Approved())
	return nil
}
