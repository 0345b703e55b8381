package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"post-receptor/core/config"
	"post-receptor/core/database"
	"post-receptor/core/logger"
	"post-receptor/core/settings"
	"post-receptor/feature/content"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var yesConfirm bool

// app is the state shared by every command: configuration, logger, database
// and the two stores living on it.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	settings *settings.Store
	content  *content.Store
}

// bootstrap loads configuration, connects to the database, prepares the schema
// and seeds empty options from the environment.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &app{
		cfg:      cfg,
		logger:   l,
		db:       db,
		settings: settings.NewStore(db),
		content:  content.NewStore(db),
	}

	if err := a.prepareSchema(); err != nil {
		a.close()
		return nil, err
	}
	if err := a.settings.Bootstrap(ctx, cfg.Settings); err != nil {
		a.close()
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}
	return a, nil
}

func (a *app) prepareSchema() error {
	if a.cfg.Database.AutoMigrate {
		if err := a.settings.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate settings: %w", err)
		}
		if err := a.content.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate content: %w", err)
		}
		return nil
	}

	if err := a.settings.VerifySchema(); err != nil {
		return err
	}
	return a.content.VerifySchema()
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(prompt string) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
