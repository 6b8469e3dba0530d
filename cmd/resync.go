package cmd

import (
	"context"
	"fmt"

	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/entity"
	"menu-manager/core/entry"
	"menu-manager/core/logger"
	"menu-manager/feature/menu"
	"menu-manager/feature/modifier"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for resync command
	resyncLocation string
	applyResync    bool
)

// resyncCmd rebuilds ledger entries for every menu and modifier group of a
// location. Reconciling the stored items against themselves leaves healthy
// slots untouched and mints fresh entries only where a slot token is
// missing or predates canonical identifiers.
var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Resynchronize ledger entries for a location",
	Long: `Resynchronize ledger entries for every menu and modifier group of a location.

Slots that already carry a canonical entry token are left untouched; slots
with a missing or legacy token get a fresh entry minted and dispatched.

Examples:
  # Report only (dry-run)
  resync --location 0b7e72f5-51f9-4ba7-b3a2-9c9f3edfca12

  # Persist rebuilt items and dispatch digests
  resync --location 0b7e72f5-51f9-4ba7-b3a2-9c9f3edfca12 --apply`,
	RunE: runResync,
}

func init() {
	resyncCmd.Flags().StringVar(&resyncLocation, "location", "", "Location token to resynchronize (defaults to SERVER_LOCATION)")
	resyncCmd.Flags().BoolVar(&applyResync, "apply", false, "Persist rebuilt items and dispatch digests (default dry-run)")

	RootCmd.AddCommand(resyncCmd)
}

func runResync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if resyncLocation == "" {
		resyncLocation = cfg.Server.Location
	}
	if resyncLocation == "" {
		return fmt.Errorf("no location given: pass --location or set SERVER_LOCATION")
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	l.Info("Starting resync",
		zap.String("location", resyncLocation),
		zap.Bool("apply", applyResync))

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	channel, err := entity.NewClient(cfg.Backend)
	if err != nil {
		return fmt.Errorf("failed to create ledger channel: %w", err)
	}
	dispatcher := entry.NewDispatcher(channel, l)

	var minted, removed, containers int

	// Menus
	menuRepo := menu.NewRepository(db)
	menus, err := menuRepo.ListByLocation(ctx, resyncLocation)
	if err != nil {
		return fmt.Errorf("failed to list menus: %w", err)
	}

	for i := range menus {
		m := &menus[i]
		items, digest, err := entry.SyncMenuEntries(m.Location, m.Token, m.Items, m.Items)
		if err != nil {
			return fmt.Errorf("failed to reconcile menu %s: %w", m.Token, err)
		}
		if digest.Empty() {
			continue
		}

		containers++
		minted += len(digest.Created)
		removed += len(digest.Removed)
		l.Info("Menu needs resync",
			zap.String("menu", m.Token),
			zap.Int("minted", len(digest.Created)),
			zap.Int("removed", len(digest.Removed)))

		if !applyResync {
			continue
		}

		m.Items = items
		if err := menuRepo.Update(ctx, m); err != nil {
			return fmt.Errorf("failed to persist menu %s: %w", m.Token, err)
		}
		if err := dispatcher.Process(ctx, digest); err != nil {
			l.Error("Unable to process entries", zap.String("menu", m.Token), zap.Error(err))
		}
	}

	// Modifier groups
	modifierRepo := modifier.NewRepository(db)
	modifiers, err := modifierRepo.ListByLocation(ctx, resyncLocation)
	if err != nil {
		return fmt.Errorf("failed to list modifiers: %w", err)
	}

	for i := range modifiers {
		m := &modifiers[i]
		items, digest, err := entry.SyncModifierEntries(m.Location, m.Token, m.Items, m.Items)
		if err != nil {
			return fmt.Errorf("failed to reconcile modifier %s: %w", m.Token, err)
		}
		if digest.Empty() {
			continue
		}

		containers++
		minted += len(digest.Created)
		removed += len(digest.Removed)
		l.Info("Modifier needs resync",
			zap.String("modifier", m.Token),
			zap.Int("minted", len(digest.Created)),
			zap.Int("removed", len(digest.Removed)))

		if !applyResync {
			continue
		}

		m.Items = items
		if err := modifierRepo.Update(ctx, m); err != nil {
			return fmt.Errorf("failed to persist modifier %s: %w", m.Token, err)
		}
		if err := dispatcher.Process(ctx, digest); err != nil {
			l.Error("Unable to process entries", zap.String("modifier", m.Token), zap.Error(err))
		}
	}

	l.Info("Resync complete",
		zap.Int("containers", containers),
		zap.Int("minted", minted),
		zap.Int("removed", removed),
		zap.Bool("applied", applyResync))

	if !applyResync && containers > 0 {
		l.Info("Dry-run only. Re-run with --apply to persist and dispatch.")
	}

	return nil
}
