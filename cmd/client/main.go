package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmontesdeoca/passvault/internal/adapter"
	"github.com/jmontesdeoca/passvault/internal/config"
	"github.com/jmontesdeoca/passvault/internal/crypto"
	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/internal/service"
	"github.com/jmontesdeoca/passvault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("passvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)

	cache, err := store.NewCredentialCache(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential cache")
	}

	device, err := crypto.NewDeviceCipher(cfg.App.DeviceSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("create device cipher")
	}

	sessions := service.NewSessionManager(serverAdapter, cache, device, cfg.Session.TickInterval, log)
	records := service.NewRecordService(serverAdapter, crypto.NewEngine(), sessions, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions.OnSessionExpired(func() {
		log.Info().Msg("session expired, vault locked")
	})

	if err = openVault(ctx, sessions, records, log); err != nil {
		log.Error().Err(err).Msg("open vault")
	}

	<-ctx.Done()

	sessions.PerformFullLogout(context.Background(), "client shutdown")
	log.Info().Msg("client stopped")
}

// openVault restores or establishes a session and lists the vault on
// success. Credentials come from the environment; an interactive front
// end would sit here instead.
func openVault(ctx context.Context, sessions service.SessionManager, records service.RecordService, log *logger.Logger) error {
	if restored, err := sessions.RestoreSession(ctx); err == nil {
		log.Info().Str("user_id", restored.UserID).Msg("previous session restored")
	} else {
		email := os.Getenv("PASSVAULT_EMAIL")
		password := os.Getenv("PASSVAULT_PASSWORD")
		if email == "" || password == "" {
			log.Info().Msg("no session to restore and no credentials in environment")
			return nil
		}

		session, err := sessions.Login(ctx, email, password)
		if err != nil {
			return err
		}
		log.Info().Str("user_id", session.UserID).Dur("remaining", sessions.GetRemainingTime()).Msg("logged in")
	}

	vaultPassword := os.Getenv("PASSVAULT_VAULT_PASSWORD")
	if vaultPassword == "" {
		return nil
	}

	list, err := records.GetAllRecords(ctx, vaultPassword)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(list)).Msg("vault opened")
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
