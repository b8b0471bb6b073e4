package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"passvault/internal/auth"
	"passvault/internal/config"
	apphttp "passvault/internal/http"
	"passvault/internal/repository"
	"passvault/internal/repository/sqlite"
	"passvault/internal/service"
	"passvault/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	blacklistRepo := sqlite.NewTokenBlacklistRepository(db)
	loginRepo := sqlite.NewLoginEntryRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	noteRepo := sqlite.NewNoteRepository(db)

	// users first: the vault tables reference it
	inits := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"user", userRepo.Init},
		{"blacklist", blacklistRepo.Init},
		{"login", loginRepo.Init},
		{"payment", paymentRepo.Init},
		{"note", noteRepo.Init},
	}
	for _, init := range inits {
		if err := init.fn(ctx); err != nil {
			logger.Fatalf("init %s repository: %v", init.name, err)
		}
	}

	hasher := auth.NewPasswordHasher(bcrypt.DefaultCost)
	codec, err := auth.NewTokenCodec(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		logger.Fatalf("setup token codec: %v", err)
	}

	authService, err := service.NewAuthService(userRepo, blacklistRepo, hasher, codec)
	if err != nil {
		logger.Fatalf("setup auth service: %v", err)
	}
	userService := service.NewUserService(userRepo, hasher)

	storageSvc := buildStorage(ctx, cfg, logger)
	vaultService := service.NewVaultService(loginRepo, paymentRepo, noteRepo, storageSvc, cfg.Storage.Bucket, cfg.Storage.KeyPrefix)

	go runBlacklistJanitor(ctx, blacklistRepo, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, userService, vaultService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) storage.Service {
	if cfg.Storage.Bucket == "" {
		logger.Info("no storage bucket configured, note attachments disabled")
		return nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		logger.Fatalf("load aws config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client)
}

// runBlacklistJanitor drops blacklist entries whose token expiry passed. An
// expired token is rejected regardless, so this only bounds table growth.
func runBlacklistJanitor(ctx context.Context, blacklist repository.TokenBlacklistRepository, logger *logrus.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := blacklist.DeleteExpired(ctx, time.Now())
			if err != nil {
				logger.Warnf("blacklist cleanup: %v", err)
				continue
			}
			if removed > 0 {
				logger.Infof("blacklist cleanup removed %d expired tokens", removed)
			}
		}
	}
}
