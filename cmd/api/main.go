package main

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/assets"
	"github.com/sngm3741/shopfront/internal/config"
	"github.com/sngm3741/shopfront/internal/infrastructure/memory"
	mongorepo "github.com/sngm3741/shopfront/internal/infrastructure/mongo"
	"github.com/sngm3741/shopfront/internal/infrastructure/profilefile"
	publicapp "github.com/sngm3741/shopfront/internal/public/application"
	"github.com/sngm3741/shopfront/internal/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定が不正です: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("ロガー初期化に失敗: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	profiles, client, err := openProfiles(ctx, cfg)
	if err != nil {
		logger.Fatal("プロフィールの読み込みに失敗しました", zap.String("source", cfg.ProfileSource), zap.Error(err))
	}

	resolver, err := openResolver(ctx, cfg)
	if err != nil {
		logger.Fatal("アセットリゾルバの初期化に失敗しました", zap.String("resolver", cfg.AssetResolver), zap.Error(err))
	}

	app, err := server.New(server.Options{
		Logger:    logger,
		Client:    client,
		Profiles:  profiles,
		Assets:    resolver,
		StaticDir: cfg.StaticDir,
		Addr:      cfg.Addr,
	})
	if err != nil {
		logger.Fatal("サーバー初期化に失敗", zap.Error(err))
	}

	logger.Info("設定を読み込みました",
		zap.String("env", cfg.Env),
		zap.String("profileSource", cfg.ProfileSource),
		zap.String("assetResolver", cfg.AssetResolver),
	)
	if err := app.Run(); err != nil {
		logger.Fatal("サーバー起動に失敗", zap.Error(err))
	}
}

// openProfiles は PROFILE_SOURCE に応じたリポジトリを返す。Mongo の場合のみクライアントも返す。
func openProfiles(ctx context.Context, cfg config.Config) (publicapp.ProfileRepository, *mongo.Client, error) {
	switch cfg.ProfileSource {
	case config.SourceFile:
		catalog, err := profilefile.Load(cfg.ProfilesFile)
		if err != nil {
			return nil, nil, err
		}
		return catalog, nil, nil
	case config.SourceMongo:
		clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		repo := mongorepo.NewProfileRepository(client.Database(cfg.MongoDatabase), cfg.ProfileCollection)
		return repo, client, nil
	default:
		return memory.NewStaticRepository(memory.Fixture()), nil, nil
	}
}

func openResolver(ctx context.Context, cfg config.Config) (assets.Resolver, error) {
	if cfg.AssetResolver != config.ResolverS3 {
		return assets.NewPathResolver(cfg.AssetBaseURL), nil
	}
	return assets.NewS3Resolver(ctx, assets.S3Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		Prefix:    cfg.S3.Prefix,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		TTL:       cfg.S3.PresignTTL,
	})
}
