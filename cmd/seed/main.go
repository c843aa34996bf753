package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/config"
	"github.com/sngm3741/shopfront/internal/infrastructure/memory"
	mongorepo "github.com/sngm3741/shopfront/internal/infrastructure/mongo"
	"github.com/sngm3741/shopfront/internal/infrastructure/profilefile"
	"github.com/sngm3741/shopfront/internal/public/domain"
)

type seedOptions struct {
	file    string
	drop    bool
	timeout time.Duration
}

// profileWriter は seed が必要とする Mongo リポジトリの操作。
type profileWriter interface {
	Drop(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
	Upsert(ctx context.Context, profile domain.ShopProfile, now time.Time) error
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &seedOptions{}
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Upsert shop profiles into MongoDB",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *opts)
		},
	}
	bindFlags(cmd.Flags(), opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *seedOptions) {
	fs.StringVarP(&opts.file, "file", "f", "", "YAML カタログのパス (未指定なら組み込みの fixture を投入)")
	fs.BoolVar(&opts.drop, "drop", false, "既存コレクションを削除してから投入する")
	fs.DurationVar(&opts.timeout, "timeout", 60*time.Second, "処理全体のタイムアウト")
}

func run(parent context.Context, opts seedOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Load()
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profiles, err := profilesToSeed(opts.file)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, opts.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongorepo.NewProfileRepository(client.Database(cfg.MongoDatabase), cfg.ProfileCollection)
	if err := seed(ctx, logger, repo, profiles, opts.drop, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Seed 完了",
		zap.Int("profiles", len(profiles)),
		zap.String("database", cfg.MongoDatabase),
		zap.String("collection", cfg.ProfileCollection),
	)
	return nil
}

// profilesToSeed はカタログファイルを読み込む。パスが空なら組み込みの fixture を返す。
func profilesToSeed(path string) ([]domain.ShopProfile, error) {
	if path == "" {
		return []domain.ShopProfile{memory.Fixture()}, nil
	}
	catalog, err := profilefile.Load(path)
	if err != nil {
		return nil, err
	}
	return catalog.Profiles(), nil
}

func seed(ctx context.Context, logger *zap.Logger, repo profileWriter, profiles []domain.ShopProfile, drop bool, now time.Time) error {
	if drop {
		if err := repo.Drop(ctx); err != nil {
			return fmt.Errorf("drop collection: %w", err)
		}
		logger.Info("既存コレクションを削除しました")
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	for _, profile := range profiles {
		if err := repo.Upsert(ctx, profile, now); err != nil {
			return fmt.Errorf("upsert %s: %w", profile.Slug, err)
		}
		logger.Debug("プロフィールを投入しました", zap.String("slug", profile.Slug))
	}
	return nil
}
