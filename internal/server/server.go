package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/assets"
	commonhttp "github.com/sngm3741/shopfront/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/shopfront/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/shopfront/internal/public/application"
	"github.com/sngm3741/shopfront/internal/ui"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public ハンドラへ依存注入するコンポジションルート。
type Server struct {
	logger       *zap.Logger
	client       *mongo.Client
	profiles     publicapp.ProfileQueryService
	assets       assets.Resolver
	renderer     *ui.Renderer
	staticDir    string
	addr         string
	shutdownWait time.Duration
}

// Options collects everything the composition root needs.
// Client は任意。nil の場合ヘルスチェックは Mongo を確認しない。
type Options struct {
	Logger    *zap.Logger
	Client    *mongo.Client
	Profiles  publicapp.ProfileRepository
	Assets    assets.Resolver
	StaticDir string
	Addr      string
}

// New は依存関係を組み立てた Server を返す。テンプレートの解析に失敗した場合はエラー。
func New(opts Options) (*Server, error) {
	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:       logger,
		client:       opts.Client,
		profiles:     publicapp.NewProfileQueryService(opts.Profiles),
		assets:       opts.Assets,
		renderer:     renderer,
		staticDir:    opts.StaticDir,
		addr:         opts.Addr,
		shutdownWait: 10 * time.Second,
	}, nil
}

// Router はミドルウェアとルーティングを組み立てる。
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(commonhttp.RequestLogger(s.logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", s.healthHandler())
	if s.staticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
		router.Handle("/static/*", fs)
	}

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:   s.logger,
		Profiles: s.profiles,
		Assets:   s.assets,
		Renderer: s.renderer,
	})
	publicHandler.Register(router)

	return router
}

// Run はHTTPサーバーを起動し、シグナル受信まで待機する。
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP サーバー起動", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return s.waitForShutdown(httpServer, errChan, sigChan)
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error, sigChan <-chan os.Signal) error {
	var runErr error

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		s.logger.Info("シグナルを受信。サーバー停止処理を開始します。", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownWait)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("サーバー停止時にエラー", zap.Error(err))
		}
	}

	s.shutdown(context.Background())
	return runErr
}

// healthHandler は監視系からのヘルスチェック要求に応える。Mongo を利用している場合のみ疎通を確認する。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.client != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
				commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断する。
func (s *Server) shutdown(ctx context.Context) {
	if s.client == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Warn("MongoDB 切断時にエラー", zap.Error(err))
	}
}
