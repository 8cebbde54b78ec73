package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/blog"
	"github.com/folio-dev/folio/internal/cache"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/db"
	"github.com/folio-dev/folio/internal/demos"
	"github.com/folio-dev/folio/internal/notifications"
	"github.com/folio-dev/folio/internal/server"
	"github.com/folio-dev/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Starts the portfolio server: HTML pages, the /ui widget streams,
the contact API, the blog API and the demo endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger := slog.Default()

		secret := cfg.SessionSecret
		if secret == "" {
			if secret, err = config.GenerateSecret(); err != nil {
				return err
			}
			logger.Warn("no session_secret configured; sessions will not survive a restart")
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Host:          cfg.Host,
			Port:          cfg.Port,
			AllowAll:      cfg.AllowAllOrigins,
			CompressLevel: cfg.CompressLevel,
		}, database, logger)

		blogs, notifier, err := registerRoutes(srv, database, cfg, []byte(secret), logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "folio v%s starting on %s\n", Version, srv.Addr())
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DBPath())
		fmt.Fprintf(os.Stderr, "  Static: %s\n", cfg.StaticDir)
		fmt.Fprintf(os.Stderr, "  Blogs: %s\n", cfg.BlogsDir)
		if cfg.ContactEndpoint != "" {
			fmt.Fprintf(os.Stderr, "  Contact endpoint: %s\n", cfg.ContactEndpoint)
		}

		eg, egctx := errgroup.WithContext(ctx)
		eg.Go(srv.Start)
		if cfg.Watch {
			eg.Go(func() error { return blogs.Watch(egctx, logger) })
		}
		eg.Go(func() error {
			<-egctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return shutdown(shutdownCtx, srv, notifier)
		})
		return eg.Wait()
	},
}

// shutdown stops the server, then waits for queued webhook deliveries.
func shutdown(ctx context.Context, srv interface{ Shutdown(context.Context) error }, notifier *notifications.Dispatcher) error {
	err := srv.Shutdown(ctx)
	if notifier != nil {
		notifier.Wait()
	}
	return err
}

// registerRoutes mounts every feature on the server router. The returned
// dispatcher is nil when no webhooks are configured.
func registerRoutes(srv *server.Server, database *db.DB, cfg *config.Config, secret []byte, logger *slog.Logger) (*blog.Index, *notifications.Dispatcher, error) {
	r := srv.Router()
	clock := anim.RealClock{}

	// Contact API
	store := contact.NewStore(database)
	var notifier *notifications.Dispatcher
	if len(cfg.NotifyWebhooks) > 0 {
		notifier = notifications.NewDispatcher(cfg.NotifyWebhooks, logger)
		store.SetNotifier(notifier)
	}
	contact.RegisterRoutes(r, store, logger)

	// Blog API
	blogs := blog.NewIndex(cfg.BlogsDir)
	blog.RegisterRoutes(r, blogs)

	// Demos
	svc := demos.NewService(
		demos.NewPredictor(uint64(time.Now().UnixNano())),
		cache.New[demos.Mood](clock),
		cache.New[demos.Prediction](clock),
	)
	demos.RegisterRoutes(r, svc)

	// Pages and widget streams
	var submitter contact.Submitter = store
	if cfg.ContactEndpoint != "" {
		submitter = contact.NewClient(cfg.ContactEndpoint)
	}
	cookies := sessions.NewCookieStore(secret)
	cookies.Options.HttpOnly = true
	cookies.Options.SameSite = http.SameSiteLaxMode
	s, err := site.New(site.Options{
		Sessions:  cookies,
		Clock:     clock,
		Logger:    logger,
		Blogs:     blogs,
		Contact:   submitter,
		StaticDir: cfg.StaticDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("building site: %w", err)
	}
	s.RegisterRoutes(r)

	return blogs, notifier, nil
}

func init() {
	f := serveCmd.Flags()
	f.String("host", "", "interface to bind")
	f.Int("port", 5000, "port to listen on")
	f.String("data-dir", ".folio", "directory holding the SQLite database")
	f.String("static-dir", "static", "static files directory")
	f.String("blogs-dir", "Blogs", "markdown blog directory")
	f.Bool("allow-all-origins", false, "allow cross-origin calls to the JSON API")
	f.Bool("watch", false, "reload blog posts when files change")
	f.String("contact-endpoint", "", "remote contact API used by the email dialog")
	f.Int("compress-level", 6, "gzip compression level (1-9)")
	rootCmd.AddCommand(serveCmd)
}
