package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/lxc/incus/v6/shared/revert"
	incusUtil "github.com/lxc/incus/v6/shared/util"
	"golang.org/x/sync/errgroup"

	"github.com/FuturFusion/security-manager/cmd/security-managerd/internal/config"
	"github.com/FuturFusion/security-manager/internal/db"
	"github.com/FuturFusion/security-manager/internal/logger"
	"github.com/FuturFusion/security-manager/internal/resources"
	"github.com/FuturFusion/security-manager/internal/securite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/middleware"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite"
	"github.com/FuturFusion/security-manager/internal/securite/repo/sqlite/entities"
	"github.com/FuturFusion/security-manager/internal/server/request"
	"github.com/FuturFusion/security-manager/internal/server/response"
	"github.com/FuturFusion/security-manager/internal/server/sys"
	"github.com/FuturFusion/security-manager/internal/transaction"
	"github.com/FuturFusion/security-manager/internal/util"
	"github.com/FuturFusion/security-manager/internal/version"
)

// APIEndpoint represents a URL in our API.
type APIEndpoint struct {
	Path   string // Path pattern for this endpoint.
	Get    APIEndpointAction
	Put    APIEndpointAction
	Post   APIEndpointAction
	Delete APIEndpointAction
}

// APIEndpointAction represents an action on an API endpoint.
type APIEndpointAction struct {
	Handler func(d *Daemon, r *http.Request) response.Response
}

type Daemon struct {
	db *db.Node
	os *sys.OS

	logHandler *logger.Handler
	config     config.Config

	profil      securite.ProfilService
	utilisateur securite.UtilisateurService
	reference   securite.ReferenceService
	translator  *resources.Translator

	errgroup *errgroup.Group
	server   *http.Server

	ShutdownCtx    context.Context    // Canceled when shutdown starts.
	ShutdownCancel context.CancelFunc // Cancels the shutdownCtx to indicate shutdown starting.
	ShutdownDoneCh chan error         // Receives the result of the d.Stop() function and tells the daemon to end.
}

func NewDaemon(logHandler *logger.Handler) *Daemon {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	d := &Daemon{
		os:             sys.DefaultOS(),
		logHandler:     logHandler,
		ShutdownCtx:    shutdownCtx,
		ShutdownCancel: shutdownCancel,
		ShutdownDoneCh: make(chan error),
	}

	return d
}

func (d *Daemon) Start() error {
	configExists := incusUtil.PathExists(d.os.ConfigFile())

	cfg, err := config.LoadConfig(d.os)
	if err != nil {
		return err
	}

	err = config.Validate(*cfg)
	if err != nil {
		return err
	}

	if !configExists {
		// Leave an empty config file for the administrator to fill in.
		err = config.SaveConfig(d.os, config.Config{})
		if err != nil {
			return fmt.Errorf("Failed to write default config: %w", err)
		}
	}

	d.config = *cfg

	if d.config.Log.Level != "" && d.logHandler != nil {
		d.logHandler.Set(logger.ParseLevel(d.config.Log.Level))
	}

	slog.Info("Starting up", slog.String("version", version.Version))

	reverter := revert.New()
	defer reverter.Fail()

	// Open the local sqlite database.
	d.db, err = db.OpenDatabase(d.os.LocalDatabaseDir())
	if err != nil {
		slog.Error("Failed to open sqlite database", logger.Err(err))
		return err
	}

	reverter.Add(func() { _ = d.db.Close() })

	err = d.setupServices()
	if err != nil {
		return err
	}

	// Setup web server
	d.server = restServer(d)

	group, errgroupCtx := errgroup.WithContext(context.Background())
	d.errgroup = group

	group.Go(func() error {
		_, err := net.Dial("unix", d.os.GetUnixSocket())
		if err == nil {
			return fmt.Errorf("Active unix socket found at %q", d.os.GetUnixSocket())
		}

		if incusUtil.PathExists(d.os.GetUnixSocket()) {
			if !util.IsUnixSocket(d.os.GetUnixSocket()) {
				return fmt.Errorf("Refusing to replace %q, it is not a unix socket", d.os.GetUnixSocket())
			}

			err := os.Remove(d.os.GetUnixSocket())
			if err != nil {
				return fmt.Errorf("Failed to delete stale unix socket at %q: %w", d.os.GetUnixSocket(), err)
			}
		}

		unixListener, err := net.Listen("unix", d.os.GetUnixSocket())
		if err != nil {
			return err
		}

		slog.Info("Start unix socket listener", slog.Any("addr", unixListener.Addr()))

		return serve(d.server, unixListener)
	})

	if d.config.Network.Address != "" {
		group.Go(func() error {
			tcpListener, err := net.Listen("tcp", d.config.Network.Address)
			if err != nil {
				return err
			}

			slog.Info("Start http listener", slog.Any("addr", tcpListener.Addr()))

			return serve(d.server, tcpListener)
		})
	}

	select {
	case <-errgroupCtx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer shutdownCancel()
		return d.Stop(shutdownCtx)
	case <-time.After(500 * time.Millisecond):
		// Grace period we wait for potential immediate errors from serving the http server.
	}

	reverter.Success()

	slog.Info("Daemon started")

	return nil
}

func serve(server *http.Server, listener net.Listener) error {
	err := server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		// Ignore error from graceful shutdown.
		return nil
	}

	return err
}

// setupServices wires the services on top of the opened database.
func (d *Daemon) setupServices() error {
	dbWithTransaction := transaction.Enable(d.db.DB)

	var err error
	entities.PreparedStmts, err = entities.PrepareStmts(dbWithTransaction, false)
	if err != nil {
		return fmt.Errorf("Failed to prepare statements: %w", err)
	}

	d.translator, err = resources.New()
	if err != nil {
		return err
	}

	repoLog := slog.Default().With(slog.String("component", "repo"))

	d.profil = securite.NewProfilService(
		middleware.NewProfilRepoWithSlog(
			sqlite.NewProfil(dbWithTransaction),
			repoLog,
			middleware.ProfilRepoWithSlogWithInformativeErrFunc(isNotFound),
		),
	)

	d.utilisateur = securite.NewUtilisateurService(
		middleware.NewUtilisateurRepoWithSlog(
			sqlite.NewUtilisateur(dbWithTransaction),
			repoLog,
			middleware.UtilisateurRepoWithSlogWithInformativeErrFunc(isNotFound),
		),
		d.profil,
	)

	d.reference = securite.NewReferenceService(
		middleware.NewReferenceRepoWithSlog(
			sqlite.NewReference(dbWithTransaction),
			repoLog,
		),
	)

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, securite.ErrNotFound)
}

func (d *Daemon) Stop(ctx context.Context) error {
	d.ShutdownCancel()

	var shutdownErr error
	if d.server != nil {
		shutdownErr = d.server.Shutdown(ctx)
	}

	var errgroupWaitErr error
	if d.errgroup != nil {
		errgroupWaitErr = d.errgroup.Wait()
	}

	var closeErr error
	if d.db != nil {
		closeErr = d.db.Close()
	}

	err := errors.Join(shutdownErr, errgroupWaitErr, closeErr)

	slog.Info("Daemon stopped")

	return err
}

func (d *Daemon) createCmd(restAPI *http.ServeMux, apiVersion string, c APIEndpoint) {
	var uri string
	if c.Path == "" {
		uri = fmt.Sprintf("/%s", apiVersion)
	} else {
		uri = fmt.Sprintf("/%s/%s", apiVersion, c.Path)
	}

	restAPI.HandleFunc(uri, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		slog.Debug("Handling API request",
			slog.String("method", r.Method),
			slog.String("url", r.URL.RequestURI()),
			slog.String("ip", r.RemoteAddr),
			slog.String("request_id", request.RequestID(r.Context())),
		)

		// Return Unavailable Error (503) if daemon is shutting down, except for
		// the /1.0 endpoint and GET queries.
		if d.ShutdownCtx.Err() == context.Canceled && c.Path != "" && r.Method != http.MethodGet {
			_ = response.Unavailable(fmt.Errorf("Shutting down")).Render(w)
			return
		}

		handleRequest := func(action APIEndpointAction) response.Response {
			if action.Handler == nil {
				return response.NotImplemented(nil)
			}

			return action.Handler(d, r)
		}

		var resp response.Response
		switch r.Method {
		case http.MethodGet:
			resp = handleRequest(c.Get)
		case http.MethodPut:
			resp = handleRequest(c.Put)
		case http.MethodPost:
			resp = handleRequest(c.Post)
		case http.MethodDelete:
			resp = handleRequest(c.Delete)
		default:
			resp = response.NotFound(fmt.Errorf("Method %q not found", r.Method))
		}

		// Handle errors
		err := resp.Render(w)
		if err != nil {
			writeErr := response.SmartError(err).Render(w)
			if writeErr != nil {
				slog.Error("Failed writing error for HTTP response", slog.String("url", uri), logger.Err(err), slog.Any("write_err", writeErr))
			}
		}
	})
}
