package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LdDl/roadnet"
)

const shutdownTimeout = 5 * time.Second

func serveCommand() *cobra.Command {
	var configPath, addr string
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve built road networks as GeoJSON over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			in, networks, _, err := buildInput(ctx, args[0], cfg)
			if err != nil {
				return err
			}
			srv := newNetworkServer(networks, in.mercator, loggerFromContext(ctx))
			return srv.listen(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] addr, default "+defaultAddr+")")
	return cmd
}

// networkServer serves an immutable snapshot of built networks
type networkServer struct {
	networks []*roadnet.Network
	byID     map[uuid.UUID]*roadnet.Network
	mercator bool
	logger   *log.Logger
}

type networkSummary struct {
	ID        uuid.UUID `json:"id"`
	Template  string    `json:"template"`
	Segments  int       `json:"segments"`
	Curves    int       `json:"curves"`
	Crossings int       `json:"crossings"`
	EndCaps   int       `json:"end_caps"`
}

func newNetworkServer(networks []*roadnet.Network, mercator bool, logger *log.Logger) *networkServer {
	byID := make(map[uuid.UUID]*roadnet.Network, len(networks))
	for _, net := range networks {
		byID[net.ID] = net
	}
	return &networkServer{
		networks: networks,
		byID:     byID,
		mercator: mercator,
		logger:   logger,
	}
}

func (srv *networkServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(srv.logRequests)
	r.Get("/healthz", srv.handleHealth)
	r.Route("/networks", func(r chi.Router) {
		r.Get("/", srv.handleList)
		r.Get("/geojson", srv.handleAllGeoJSON)
		r.Get("/{id}", srv.handleNetwork)
	})
	return r
}

func (srv *networkServer) listen(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		srv.logger.Info("Serving road networks", "addr", addr, "networks", len(srv.networks))
		errCh <- httpServer.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return errors.Wrap(err, "Can't serve")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.logger.Info("Shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "Can't shutdown")
		}
		return nil
	}
}

func (srv *networkServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		st := time.Now()
		next.ServeHTTP(ww, r)
		srv.logger.Debug("HTTP", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "elapsed", time.Since(st))
	})
}

func (srv *networkServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (srv *networkServer) handleList(w http.ResponseWriter, r *http.Request) {
	summaries := make([]networkSummary, 0, len(srv.networks))
	for _, net := range srv.networks {
		summaries = append(summaries, networkSummary{
			ID:        net.ID,
			Template:  net.Template.Name,
			Segments:  net.Len(),
			Curves:    net.CountKind(roadnet.SEGMENT_CURVE),
			Crossings: net.CountKind(roadnet.SEGMENT_CROSSING),
			EndCaps:   net.CountKind(roadnet.SEGMENT_END_CAP),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		srv.logger.Error("Can't encode networks", "err", err)
	}
}

func (srv *networkServer) handleAllGeoJSON(w http.ResponseWriter, r *http.Request) {
	data, err := roadnet.NetworksToGeoJSON(srv.networks, srv.mercator)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeGeoJSON(w, data)
}

func (srv *networkServer) handleNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad network id", http.StatusBadRequest)
		return
	}
	net, ok := srv.byID[id]
	if !ok {
		http.Error(w, "network not found", http.StatusNotFound)
		return
	}
	data, err := roadnet.NetworkToGeoJSON(net, srv.mercator)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeGeoJSON(w, data)
}

func writeGeoJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}
