// Package inspector serves the codec over HTTP so that captured F1AP payloads
// can be decoded, and hand written messages encoded, without a DU or CU.
package inspector

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/free5gc/f1ap/internal/logger"
	"github.com/free5gc/f1ap/internal/metrics"
	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/factory"
	"github.com/free5gc/f1ap/pkg/model"
)

const shutdownTimeout = 2 * time.Second

type Route struct {
	Name    string
	Method  string
	Pattern string
	APIFunc gin.HandlerFunc
}

func applyRoutes(group gin.IRoutes, routes []Route) {
	for _, route := range routes {
		switch route.Method {
		case http.MethodGet:
			group.GET(route.Pattern, route.APIFunc)
		case http.MethodPost:
			group.POST(route.Pattern, route.APIFunc)
		}
	}
}

//go:generate mockgen -source=server.go -destination=mock_codec_test.go -package=inspector

// MessageCodec is the part of *codec.Codec the handlers use.
type MessageCodec interface {
	Encode(m model.Message) ([]byte, error)
	DecodeType(b []byte, want model.MessageType) (model.Message, []codec.Warning, error)
}

type Server struct {
	cfg        *factory.Config
	codec      MessageCodec
	registry   *prometheus.Registry
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer builds the router. The codec reports into reg, which is also
// what /metrics exposes.
func NewServer(cfg *factory.Config, reg *prometheus.Registry) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("inspector: nil config")
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	policy, err := cfg.GetCodecPolicy()
	if err != nil {
		return nil, errors.WithMessage(err, "inspector")
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		codec: codec.New(
			codec.WithPolicy(policy),
			codec.WithMetrics(metrics.NewCollector(reg)),
		),
	}
	s.router = s.newRouter()
	return s, nil
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(), recovery())

	f1apGroup := router.Group("/f1ap")
	applyRoutes(f1apGroup, s.getF1apRoutes())

	router.GET(factory.InspectorMetricsPath,
		gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	return router
}

func (s *Server) getF1apRoutes() []Route {
	return []Route{
		{
			Name:    "MessageTypes",
			Method:  http.MethodGet,
			Pattern: "/messages",
			APIFunc: s.HTTPMessageTypes,
		},
		{
			Name:    "Decode",
			Method:  http.MethodPost,
			Pattern: strings.TrimPrefix(factory.InspectorDecodePath, "/f1ap"),
			APIFunc: s.HTTPDecode,
		},
		{
			Name:    "Encode",
			Method:  http.MethodPost,
			Pattern: strings.TrimPrefix(factory.InspectorEncodePath, "/f1ap"),
			APIFunc: s.HTTPEncode,
		},
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts the listener down.
func (s *Server) Run(ctx context.Context, wg *sync.WaitGroup) error {
	addr := s.cfg.GetInspectorAddr()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.InspectorLog.Infof("Start inspector server (http://%s)", addr)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.InspectorLog.Errorf("Inspector server error: %+v", err)
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	s.Stop()
	return nil
}

func (s *Server) Stop() {
	if s.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.InspectorLog.Errorf("Could not close inspector server: %#v", err)
	} else {
		logger.InspectorLog.Infof("Inspector server stopped")
	}
}
