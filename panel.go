// Package panel wires the XERODMA staff panel together: the public guide
// API, staff authentication and the session-guarded management API.
package panel

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/xerodma/panel/api/staffapi"
	"github.com/xerodma/panel/internal/version"
	"github.com/xerodma/panel/session"
	"github.com/xerodma/panel/storage/model"
)

// Panel is the assembled staff-panel server.
type Panel struct {
	server     *fiber.App
	serverConf ServerConf
}

// FiberServerConfig is the fiber.Config that is used to init the http fiber.App
var FiberServerConfig = fiber.Config{
	ReadTimeout:    3 * time.Second,
	WriteTimeout:   20 * time.Second,
	IdleTimeout:    150 * time.Second,
	ReadBufferSize: 8192,
	ErrorHandler:   handleError,
	Network:        "tcp",
}

// handleError is the app-wide fiber error handler. Handlers report their own
// domain errors; anything that still reaches here is either a routing error
// or a bug, so the response stays generic and the cause goes to the log.
func handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"success": false, "error": fiberErr.Message})
	}
	log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Server error"})
}

// NewPanel creates a new Panel serving the passed storage backends.
func NewPanel(
	serverConf ServerConf,
	storages model.Backends,
	sessions *session.Codec,
	apiOpts *staffapi.Options,
) (*Panel, error) {
	if tps := serverConf.TrustedProxies; len(tps) > 0 {
		FiberServerConfig.TrustedProxies = serverConf.TrustedProxies
		FiberServerConfig.EnableTrustedProxyCheck = true
	}
	FiberServerConfig.ProxyHeader = serverConf.ForwardedIPHeader
	server := fiber.New(FiberServerConfig)
	server.Use(recover.New())
	server.Use(compress.New())
	server.Use(logger.New())
	server.Use(requestid.New())

	server.Get(
		"/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok", "version": version.VERSION})
		},
	)

	staffapi.Register(server, storages, sessions, apiOpts)

	return &Panel{
		server:     server,
		serverConf: serverConf,
	}, nil
}

// HttpHandlerFunc returns an http.HandlerFunc for serving all the necessary endpoints
func (p Panel) HttpHandlerFunc() http.HandlerFunc {
	return adaptor.FiberApp(p.server)
}

// Listen starts an http server at the specific address for serving all the
// necessary endpoints
func (p Panel) Listen(addr string) error {
	return p.server.Listen(addr)
}

func (p Panel) Start() {
	conf := p.serverConf
	if !conf.TLS.Enabled {
		log.WithField("port", conf.Port).Info("TLS is disabled starting http server")
		log.WithError(p.server.Listen(fmt.Sprintf("%s:%d", conf.IPListen, conf.Port))).Fatal()
	}
	// TLS enabled
	if conf.TLS.RedirectHTTP {
		httpServer := fiber.New(FiberServerConfig)
		httpServer.All(
			"*", func(ctx *fiber.Ctx) error {
				//goland:noinspection HttpUrlsUsage
				return ctx.Redirect(
					strings.Replace(ctx.Request().URI().String(), "http://", "https://", 1),
					fiber.StatusPermanentRedirect,
				)
			},
		)
		log.Info("TLS and http redirect enabled, starting redirect server on port 80")
		go func() {
			log.WithError(httpServer.Listen(":80")).Fatal()
		}()
	}
	log.Info("TLS enabled, starting https server on port 443")
	log.WithError(p.server.ListenTLS(":443", conf.TLS.Cert, conf.TLS.Key)).Fatal()
}
