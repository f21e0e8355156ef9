// Package serve implements interactive web front end: a form asking for
// design URL and access token which returns converted document as a download.
package serve

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"figc/config"
	"figc/convert"
	"figc/css"
	"figc/figma"
	"figc/misc"
)

//go:embed form.html.tmpl
var formTmpl string

var formPage = template.Must(template.New("form").Parse(formTmpl))

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	shutdownTimeout = 5 * time.Second
)

type convertForm struct {
	URL    string `form:"url" validate:"required,max=2048"`
	APIKey string `form:"api_key" validate:"required,max=256"`
}

type formData struct {
	URL     string
	Error   string
	Version string
}

// Server is web front end. Every request is converted independently, only
// retrieved design documents are shared through the cache.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	extra    *css.Stylesheet
	cache    *cache.Cache
	validate *validator.Validate
	log      *zap.Logger
}

// New creates server for configuration cfg. User stylesheet extra is added to
// every produced document, it could be nil.
func New(cfg *config.Config, extra *css.Stylesheet, log *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		extra:    extra,
		validate: validator.New(),
		log:      log.Named("serve"),
	}
	if cfg.Server.CacheTTL > 0 {
		s.cache = cache.New(cfg.Server.CacheTTL, 2*cfg.Server.CacheTTL)
	}

	s.app = fiber.New(fiber.Config{
		AppName:               misc.GetAppName(),
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.app.Use(s.requestID, s.accessLog)
	s.app.Get("/", s.index)
	s.app.Post("/convert", s.convert)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return s
}

// App returns underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.app.Listen(s.cfg.Server.Listen)
	}()
	s.log.Info("Listening", zap.String("address", s.cfg.Server.Listen), zap.Duration("cache_ttl", s.cfg.Server.CacheTTL))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.log.Info("Shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}

func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Locals(requestIDKey, id)
	c.Set(requestIDHeader, id)
	return c.Next()
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// make sure status reflects error before it is logged
		if herr := s.errorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	s.requestLog(c).Info("Request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (s *Server) requestLog(c *fiber.Ctx) *zap.Logger {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return s.log.With(zap.String("request_id", id))
	}
	return s.log
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.requestLog(c).Error("Request failed", zap.Error(err))
	}
	return s.render(c, code, formData{Error: err.Error()})
}

func (s *Server) render(c *fiber.Ctx, code int, data formData) error {
	data.Version = misc.GetAppName() + " " + misc.GetVersion()
	buf := new(bytes.Buffer)
	if err := formPage.Execute(buf, data); err != nil {
		return err
	}
	c.Status(code)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) index(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, formData{})
}

func (s *Server) convert(c *fiber.Ctx) error {
	log := s.requestLog(c).Named("convert")

	var form convertForm
	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.StatusBadRequest, formData{Error: "Unable to read form"})
	}
	if err := s.validate.Struct(form); err != nil {
		log.Debug("Invalid form", zap.Error(err))
		return s.render(c, fiber.StatusBadRequest, formData{URL: form.URL, Error: "Both design URL and access token are required"})
	}
	key := figma.ExtractFileKey(form.URL)
	if key == "" {
		return s.render(c, fiber.StatusBadRequest, formData{URL: form.URL, Error: "Unable to find file key in design URL"})
	}

	data, err := s.retrieve(c.UserContext(), key, config.SecretString(form.APIKey), log)
	if err != nil {
		log.Warn("Unable to retrieve design", zap.String("file_key", key), zap.Error(err))
		return s.render(c, fiber.StatusBadGateway, formData{URL: form.URL, Error: err.Error()})
	}
	f, err := figma.ParseFile(data)
	if err != nil {
		return s.render(c, fiber.StatusBadGateway, formData{URL: form.URL, Error: err.Error()})
	}

	doc, err := convert.Convert(f, key, &s.cfg.Document, s.extra, log)
	if errors.Is(err, figma.ErrNoFrame) {
		return s.render(c, fiber.StatusUnprocessableEntity, formData{URL: form.URL, Error: "Design has no frame to convert"})
	}
	if err != nil {
		return err
	}

	name := convert.DownloadName(doc.Values)
	log.Info("Design converted", zap.String("file_key", key), zap.String("name", name), zap.Int("size", len(doc.HTML)))

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Type("html", "utf-8")
	return c.SendString(doc.HTML)
}

// retrieve returns raw design document, reusing recently retrieved one for
// the same file and token when possible.
func (s *Server) retrieve(ctx context.Context, key string, token config.SecretString, log *zap.Logger) ([]byte, error) {
	cacheKey := key + ":" + token.Fingerprint()
	if s.cache != nil {
		if data, found := s.cache.Get(cacheKey); found {
			log.Debug("Design found in cache", zap.String("file_key", key))
			return data.([]byte), nil
		}
	}

	client := figma.NewClient(string(token),
		figma.WithBaseURL(s.cfg.Figma.BaseURL),
		figma.WithTimeout(s.cfg.Figma.Timeout),
		figma.WithLogger(log))
	data, err := client.GetFileData(ctx, key)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(cacheKey, data, cache.DefaultExpiration)
	}
	return data, nil
}
