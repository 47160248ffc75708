package server

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"clipscribe/handlers"
	"clipscribe/middleware"
)

// New assembles the fiber application: middleware, the single-page UI and
// the JSON API.
func New(h *handlers.ApplicationHandler, log *logrus.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName: "clipscribe",
		// Uploads are whole media files.
		BodyLimit: 512 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(log))

	page, err := renderPage(pageData{Title: "ClipScribe", DefaultInterval: h.Interval})
	if err != nil {
		return nil, err
	}
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "clipscribe is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	transcriptions := apiV1.Group("/transcriptions")
	transcriptions.Post("/upload", h.TranscribeUpload)
	transcriptions.Post("/url", h.TranscribeURL)

	exports := apiV1.Group("/exports")
	exports.Post("/transcript", h.ExportTranscript)
	exports.Post("/segments", h.ExportSegments)

	return app, nil
}

type pageData struct {
	Title           string
	DefaultInterval float64
}

// renderPage executes the page template once at startup; the page itself is
// static and the browser drives everything through the JSON API.
func renderPage(data pageData) ([]byte, error) {
	tpl, err := template.New("index").Parse(pageHTML)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
