// cmd/main.go

package main

//go:generate swag init -g cmd/main.go -d ../ -o ../docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/invoicing-microservice/smartinvoice/pkg/api"
	"github.com/invoicing-microservice/smartinvoice/pkg/config"
	"github.com/invoicing-microservice/smartinvoice/pkg/logging"
	"github.com/invoicing-microservice/smartinvoice/pkg/pdf"
	"github.com/invoicing-microservice/smartinvoice/pkg/store"
)

// @title           SmartInvoice PDF API
// @version         1.0.0
// @description     Renders themed invoice PDFs and stores invoice documents and logos.
// @host            localhost:8080
// @BasePath        /

func main() {
	// A missing .env is fine; real deployments use the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
		os.Exit(1)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "smartinvoice",
		Usage: "render premium invoice PDFs",
		Flags: config.Flags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:      "render",
				Usage:     "render an invoice JSON file to PDF",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "invoice JSON file", Required: true},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output PDF, defaults to <type>-<number>.pdf"},
				},
				Action: render,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrate,
			},
		},
	}
}

func setup(c *cli.Context) (config.Config, *zap.Logger, error) {
	cfg := config.FromContext(c)
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

func render(c *cli.Context) error {
	_, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	raw, err := os.ReadFile(c.String("in"))
	if err != nil {
		return fmt.Errorf("reading invoice: %w", err)
	}
	req, err := decodeRenderRequest(raw)
	if err != nil {
		return err
	}
	doc := &req.Invoice
	doc.ApplyTotals(req.Totals)
	for _, issue := range doc.Discrepancies() {
		log.Warn("invoice totals are inconsistent", zap.String("issue", issue))
	}

	out, err := pdf.NewGenerator(pdf.WithLogger(log)).Generate(doc)
	if err != nil {
		return err
	}

	path := c.String("out")
	if path == "" {
		path = api.Filename(doc)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	log.Info("pdf written", zap.String("path", path), zap.Int("bytes", len(out)),
		zap.String("type", string(doc.InvoiceType.OrSales())), zap.String("theme", string(doc.Theme)))
	return nil
}

func migrate(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.DatabaseURL == "" {
		return errors.New("database-url is required")
	}
	st, err := store.Open(c.Context, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Migrate(c.Context)
}

// decodeRenderRequest accepts the API request shape or a bare document.
func decodeRenderRequest(raw []byte) (api.RenderRequest, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return api.RenderRequest{}, fmt.Errorf("decoding invoice: %w", err)
	}
	var req api.RenderRequest
	if _, wrapped := probe["invoice"]; wrapped {
		if err := json.Unmarshal(raw, &req); err != nil {
			return req, fmt.Errorf("decoding invoice: %w", err)
		}
		return req, nil
	}
	if err := json.Unmarshal(raw, &req.Invoice); err != nil {
		return req, fmt.Errorf("decoding invoice: %w", err)
	}
	return req, nil
}
