package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoicemate/internal/config"
	"github.com/rezonia/invoicemate/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	sendTimeoutS time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the invoice email submission API.

The API provides endpoints for:
  - POST /api/v1/send-email - Email an invoice with its PDF attached
  - GET  /health            - Health check
  - GET  /health/email      - SMTP connectivity check
  - GET  /config            - Credential presence (never values)

SMTP credentials are read from the environment (SMTP_HOST, SMTP_PORT,
EMAIL_USER, EMAIL_PASS); a .env file in the working directory is loaded
if present.

Examples:
  # Start server on default port
  invoicemate serve

  # Start on a custom address in debug mode
  invoicemate serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default from ADDR, else :8080)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&sendTimeoutS, "send-timeout", 30*time.Second, "Per-request email send timeout")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 2*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if serverAddr != "" {
		cfg.Address = serverAddr
	}

	srvConfig := &server.Config{
		Address:      cfg.Address,
		SMTP:         cfg.SMTP,
		SendTimeout:  sendTimeoutS,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(srvConfig, server.WithLogger(newLogger()))

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", cfg.Address)
	if cfg.SMTP.Configured() {
		fmt.Println("Email delivery enabled")
	} else {
		fmt.Println("Email delivery disabled (missing SMTP credentials)")
	}

	return srv.Run()
}
