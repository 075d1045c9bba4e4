package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/forager/internal/handlers"
	"github.com/lehigh-university-libraries/forager/internal/iiif"
	"github.com/lehigh-university-libraries/forager/internal/source"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		bind                string
		presentationBaseURL string
		imageBaseURL        string
		urlPathSep          string
	)

	cmd := &cobra.Command{
		Use:   "serve SOURCE",
		Short: "Start the manifest server",
		Long: `Starts the manifest server over the given source directory.

A request for /{id}/manifest resolves the id to a directory under SOURCE
(every occurrence of the path separator in the id names one level of
nesting) and answers with a IIIF Presentation API v2 manifest describing
the images found there.`,
		Example: `  # Serve /data/books with image derivatives hosted on a IIIF image server
  forager serve /data/books --image-api https://images.example.edu/iiif/2

  # Custom bind address and presentation base
  forager serve /data/books -b 0.0.0.0:8080 -p https://iiif.example.edu --image-api https://images.example.edu/iiif/2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presentationBaseURL == "" {
				presentationBaseURL = "http://" + bind
			}
			baseURLs := iiif.NewBaseURLs(presentationBaseURL, imageBaseURL)
			manifestSource := source.New(args[0], baseURLs, urlPathSep)
			handler := handlers.New(manifestSource)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/", handler.HandleManifest)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			server := &http.Server{
				Addr:    bind,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Serving manifests", "addr", bind, "source", args[0])
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&bind, "bind", "b", "localhost:8989", "Bind address and port")
	cmd.Flags().StringVarP(&presentationBaseURL, "presentation-api", "p", "", "Base URL for all IIIF Presentation API urls (default http://{bind})")
	cmd.Flags().StringVarP(&imageBaseURL, "image-api", "i", "", "Base URL for all IIIF Image API urls")
	cmd.Flags().StringVarP(&urlPathSep, "url-path-sep", "u", "-", "Separator for paths when turning these into ids")
	if err := cmd.MarkFlagRequired("image-api"); err != nil {
		panic(err)
	}

	return cmd
}
