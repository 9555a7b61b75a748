package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"infrabed/config"
	"infrabed/pkg/infrabed"
	"infrabed/pkg/log"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		var apiErr *infrabed.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Error: status %d: %s\n", apiErr.StatusCode, apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	model      string
	configPath string
	baseURL    string
	batch      bool
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "embed [sentences...]",
		Short: "embed computes sentence embeddings with the infrabed API",
		Long: `embed computes sentence embeddings with the infrabed API.

One sentence is sent to the single-sentence endpoint, several to the batch
endpoint. Credentials come from config.yaml or INFRABED_API_KEY and
INFRABED_API_SECRET.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "model id (service default when empty)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "override the API base URL")
	cmd.Flags().BoolVar(&opts.batch, "batch", false, "use the batch endpoint even for one sentence")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts options, sentences []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.Client.BaseURL = opts.baseURL
	}
	if err := cfg.Client.Validate(); err != nil {
		return err
	}

	client, err := infrabed.New(cfg.Client.APIKey, cfg.Client.APISecret)
	if err != nil {
		return err
	}
	defer client.Close()
	if cfg.Client.BaseURL != "" {
		client.WithBaseURL(cfg.Client.BaseURL)
	}
	if opts.verbose {
		client.WithLogger(log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
		}))
	}

	input := infrabed.Sentence(sentences[0])
	if opts.batch || len(sentences) > 1 {
		input = infrabed.Sentences(sentences...)
	}

	res, err := client.GetEmbeddings(ctx, input, opts.model)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	return enc.Encode(res)
}
