package cmd

import (
	"fmt"

	"github.com/bnema/studio-autostop/internal/adapters/activity"
	"github.com/bnema/studio-autostop/internal/adapters/jupyter"
	"github.com/bnema/studio-autostop/internal/adapters/metadata"
	"github.com/bnema/studio-autostop/internal/adapters/sagemaker"
	"github.com/bnema/studio-autostop/internal/application"
	"github.com/bnema/studio-autostop/internal/config"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/logger"
	"github.com/bnema/studio-autostop/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// wiring overrides adapters. Zero fields fall back to the real ones.
type wiring struct {
	inspector  ports.SessionInspector
	identities ports.IdentityReader
	files      ports.FileScanner
	terminator ports.AppTerminator
	clock      ports.Clock
	runIDs     func() string
}

type app struct {
	cfg     *config.Config
	policy  domain.Policy
	log     *logger.Logger
	service *application.Service
}

func wireApp(cmd *cobra.Command, w wiring) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("%w: set -t or --time", err)
	}

	log, err := logger.NewForStreams(cfg.Log, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	inspector := w.inspector
	if inspector == nil {
		client, err := jupyter.NewClient(cfg.JupyterClient(), nil)
		if err != nil {
			return nil, fmt.Errorf("wire jupyter client: %w", err)
		}
		log.Debug("jupyter server", zap.String("base_url", client.BaseURL()))
		inspector = client
	}

	identities := w.identities
	if identities == nil {
		identities = metadata.NewReader(cfg.Metadata.Path)
	}

	files := w.files
	if files == nil {
		files = activity.NewScanner(cfg.Activity.Root)
	}

	terminator := w.terminator
	if terminator == nil {
		terminator = sagemaker.NewTerminator()
	}

	service := application.NewService(inspector, identities, files, terminator, w.clock,
		application.WithLogger(log),
		application.WithContentsProbe(cfg.Jupyter.ProbeContents),
		application.WithRunIDs(w.runIDs),
	)

	return &app{
		cfg:     cfg,
		policy:  policy,
		log:     log,
		service: service,
	}, nil
}

func (a *app) sync() {
	_ = a.log.Sync()
}
