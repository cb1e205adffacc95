package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/logger"
	"github.com/bnema/studio-autostop/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	inspector     ports.SessionInspector
	identities    ports.IdentityReader
	files         ports.FileScanner
	terminator    ports.AppTerminator
	clock         ports.Clock
	log           *logger.Logger
	probeContents bool
	newRunID      func() string
}

type Option func(*Service)

func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithContentsProbe toggles the contents listing done before evaluation.
// The listing only confirms the server answers; it never affects the verdict.
func WithContentsProbe(enabled bool) Option {
	return func(s *Service) {
		s.probeContents = enabled
	}
}

func WithRunIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newRunID = next
		}
	}
}

func NewService(inspector ports.SessionInspector, identities ports.IdentityReader, files ports.FileScanner, terminator ports.AppTerminator, clk ports.Clock, opts ...Option) *Service {
	if clk == nil {
		clk = clock.New()
	}

	s := &Service{
		inspector:     inspector,
		identities:    identities,
		files:         files,
		terminator:    terminator,
		clock:         clk,
		log:           logger.NewNop(),
		probeContents: true,
		newRunID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Check evaluates idleness without terminating anything.
func (s *Service) Check(ctx context.Context, policy domain.Policy) (Report, error) {
	runID := s.newRunID()
	return s.check(ctx, policy, runID, s.log.WithRunID(runID))
}

// Run evaluates idleness and deletes the app when it is idle. The
// terminator is called at most once.
func (s *Service) Run(ctx context.Context, policy domain.Policy, region string) (Report, error) {
	runID := s.newRunID()
	log := s.log.WithRunID(runID)

	report, err := s.check(ctx, policy, runID, log)
	if err != nil {
		return report, err
	}

	log = log.WithFields(
		zap.String("app_type", report.Identity.AppType),
		zap.String("space", report.Identity.SpaceName),
	)

	if !report.Idle {
		log.Info("space not idle, pass")
		return report, nil
	}

	log.Info("initiating shutdown",
		zap.String("domain_id", report.Identity.DomainID),
		zap.String("app_name", report.Identity.AppName),
		zap.String("region", region),
	)

	result, err := s.terminator.Terminate(ctx, report.Identity, region)
	if err != nil {
		log.WithError(err).Error("shutdown failed")
		return report, fmt.Errorf("%w: %w", domain.ErrTerminationFailed, err)
	}

	report.Terminated = true
	report.Termination = &result
	log.Info("space shutdown requested", zap.String("request_id", result.RequestID))

	return report, nil
}

func (s *Service) check(ctx context.Context, policy domain.Policy, runID string, log *logger.Logger) (Report, error) {
	report := Report{
		RunID:     runID,
		CheckedAt: s.clock.Now().UTC(),
		Policy:    policy,
	}

	log.Info("checking space idleness",
		zap.Duration("threshold", policy.Threshold),
		zap.Bool("ignore_connections", policy.IgnoreConnections),
	)

	sessions, err := s.inspector.ListSessions(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: list sessions: %w", domain.ErrInspectorUnavailable, err)
	}
	report.Sessions = len(sessions)

	terminals, err := s.inspector.ListTerminals(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: list terminals: %w", domain.ErrInspectorUnavailable, err)
	}
	report.Terminals = len(terminals)

	if s.probeContents {
		contents, err := s.inspector.ListContents(ctx)
		if err != nil {
			return report, fmt.Errorf("%w: list contents: %w", domain.ErrInspectorUnavailable, err)
		}
		report.Contents = len(contents)
		log.Debug("contents probe answered", zap.Int("entries", len(contents)))
	}

	identity, err := s.identities.Read(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrIdentityUnavailable, err)
		}
		return report, err
	}
	report.Identity = identity

	verdict, err := NewEvaluator(policy, s.files, s.clock, log).Evaluate(ctx, sessions, terminals)
	report.Signals = verdict.Results
	if err != nil {
		return report, err
	}
	report.Idle = verdict.Idle

	if source, busy := verdict.DecidedBy(); busy {
		log.Info("idle state set to false", zap.String("decided_by", string(source)))
	} else {
		log.Info("space is idle", zap.Duration("threshold", policy.Threshold))
	}

	return report, nil
}
