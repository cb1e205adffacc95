package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/logger"
	"github.com/bnema/studio-autostop/internal/ports"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Evaluator folds the kernel, terminal and filesystem signals, in that
// order, into a single idle verdict.
type Evaluator struct {
	policy domain.Policy
	files  ports.FileScanner
	clock  ports.Clock
	log    *logger.Logger
}

type signalSource struct {
	source domain.Source
	// fallback sources only run when the source before them had nothing
	// to report.
	fallback bool
	evaluate func(ctx context.Context) (domain.SignalResult, error)
}

func NewEvaluator(policy domain.Policy, files ports.FileScanner, clk ports.Clock, log *logger.Logger) *Evaluator {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Evaluator{
		policy: policy,
		files:  files,
		clock:  clk,
		log:    log,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, sessions []domain.Session, terminals []domain.Terminal) (domain.Verdict, error) {
	now := e.clock.Now().UTC()

	sources := []signalSource{
		{
			source: domain.SourceKernels,
			evaluate: func(context.Context) (domain.SignalResult, error) {
				return e.kernelSignal(now, sessions), nil
			},
		},
		{
			source: domain.SourceTerminals,
			evaluate: func(context.Context) (domain.SignalResult, error) {
				return e.terminalSignal(now, terminals), nil
			},
		},
		{
			source:   domain.SourceFilesystem,
			fallback: true,
			evaluate: func(ctx context.Context) (domain.SignalResult, error) {
				return e.filesystemSignal(ctx, now)
			},
		},
	}

	verdict := domain.NewVerdict()
	previous := domain.SignalNone
	for _, src := range sources {
		if !verdict.Idle || (src.fallback && previous != domain.SignalNone) {
			verdict.Record(domain.SignalResult{Source: src.source, Skipped: true})
			continue
		}

		result, err := src.evaluate(ctx)
		if err != nil {
			return verdict, fmt.Errorf("evaluate %s: %w", src.source, err)
		}
		verdict.Record(result)
		previous = result.Signal
	}

	return verdict, nil
}

func (e *Evaluator) kernelSignal(now time.Time, sessions []domain.Session) domain.SignalResult {
	if len(sessions) == 0 {
		e.log.Info("no kernel sessions found")
		return domain.SignalResult{Source: domain.SourceKernels, Signal: domain.SignalNone, Reason: "no kernel sessions"}
	}

	e.log.Info("checking kernel sessions",
		zap.Int("sessions", len(sessions)),
		zap.Int("connections", lo.SumBy(sessions, func(s domain.Session) int { return s.Kernel.Connections })),
		zap.Bool("ignore_connections", e.policy.IgnoreConnections),
	)

	result := domain.SignalResult{
		Source: domain.SourceKernels,
		Signal: domain.SignalIdle,
		Reason: fmt.Sprintf("%d kernel(s) idle for more than %s", len(sessions), e.policy.Threshold),
	}

	// Every session is inspected so each busy one is logged.
	for _, session := range sessions {
		reason, busy := e.sessionBusy(now, session)
		if busy && result.Signal != domain.SignalBusy {
			result.Signal = domain.SignalBusy
			result.Reason = reason
		}
	}

	return result
}

func (e *Evaluator) sessionBusy(now time.Time, session domain.Session) (string, bool) {
	kernel := session.Kernel
	log := e.log.WithFields(
		zap.String("source", string(domain.SourceKernels)),
		zap.String("session_id", session.ID),
		zap.String("path", session.Path),
		zap.String("kernel_state", kernel.ExecutionState),
		zap.Int("connections", kernel.Connections),
	)

	if !kernel.IsIdle() {
		log.Info("space is not idle: kernel is executing")
		return fmt.Sprintf("kernel %s is %s", kernel.ID, kernel.ExecutionState), true
	}

	if !e.policy.IgnoreConnections && kernel.Connections > 0 {
		log.Info("space is not idle: kernel has connected clients")
		return fmt.Sprintf("kernel %s has %d connection(s)", kernel.ID, kernel.Connections), true
	}

	idle, err := e.idleSince(now, kernel.LastActivity)
	if err != nil {
		log.Warn("treating kernel as active: unparsable last activity", zap.String("last_activity", string(kernel.LastActivity)), zap.Error(err))
		return fmt.Sprintf("kernel %s has unparsable last activity %q", kernel.ID, kernel.LastActivity), true
	}
	if !idle {
		log.Info("space is not idle: kernel active within threshold",
			zap.String("last_activity", string(kernel.LastActivity)),
			zap.Bool("ignore_connections", e.policy.IgnoreConnections),
		)
		return fmt.Sprintf("kernel %s active at %s", kernel.ID, kernel.LastActivity), true
	}

	log.Debug("kernel idle beyond threshold", zap.String("last_activity", string(kernel.LastActivity)))
	return "", false
}

func (e *Evaluator) terminalSignal(now time.Time, terminals []domain.Terminal) domain.SignalResult {
	if len(terminals) == 0 {
		e.log.Info("no terminal sessions found")
		return domain.SignalResult{Source: domain.SourceTerminals, Signal: domain.SignalNone, Reason: "no terminal sessions"}
	}

	e.log.Info("no active notebook sessions, checking terminal sessions", zap.Int("terminals", len(terminals)))

	result := domain.SignalResult{
		Source: domain.SourceTerminals,
		Signal: domain.SignalIdle,
		Reason: fmt.Sprintf("%d terminal(s) idle for more than %s", len(terminals), e.policy.Threshold),
	}

	for _, terminal := range terminals {
		log := e.log.WithFields(
			zap.String("source", string(domain.SourceTerminals)),
			zap.String("terminal", terminal.Name),
			zap.String("last_activity", string(terminal.LastActivity)),
		)

		reason := ""
		idle, err := e.idleSince(now, terminal.LastActivity)
		switch {
		case err != nil:
			log.Warn("treating terminal as active: unparsable last activity", zap.Error(err))
			reason = fmt.Sprintf("terminal %s has unparsable last activity %q", terminal.Name, terminal.LastActivity)
		case !idle:
			log.Info("space is not idle: terminal session is still active")
			reason = fmt.Sprintf("terminal %s active at %s", terminal.Name, terminal.LastActivity)
		default:
			continue
		}

		if result.Signal != domain.SignalBusy {
			result.Signal = domain.SignalBusy
			result.Reason = reason
		}
	}

	return result
}

func (e *Evaluator) filesystemSignal(ctx context.Context, now time.Time) (domain.SignalResult, error) {
	result := domain.SignalResult{Source: domain.SourceFilesystem, Signal: domain.SignalIdle}
	if e.files == nil {
		result.Signal = domain.SignalNone
		result.Reason = "no file scanner configured"
		return result, nil
	}

	e.log.Info("no active notebook or terminal sessions, checking file modification times")

	checked := 0
	err := e.files.Scan(ctx, func(file domain.FileRecord) bool {
		if filepath.Base(file.Path) == e.policy.ExcludedFile {
			return true
		}
		checked++

		// mtimes compare at second resolution.
		modified := file.ModTime.UTC().Truncate(time.Second)
		if e.policy.IsIdle(now, modified) {
			return true
		}

		e.log.Info("space is not idle: file modified within threshold",
			zap.String("source", string(domain.SourceFilesystem)),
			zap.String("path", file.Path),
			zap.Time("modified_at", modified),
		)
		result.Signal = domain.SignalBusy
		result.Reason = fmt.Sprintf("%s modified at %s", file.Path, domain.StampFromTime(modified))
		return false
	})
	if err != nil {
		return result, fmt.Errorf("scan files: %w", err)
	}

	if result.Signal == domain.SignalIdle {
		result.Reason = fmt.Sprintf("%d file(s) untouched for more than %s", checked, e.policy.Threshold)
	}

	return result, nil
}

func (e *Evaluator) idleSince(now time.Time, stamp domain.ActivityStamp) (bool, error) {
	last, err := stamp.Time()
	if err != nil {
		return false, err
	}

	return e.policy.IsIdle(now, last), nil
}
