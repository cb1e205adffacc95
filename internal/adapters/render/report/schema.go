package report

import (
	"time"

	"github.com/bnema/studio-autostop/internal/application"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/samber/lo"
)

type document struct {
	RunID             string               `json:"run_id" toml:"run_id"`
	CheckedAt         time.Time            `json:"checked_at" toml:"checked_at"`
	Idle              bool                 `json:"idle" toml:"idle"`
	Terminated        bool                 `json:"terminated" toml:"terminated"`
	ThresholdSeconds  int64                `json:"threshold_seconds" toml:"threshold_seconds"`
	IgnoreConnections bool                 `json:"ignore_connections" toml:"ignore_connections"`
	Sessions          int                  `json:"sessions" toml:"sessions"`
	Terminals         int                  `json:"terminals" toml:"terminals"`
	Contents          int                  `json:"contents" toml:"contents"`
	DecidedBy         string               `json:"decided_by,omitempty" toml:"decided_by,omitempty"`
	Identity          identityDocument     `json:"identity" toml:"identity"`
	Signals           []signalDocument     `json:"signals" toml:"signals"`
	Termination       *terminationDocument `json:"termination,omitempty" toml:"termination,omitempty"`
}

type identityDocument struct {
	DomainID  string `json:"domain_id" toml:"domain_id"`
	SpaceName string `json:"space_name" toml:"space_name"`
	AppType   string `json:"app_type" toml:"app_type"`
	AppName   string `json:"app_name" toml:"app_name"`
}

type signalDocument struct {
	Source  string `json:"source" toml:"source"`
	Signal  string `json:"signal" toml:"signal"`
	Skipped bool   `json:"skipped" toml:"skipped"`
	Reason  string `json:"reason,omitempty" toml:"reason,omitempty"`
}

type terminationDocument struct {
	RequestID string `json:"request_id,omitempty" toml:"request_id,omitempty"`
	Region    string `json:"region,omitempty" toml:"region,omitempty"`
}

func toDocument(report application.Report) document {
	doc := document{
		RunID:             report.RunID,
		CheckedAt:         report.CheckedAt.UTC(),
		Idle:              report.Idle,
		Terminated:        report.Terminated,
		ThresholdSeconds:  int64(report.Policy.Threshold.Seconds()),
		IgnoreConnections: report.Policy.IgnoreConnections,
		Sessions:          report.Sessions,
		Terminals:         report.Terminals,
		Contents:          report.Contents,
		Identity: identityDocument{
			DomainID:  report.Identity.DomainID,
			SpaceName: report.Identity.SpaceName,
			AppType:   report.Identity.AppType,
			AppName:   report.Identity.AppName,
		},
		Signals: lo.Map(report.Signals, func(result domain.SignalResult, _ int) signalDocument {
			return signalDocument{
				Source:  string(result.Source),
				Signal:  result.Signal.String(),
				Skipped: result.Skipped,
				Reason:  result.Reason,
			}
		}),
	}

	if source, ok := (domain.Verdict{Results: report.Signals}).DecidedBy(); ok {
		doc.DecidedBy = string(source)
	}

	if report.Termination != nil {
		doc.Termination = &terminationDocument{
			RequestID: report.Termination.RequestID,
			Region:    report.Termination.Region,
		}
	}

	return doc
}
