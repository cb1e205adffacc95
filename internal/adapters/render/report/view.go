package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/studio-autostop/internal/application"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(report application.Report, s styles) string {
	lines := []string{
		s.title.Render("Space idleness check"),
		s.header.Render(fmt.Sprintf("run: %s  checked: %s", report.RunID, formatCheckedAt(report.CheckedAt))),
		s.detail.Render(spaceLine(report.Identity)),
		s.detail.Render(fmt.Sprintf("threshold: %s  ignore connections: %t", report.Policy.Threshold, report.Policy.IgnoreConnections)),
		s.detail.Render(fmt.Sprintf("sessions: %d  terminals: %d  contents: %d", report.Sessions, report.Terminals, report.Contents)),
	}

	lines = append(lines, s.section.Render(renderSignals(report.Signals, s)))
	lines = append(lines, s.section.Render(renderVerdict(report, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func spaceLine(identity domain.Identity) string {
	if identity.SpaceName == "" {
		return "space: unknown"
	}

	return fmt.Sprintf("space: %s (%s/%s)  domain: %s", identity.SpaceName, identity.AppType, identity.AppName, identity.DomainID)
}

func renderSignals(results []domain.SignalResult, s styles) string {
	if len(results) == 0 {
		return s.none.Render("No signals evaluated.")
	}

	rows := make([]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, signalRow(result, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func signalRow(result domain.SignalResult, s styles) string {
	label := s.source.Render(fmt.Sprintf("%-11s", result.Source))

	state := signalLabel(result)
	var styled string
	switch {
	case result.Skipped:
		styled = s.none.Render(fmt.Sprintf("%-8s", state))
	case result.Signal == domain.SignalBusy:
		styled = s.busy.Render(fmt.Sprintf("%-8s", state))
	case result.Signal == domain.SignalIdle:
		styled = s.idle.Render(fmt.Sprintf("%-8s", state))
	default:
		styled = s.none.Render(fmt.Sprintf("%-8s", state))
	}

	row := label + " " + styled
	if reason := strings.TrimSpace(result.Reason); reason != "" {
		row += " " + s.reason.Render(reason)
	}

	return row
}

func signalLabel(result domain.SignalResult) string {
	if result.Skipped {
		return "skipped"
	}
	return result.Signal.String()
}

func renderVerdict(report application.Report, s styles) string {
	var verdict string
	if report.Idle {
		verdict = s.idle.Render("verdict: IDLE")
	} else {
		verdict = s.busy.Render("verdict: NOT IDLE")
		if source, ok := (domain.Verdict{Results: report.Signals}).DecidedBy(); ok {
			verdict += " " + s.reason.Render(fmt.Sprintf("(decided by %s)", source))
		}
	}

	lines := []string{verdict}
	switch {
	case report.Terminated && report.Termination != nil:
		lines = append(lines, s.warning.Render(fmt.Sprintf("terminated: delete app requested (request %s)", requestLabel(report.Termination.RequestID))))
	case report.Terminated:
		lines = append(lines, s.warning.Render("terminated: delete app requested"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func requestLabel(id string) string {
	if id == "" {
		return "unknown"
	}
	return id
}

func formatCheckedAt(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}
