package domain

import (
	"fmt"
	"strings"
	"time"
)

// ActivityLayout is the timestamp format the Jupyter server uses for
// last_activity values.
const ActivityLayout = "2006-01-02T15:04:05.999999Z"

const DefaultExcludedFile = "autoshutdown.log"

type ActivityStamp string

// Time parses the stamp as UTC. The trailing zone marker is accepted in
// either case.
func (s ActivityStamp) Time() (time.Time, error) {
	raw := strings.TrimSpace(string(s))
	if strings.HasSuffix(raw, "z") {
		raw = raw[:len(raw)-1] + "Z"
	}

	parsed, err := time.ParseInLocation(ActivityLayout, raw, time.UTC)
	if err == nil {
		return parsed, nil
	}

	if parsed, rfcErr := time.Parse(time.RFC3339Nano, raw); rfcErr == nil {
		return parsed.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, string(s))
}

func StampFromTime(t time.Time) ActivityStamp {
	return ActivityStamp(t.UTC().Format(ActivityLayout))
}

type Policy struct {
	Threshold         time.Duration
	IgnoreConnections bool
	ExcludedFile      string
}

func NewPolicy(thresholdSeconds int, ignoreConnections bool) (Policy, error) {
	if thresholdSeconds <= 0 {
		return Policy{}, ErrMissingThreshold
	}

	return Policy{
		Threshold:         time.Duration(thresholdSeconds) * time.Second,
		IgnoreConnections: ignoreConnections,
		ExcludedFile:      DefaultExcludedFile,
	}, nil
}

// IsIdle reports whether more than the threshold has elapsed since last.
func (p Policy) IsIdle(now, last time.Time) bool {
	return now.Sub(last) > p.Threshold
}
