package domain

type Signal int

const (
	SignalNone Signal = iota
	SignalIdle
	SignalBusy
)

func (s Signal) String() string {
	switch s {
	case SignalIdle:
		return "idle"
	case SignalBusy:
		return "busy"
	default:
		return "none"
	}
}

func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Source string

const (
	SourceKernels    Source = "kernels"
	SourceTerminals  Source = "terminals"
	SourceFilesystem Source = "filesystem"
)

type SignalResult struct {
	Source  Source
	Signal  Signal
	Reason  string
	Skipped bool
}

// Verdict is idle until a source reports busy. It is never upgraded back.
type Verdict struct {
	Idle    bool
	Results []SignalResult
}

func NewVerdict() Verdict {
	return Verdict{Idle: true}
}

func (v *Verdict) Record(result SignalResult) {
	v.Results = append(v.Results, result)
	if result.Signal == SignalBusy {
		v.Idle = false
	}
}

// DecidedBy returns the source that marked the verdict busy, if any.
func (v Verdict) DecidedBy() (Source, bool) {
	for _, result := range v.Results {
		if result.Signal == SignalBusy {
			return result.Source, true
		}
	}

	return "", false
}
