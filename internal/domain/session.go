package domain

const KernelStateIdle = "idle"

type Kernel struct {
	ID             string
	Name           string
	ExecutionState string
	Connections    int
	LastActivity   ActivityStamp
}

// IsIdle reports whether the kernel is not executing anything. It says
// nothing about how long ago the kernel was last used.
func (k Kernel) IsIdle() bool {
	return k.ExecutionState == KernelStateIdle
}

type Session struct {
	ID     string
	Path   string
	Kernel Kernel
}

type Terminal struct {
	Name         string
	LastActivity ActivityStamp
}
