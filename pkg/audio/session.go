package audio

import (
	"fmt"

	"github.com/shirou/gopsutil/process"
)

type Session struct {
	HolderPid  uint32 `json:"pid,omitempty"`
	HolderName string `json:"process,omitempty"`
}

func (this Session) String() string {
	if this.HolderName != "" {
		return fmt.Sprintf("%d:%s", this.HolderPid, this.HolderName)
	}
	return fmt.Sprintf("%d", this.HolderPid)
}

// ResolveHolderName looks up the name of the process which holds this
// session. Best effort; the session stays usable if the process is already
// gone or not inspectable.
func (this *Session) ResolveHolderName() {
	p, err := process.NewProcess(int32(this.HolderPid))
	if err != nil {
		return
	}
	if name, err := p.Name(); err == nil {
		this.HolderName = name
	}
}

type Sessions []Session

func (this Sessions) IsZero() bool {
	return len(this) <= 0
}

func (this Sessions) HasContent() bool {
	return !this.IsZero()
}

func (this Sessions) ResolveHolderNames() {
	for i := range this {
		this[i].ResolveHolderName()
	}
}
