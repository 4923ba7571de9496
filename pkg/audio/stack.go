package audio

import "github.com/lx-s/Mute/pkg/common"

// Stack owns the lifecycle of the platform audio subsystem: Initialize has
// to be called before FindEndpoints, Dispose once afterwards.

func (this *Stack) SetupConfiguration(_ common.FlagHolder) {}
