package launcher

// State is a step of the startup lifecycle.
//
//	Init -> Prechecking -> Aborted
//	                    -> Failed
//	                    -> ServerRunning -> Stopped
//	                                     -> Failed
type State int

const (
	Init State = iota
	Prechecking
	Aborted
	ServerRunning
	Stopped
	Failed
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Prechecking:
		return "prechecking"
	case Aborted:
		return "aborted"
	case ServerRunning:
		return "running"
	case Stopped:
		return "stopped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
