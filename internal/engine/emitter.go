package engine

// ChanEmitter forwards snapshots to a channel for a renderer's event loop.
type ChanEmitter struct {
	Ch chan<- Snapshot
}

// Emit sends the snapshot to the channel (non-blocking; drops if full).
// Renderers re-read the latest state on receipt, so a dropped snapshot only
// skips an intermediate frame.
func (e *ChanEmitter) Emit(s Snapshot) {
	select {
	case e.Ch <- s:
	default:
	}
}
