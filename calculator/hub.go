package calculator

import (
	"sync"

	"thermaldesign/model"
)

// CalcHub pushes sweep progress to whoever listens on Progress.
// Sends never block: a slow listener only misses intermediate updates.
type CalcHub struct {
	Progress chan model.ProgressData

	mu    sync.Mutex
	runID string
	done  int
	total int
}

func NewCalcHub(buffer int) *CalcHub {
	return &CalcHub{
		Progress: make(chan model.ProgressData, buffer),
	}
}

func (h *CalcHub) start(runID string, total int) {
	h.mu.Lock()
	h.runID, h.done, h.total = runID, 0, total
	h.mu.Unlock()
}

func (h *CalcHub) add(n int) {
	h.mu.Lock()
	h.done += n
	p := model.ProgressData{RunID: h.runID, Done: h.done, Total: h.total}
	h.mu.Unlock()
	select {
	case h.Progress <- p:
	default:
	}
}

// Snapshot returns the latest progress.
func (h *CalcHub) Snapshot() model.ProgressData {
	h.mu.Lock()
	defer h.mu.Unlock()
	return model.ProgressData{RunID: h.runID, Done: h.done, Total: h.total}
}
