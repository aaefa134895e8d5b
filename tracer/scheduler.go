package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers using feedback collected from previous frames.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. Assignments always add up to frameH; tracers
	// may be assigned 0 rows when there are more tracers than rows.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame proportionally to the speed estimate
// of each tracer.
type naiveScheduler struct {
}

// Create a new naive scheduler instance.
func NewNaiveScheduler() BlockScheduler {
	return &naiveScheduler{}
}

func (sch *naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	return assignBySpeed(tracers, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance
func NewPerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
//
// Tracers that were assigned no rows in the previous frame have no fresh
// feedback and are weighted by their speed estimate instead.
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	// If this is the first time we try to schedule or the number of tracers
	// has changed we need to reset the block assignments
	if len(sch.blockAssignment) != len(tracers) {
		sch.blockAssignment = assignBySpeed(tracers, frameH)
		return sch.blockAssignment
	}

	throughput := make([]float64, len(tracers))
	var total, activeSpeed float64
	for idx, tr := range tracers {
		// Stats of tracers that sat out the previous frame are stale.
		if sch.blockAssignment[idx] == 0 {
			continue
		}
		stats := tr.Stats()
		renderTime := float64(stats.RenderTime)
		if renderTime < 1 {
			renderTime = 1
		}
		throughput[idx] = float64(stats.BlockH) / renderTime
		total += throughput[idx]
		activeSpeed += float64(tr.SpeedEstimate())
	}

	// Idle tracers are rated by their speed estimate, scaled to the
	// throughput per unit of speed of the tracers that did render.
	perSpeed := 1.0
	if activeSpeed > 0 && total > 0 {
		perSpeed = total / activeSpeed
	}
	for idx, tr := range tracers {
		if sch.blockAssignment[idx] != 0 {
			continue
		}
		throughput[idx] = float64(tr.SpeedEstimate()) * perSpeed
		total += throughput[idx]
	}

	// No usable feedback (e.g. previous frame failed); start over.
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		sch.blockAssignment = assignBySpeed(tracers, frameH)
		return sch.blockAssignment
	}

	return sch.assign(throughput, total, frameH)
}

func (sch *perfectScheduler) assign(weights []float64, total float64, frameH uint32) []uint32 {
	scaler := float64(frameH) / total
	for idx, w := range weights {
		sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(w*scaler)))
	}
	balance(sch.blockAssignment, frameH)
	return sch.blockAssignment
}

// Distribute frame rows proportionally to tracer speed estimates.
func assignBySpeed(tracers []Tracer, frameH uint32) []uint32 {
	assignment := make([]uint32, len(tracers))
	if len(tracers) == 0 {
		return assignment
	}

	var total float64
	for _, tr := range tracers {
		total += float64(tr.SpeedEstimate())
	}
	if total <= 0 {
		total = float64(len(tracers))
	}

	scaler := float64(frameH) / total
	for idx, tr := range tracers {
		assignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.SpeedEstimate())*scaler)))
	}
	balance(assignment, frameH)
	return assignment
}

// Adjust an assignment so that its rows add up to frameH. Missing rows are
// appended to the first tracer; excess rows are removed from the largest
// blocks.
func balance(assignment []uint32, frameH uint32) {
	var scheduledRows uint32
	for _, rows := range assignment {
		scheduledRows += rows
	}

	if scheduledRows <= frameH {
		assignment[0] += frameH - scheduledRows
		return
	}

	for excess := scheduledRows - frameH; excess > 0; excess-- {
		largest := 0
		for idx, rows := range assignment {
			if rows > assignment[largest] {
				largest = idx
			}
		}
		assignment[largest]--
	}
}
