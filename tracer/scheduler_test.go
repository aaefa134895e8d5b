package tracer

import (
	"testing"
	"time"

	"github.com/achilleasa/diorama/scene"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		speed1   float32
		speed2   float32
		frameH   uint32
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		{1, 2, 10, 4, 6},
		{2, 1, 10, 7, 3},
		{1, 1000, 10, 1, 9},
		// more tracers than rows
		{1, 1, 1, 0, 1},
	}

	for index, s := range specs {
		tr1 := makeMockTracer("mock-1", s.speed1)
		tr2 := makeMockTracer("mock-2", s.speed2)
		tracers := []Tracer{tr1, tr2}

		sch := NewNaiveScheduler()
		blockAssignment := sch.Schedule(tracers, s.frameH)

		if blockAssignment[0] != s.expRows1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rows; got %d", index, s.expRows1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expRows2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rows; got %d", index, s.expRows2, blockAssignment[1])
		}
	}
}

func TestPerfectScheduler(t *testing.T) {
	type spec struct {
		frameH   uint32
		rTime1   time.Duration
		rTime2   time.Duration
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		// First call always behaves like the naive scheduler
		{10, time.Duration(1), time.Duration(5), 5, 5},
		// Second call should use the render times to assign rows
		{10, time.Duration(1), time.Duration(5), 9, 1},
		// This time tracer 2 performed much better
		{10, time.Duration(5), time.Duration(1), 7, 3},
	}

	// Tracers have same speed
	tr1 := makeMockTracer("mock-1", 1)
	tr2 := makeMockTracer("mock-2", 1)
	tracers := []Tracer{tr1, tr2}

	sch := NewPerfectScheduler()
	for index, s := range specs {
		tr1.stats.RenderTime = s.rTime1
		tr2.stats.RenderTime = s.rTime2

		blockAssignment := sch.Schedule(tracers, s.frameH)

		if blockAssignment[0] != s.expRows1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rows; got %d", index, s.expRows1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expRows2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rows; got %d", index, s.expRows2, blockAssignment[1])
		}

		tr1.stats.BlockH = blockAssignment[0]
		tr2.stats.BlockH = blockAssignment[1]
	}
}

func TestPerfectSchedulerIgnoresStaleStats(t *testing.T) {
	tracers := []Tracer{
		makeMockTracer("mock-1", 1),
		makeMockTracer("mock-2", 1),
		makeMockTracer("mock-3", 1),
	}

	sch := NewPerfectScheduler()
	blockAssignment := sch.Schedule(tracers, 2)
	exp := []uint32{0, 1, 1}
	for i := range exp {
		if blockAssignment[i] != exp[i] {
			t.Fatalf("expected initial assignment %v; got %v", exp, blockAssignment)
		}
	}

	// Tracer 0 sat out the last frame but still reports an old, much
	// faster frame.
	tracers[0].(*mockTracer).stats = &Stats{BlockH: 100, RenderTime: time.Duration(1)}
	tracers[1].(*mockTracer).stats = &Stats{BlockH: 1, RenderTime: time.Duration(1)}
	tracers[2].(*mockTracer).stats = &Stats{BlockH: 1, RenderTime: time.Duration(1)}

	blockAssignment = sch.Schedule(tracers, 30)
	exp = []uint32{10, 10, 10}
	for i := range exp {
		if blockAssignment[i] != exp[i] {
			t.Fatalf("expected assignment %v; got %v", exp, blockAssignment)
		}
	}
}

func TestBalance(t *testing.T) {
	type spec struct {
		in     []uint32
		frameH uint32
		exp    []uint32
	}
	specs := []spec{
		{[]uint32{3, 3}, 10, []uint32{7, 3}},
		{[]uint32{1, 1, 1, 1}, 2, []uint32{0, 0, 1, 1}},
		{[]uint32{5, 2}, 6, []uint32{4, 2}},
	}

	for index, s := range specs {
		balance(s.in, s.frameH)
		for i := range s.exp {
			if s.in[i] != s.exp[i] {
				t.Fatalf("[spec %d] expected assignment %v; got %v", index, s.exp, s.in)
			}
		}
	}
}

type mockTracer struct {
	id    string
	speed float32
	stats *Stats
}

func makeMockTracer(id string, speed float32) *mockTracer {
	return &mockTracer{
		id:    id,
		speed: speed,
		stats: &Stats{},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) SpeedEstimate() float32 {
	return mt.speed
}

func (mt *mockTracer) Setup(_ *scene.Scene) error {
	return nil
}

func (mt *mockTracer) Close() {
}

func (mt *mockTracer) Enqueue(_ BlockRequest) {
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}
