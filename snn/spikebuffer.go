// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// ScheduledSpike is one entry in the external spike buffer: neuron neurID
// (belonging to group groupID) is to be delivered into the firing tables
// at absolute simulation time Time.
type ScheduledSpike struct {
	NeurID  int32
	GroupID int32
	Time    int32
}

// spikeBuffer is a scheduling queue keyed by absolute delivery time.
// Poisson and callback sources, and any caller of ScheduleSpike, push into
// it; the engine only ever drains its own current tick.
type spikeBuffer struct {
	byTime map[int32][]ScheduledSpike
}

func newSpikeBuffer() *spikeBuffer {
	return &spikeBuffer{byTime: make(map[int32][]ScheduledSpike)}
}

func (b *spikeBuffer) push(s ScheduledSpike) {
	b.byTime[s.Time] = append(b.byTime[s.Time], s)
}

func (b *spikeBuffer) pop(t int32) []ScheduledSpike {
	evs := b.byTime[t]
	delete(b.byTime, t)
	return evs
}

// ScheduleSpike inserts an externally generated spike into the buffer at
// offset relativeMs from the current simulation time. relativeMs must lie
// in [0, Engine.TimeSlice).
func (e *Engine) ScheduleSpike(neurID int32, relativeMs int32) {
	if relativeMs < 0 || relativeMs >= e.TimeSlice {
		panic(&ConfigError{Msg: "ScheduleSpike: relativeMs out of [0, TimeSlice)"})
	}
	e.spikeBuf.push(ScheduledSpike{
		NeurID:  neurID,
		GroupID: e.Neurons[neurID].GroupID,
		Time:    e.SimTime + relativeMs,
	})
}

// drainSpikeBuffer pops every spike scheduled for the current tick and
// folds it into the firing tables exactly as a detected firing would be;
// the D1/D2 classification applies identically to externally injected
// spikes.
func (e *Engine) drainSpikeBuffer(t int32) {
	for _, ev := range e.spikeBuf.pop(t) {
		e.appendFiring(ev.NeurID, t)
	}
}
