// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// newSingleEdgeEngine builds the smallest possible 2-neuron network for the
// single-edge tests: neuron 0 (pre, group 0) projects to neuron 1 (post,
// group 1) over one synapse at the given delay, hand-wired directly against
// the struct fields rather than through a builder API.
func newSingleEdgeEngine(delay, maxDelay int32, wt, maxSynWt float32, preFlags ...GroupFlags) *Engine {
	e := NewEngine(2, maxDelay)
	e.Decay.Defaults()
	setResting(&e.Neurons[0])
	setResting(&e.Neurons[1])

	g0 := GroupConfig{StartN: 0, EndN: 1}
	g0.Defaults()
	for _, f := range preFlags {
		g0.Flags.Set(f)
	}
	g1 := GroupConfig{StartN: 1, EndN: 2}
	g1.Defaults()
	e.SetGroups([]GroupConfig{g0, g1})
	e.Neurons[0].GroupID = 0
	e.Neurons[1].GroupID = 1

	e.NPre = []int32{0, 1}
	e.NPrePlastic = []int32{0, 0}
	e.CumulativePre = []int32{0, 0, 1}

	e.Synapses = []Synapse{{
		Wt:            wt,
		MaxSynWt:      maxSynWt,
		SynSpikeTime:  MaxTime,
		ConnIdsPreIdx: 0,
	}}

	e.CumulativePost = []int32{0, 1, 1}
	e.PostSynapticIds = []PostSynInfo{{Post: 1, Slot: 0}}
	for i := range e.PostDelayInfo {
		e.PostDelayInfo[i] = DelayInfo{}
	}
	// the D1 path always reads postDelayInfo index 0 (the 1 ms class); the
	// D2 path uses the delay offset as the index.
	idx := delay
	if delay == 1 {
		idx = 0
	}
	e.PostDelayInfo[0*(maxDelay+1)+idx] = DelayInfo{Start: 0, Length: 1}

	e.ConnGains = []ConnGain{{MulSynFast: 1, MulSynSlow: 1}}

	e.HasD1[0] = delay == 1
	e.HasD2[0] = delay >= 2
	e.HasD1[1] = false
	e.HasD2[1] = false

	return e
}

// fire forces neuron id to cross threshold on the next Step call, bypassing
// Izhikevich current injection so scenario timing is exact and independent
// of parameter tuning.
func fire(e *Engine, id int32) {
	e.Neurons[id].Voltage = SpikeThreshold + 1
}

// restingA, restingB, restingC, restingD are the standard regular-spiking
// Izhikevich parameters. setResting puts a neuron at v=c, u=b*c, just above
// its stable rest point (about -70 mV), so it drifts down and stays
// quiescent under integration alone, between explicit fire() calls.
const (
	restingA, restingB, restingC, restingD = 0.02, 0.2, -65, 8
)

func setResting(n *Neuron) {
	n.IzhA, n.IzhB, n.IzhC, n.IzhD = restingA, restingB, restingC, restingD
	n.Voltage = restingC
	n.Recovery = restingB * restingC
}
