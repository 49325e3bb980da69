// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "testing"

// TestSTPBoundsStayInRange: stpu/stpx stay in (0,1] after decay when
// initialized in that range.
func TestSTPBoundsStayInRange(t *testing.T) {
	e := NewEngine(1, 1)
	g := GroupConfig{StartN: 0, EndN: 1}
	g.Defaults()
	g.Flags.Set(WithSTP)
	g.STPTauUInv = 0.2
	g.STPTauXInv = 0.3
	e.SetGroups([]GroupConfig{g})

	e.StpU[StpBufPos(0, 0, 1)] = 0.8
	e.StpX[StpBufPos(0, 0, 1)] = 0.5

	for tick := int32(1); tick < 20; tick++ {
		e.decayPhase(tick)
		u := e.StpU[StpBufPos(0, tick, 1)]
		x := e.StpX[StpBufPos(0, tick, 1)]
		if u <= 0 || u > 1 {
			t.Errorf("tick %d: stpu = %v, want in (0,1]", tick, u)
		}
		if x <= 0 || x > 1 {
			t.Errorf("tick %d: stpx = %v, want in (0,1]", tick, x)
		}
	}
}

// TestTT2Monotonic: TT2 is monotonically non-decreasing over its valid
// window, since each slot is a running prefix count.
func TestTT2Monotonic(t *testing.T) {
	const maxDelay = 3
	e := NewEngine(1, maxDelay)
	setResting(&e.Neurons[0])
	g := GroupConfig{StartN: 0, EndN: 1}
	g.Defaults()
	g.Flags.Set(TargetAMPA)
	e.SetGroups([]GroupConfig{g})
	e.HasD2[0] = true

	for tick := 0; tick < 30; tick++ {
		if tick%7 == 0 {
			fire(e, 0)
		}
		e.Step()
	}

	// the last step (tms = SimTimeMs-1) wrote slot SimTimeMs+maxDelay; slots
	// beyond it have not been written yet this second
	last := int(e.SimTimeMs + maxDelay)
	for i := 1; i <= last; i++ {
		if e.TT2[i] < e.TT2[i-1] {
			t.Errorf("TT2[%d]=%v < TT2[%d]=%v, want non-decreasing", i, e.TT2[i], i-1, e.TT2[i-1])
		}
	}
}

// TestSpikeCountD2SecMatchesFiringCount: spikeCountD2Sec at the end of a
// step equals the running count of D2 firings recorded so far this second.
func TestSpikeCountD2SecMatchesFiringCount(t *testing.T) {
	const maxDelay = 3
	e := NewEngine(1, maxDelay)
	setResting(&e.Neurons[0])
	g := GroupConfig{StartN: 0, EndN: 1}
	g.Defaults()
	g.Flags.Set(TargetAMPA)
	e.SetGroups([]GroupConfig{g})
	e.HasD2[0] = true

	want := int32(0)
	for tick := 0; tick < 20; tick++ {
		if tick%5 == 0 {
			fire(e, 0)
			want++
		}
		e.Step()
	}

	if e.SpikeCountD2Sec != want {
		t.Errorf("spikeCountD2Sec = %v, want %v (count of D2 firings recorded this second)", e.SpikeCountD2Sec, want)
	}
	if int32(len(e.FiringTableD2)) != want {
		t.Errorf("len(firingTableD2) = %v, want %v", len(e.FiringTableD2), want)
	}
}

// TestDeliveryConservation: the number of delivery events at time t
// equals, for every neuron, the count of its firings at t-d (for each
// configured delay offset d) times that offset's fan-out.
func TestDeliveryConservation(t *testing.T) {
	const maxDelay = 4
	e := NewEngine(3, maxDelay) // pre=0, post=1, post=2
	setResting(&e.Neurons[0])
	setResting(&e.Neurons[1])
	setResting(&e.Neurons[2])
	g0 := GroupConfig{StartN: 0, EndN: 1}
	g0.Defaults()
	g0.Flags.Set(TargetAMPA)
	g1 := GroupConfig{StartN: 1, EndN: 3}
	g1.Defaults()
	e.SetGroups([]GroupConfig{g0, g1})
	e.Neurons[0].GroupID = 0
	e.Neurons[1].GroupID = 1
	e.Neurons[2].GroupID = 1

	e.NPre = []int32{0, 1, 1}
	e.NPrePlastic = []int32{0, 0, 0}
	e.CumulativePre = []int32{0, 0, 1, 2}
	e.Synapses = []Synapse{
		{Wt: 5, MaxSynWt: 10, SynSpikeTime: MaxTime},
		{Wt: 7, MaxSynWt: 10, SynSpikeTime: MaxTime},
	}
	e.CumulativePost = []int32{0, 2, 2, 2}
	e.PostSynapticIds = []PostSynInfo{{Post: 1, Slot: 0}, {Post: 2, Slot: 0}}
	e.PostDelayInfo[0*(maxDelay+1)+3] = DelayInfo{Start: 0, Length: 2} // fan-out 2 at delay 3
	e.ConnGains = []ConnGain{{MulSynFast: 1, MulSynSlow: 1}}
	e.HasD2[0] = true

	for i := 0; i < 50; i++ {
		e.Step()
	}
	fire(e, 0)
	e.Step() // t=50, one firing recorded

	for e.SimTime < 54 {
		e.Step()
	}

	// delay 3 => delivered at t=53, fan-out 2 => exactly 2 delivery events.
	if got, want := e.Neurons[1].GAMPA, float32(5); got != want {
		t.Errorf("gAMPA[1] = %v, want %v (one delivery at fan-out edge 0)", got, want)
	}
	if got, want := e.Neurons[2].GAMPA, float32(7); got != want {
		t.Errorf("gAMPA[2] = %v, want %v (one delivery at fan-out edge 1)", got, want)
	}
}
