// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing against
// target values.
const difTol = float32(1.0e-5)

// TestPreBeforePostSTDPExcExp: a plastic excitatory edge delivered at
// t=100, post fires at t=110; the weight change follows the exponential
// curve at dt=10.
func TestPreBeforePostSTDPExcExp(t *testing.T) {
	e := NewEngine(2, 1)
	e.NPrePlastic = []int32{0, 1}
	e.CumulativePre = []int32{0, 0, 1}
	e.Synapses = []Synapse{{Wt: 1, MaxSynWt: 10, SynSpikeTime: 100}}

	g := GroupConfig{}
	g.Defaults()
	g.ECurve = ExpCurve
	g.TauPlusInvExc, g.AlphaPlusExc = 0.05, 0.1
	g.Flags.Set(WithSTDP)
	g.Flags.Set(WithESTDP)

	e.applyPreBeforePostSTDP(1, &g, 110)

	want := float32(0.1) * math32.Exp(-10*0.05)
	got := e.Synapses[0].WtChange
	if math32.Abs(got-want) > difTol {
		t.Errorf("wtChange = %v, want %v", got, want)
	}
}

// TestPreBeforePostSTDPInhPulse: an inhibitory plastic edge under
// PulseCurve, re-checked against the same pre delivery at three successive
// post firings — inside the LTP window, inside the LTD window, and beyond
// both.
func TestPreBeforePostSTDPInhPulse(t *testing.T) {
	e := NewEngine(2, 1)
	e.NPrePlastic = []int32{0, 1}
	e.CumulativePre = []int32{0, 0, 1}
	e.Synapses = []Synapse{{Wt: -1, MaxSynWt: -10, SynSpikeTime: 100}}

	g := GroupConfig{}
	g.Defaults()
	g.ICurve = PulseCurve
	g.Lambda, g.Delta = 5, 20
	g.BetaLTP, g.BetaLTD = 0.02, 0.01
	g.Flags.Set(WithSTDP)
	g.Flags.Set(WithISTDP)

	e.applyPreBeforePostSTDP(1, &g, 104)
	if got, want := e.Synapses[0].WtChange, float32(-0.02); math32.Abs(got-want) > difTol {
		t.Errorf("after t=104: wtChange = %v, want %v", got, want)
	}

	e.applyPreBeforePostSTDP(1, &g, 110)
	if got, want := e.Synapses[0].WtChange, float32(-0.03); math32.Abs(got-want) > difTol {
		t.Errorf("after t=110: wtChange = %v, want %v", got, want)
	}

	before := e.Synapses[0].WtChange
	e.applyPreBeforePostSTDP(1, &g, 125)
	if got := e.Synapses[0].WtChange; got != before {
		t.Errorf("after t=125: wtChange changed to %v, want unchanged %v", got, before)
	}
}

// TestPostBeforePreSTDPExc: post fires at t=100, pre delivers (triggering
// the check) at t=108.
func TestPostBeforePreSTDPExc(t *testing.T) {
	e := NewEngine(2, 1)
	e.Synapses = []Synapse{{Wt: 1, MaxSynWt: 10}}
	e.Neurons[1].LastSpikeTime = 100

	postGroup := GroupConfig{}
	postGroup.Defaults()
	postGroup.TauMinusInvExc, postGroup.AlphaMinusExc = 0.05, 0.1
	postGroup.Flags.Set(WithSTDP)
	postGroup.Flags.Set(WithESTDP)
	e.SetGroups([]GroupConfig{{}, postGroup})
	e.Neurons[1].GroupID = 1

	preGroup := &GroupConfig{}
	preGroup.Flags.Set(TargetAMPA)

	e.applyPostBeforePreSTDP(0, preGroup, 1, 108)

	want := float32(0.1) * math32.Exp(-8*0.05)
	if got := e.Synapses[0].WtChange; math32.Abs(got-want) > difTol {
		t.Errorf("wtChange = %v, want %v", got, want)
	}
}

// TestSTPZeroGainIsNoop: STP with STPA=0 zeroes the delivered change,
// regardless of the u/x ring values in play.
func TestSTPZeroGainIsNoop(t *testing.T) {
	e := newSingleEdgeEngine(1, 1, 10, 10, TargetAMPA, WithSTP)
	e.Groups[0].STPA = 0
	// deliverOne at t=10 with delta=0 reads u at t=10 and x at t=9
	e.StpU[StpBufPos(0, 10, 1)] = 0.8
	e.StpX[StpBufPos(0, 9, 1)] = 0.5

	e.deliverOne(0, 0, e.CumulativePost[0], 0, 10)

	if got, want := e.Neurons[1].GAMPA, float32(0); got != want {
		t.Errorf("GAMPA = %v, want %v (STPA=0 must zero the delivered change)", got, want)
	}
}
