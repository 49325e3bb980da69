// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// appendFiring records that neuron i fired (or was externally spiked) at
// time t: it stamps LastSpikeTime, appends to the D1/D2 tables per the
// neuron's fixed delay classification, and increments the per-second
// spike counters. If either table is at capacity, it sets
// Engine.SpikeBufferFull and stops recording further firings for the rest
// of the step; delivery still runs on what was recorded.
func (e *Engine) appendFiring(i, t int32) {
	if e.SpikeBufferFull {
		return
	}
	e.Neurons[i].LastSpikeTime = t
	if e.HasD1[i] {
		if len(e.FiringTableD1) >= cap(e.FiringTableD1) {
			e.SpikeBufferFull = true
			e.LastOverflowAt = t
			e.logf("snn: D1 firing table full at t=%d", t)
			return
		}
		e.FiringTableD1 = append(e.FiringTableD1, i)
		e.SpikeCountD1Sec++
	}
	if e.HasD2[i] {
		if len(e.FiringTableD2) >= cap(e.FiringTableD2) {
			e.SpikeBufferFull = true
			e.LastOverflowAt = t
			e.logf("snn: D2 firing table full at t=%d", t)
			return
		}
		e.FiringTableD2 = append(e.FiringTableD2, i)
		e.SpikeCountD2Sec++
	}
	e.SpikeCountSec++
}

// firingDetect resets every non-Poisson neuron whose voltage has crossed
// threshold, appends it to the firing tables, and triggers pre-before-post
// STDP on its incoming plastic edges, then records the delay-window
// markers. t is the absolute, monotonic simulation
// time (used for LastSpikeTime/STDP timestamps); tms is t mod 1000, used to
// index the TT1/TT2 marker tables, which only span one second's window.
func (e *Engine) firingDetect(t, tms int32) {
	for gi := range e.Groups {
		if e.SpikeBufferFull {
			break
		}
		g := &e.Groups[gi]
		if g.Flags.Has(Poisson) {
			continue
		}
		for i := g.StartN; i < g.EndN; i++ {
			n := &e.Neurons[i]
			if n.Voltage < SpikeThreshold {
				continue
			}
			n.Voltage = n.IzhC
			n.Recovery += n.IzhD
			e.appendFiring(i, t)
			if e.SpikeBufferFull {
				break
			}
			e.applyPreBeforePostSTDP(i, g, t)
		}
	}

	markIdx := tms + e.MaxDelay + 1
	e.TT1[markIdx] = e.SpikeCountD1Sec
	e.TT2[markIdx] = e.SpikeCountD2Sec
}
