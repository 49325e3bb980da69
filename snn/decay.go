// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// StpBufPos returns the ring-buffer slot for neuron i at simulation time t,
// treating the STP buffer as a 2-D array with the ring dimension in time.
func StpBufPos(i, t, maxDelay int32) int32 {
	m := maxDelay + 1
	slot := t % m
	if slot < 0 {
		slot += m
	}
	return i*m + slot
}

// decayPhase opens each millisecond step: advance each WithSTP neuron's
// facilitation/depression ring buffer by one slot, then multiplicatively
// decay conductances (or reset current in current-based mode).
//
// u is updated before the conductance decay below reads anything, and
// strictly before delivery for this same tick reads u+/x-; the ring slot
// for t is only ever written once per step, here.
func (e *Engine) decayPhase(t int32) {
	for gi := range e.Groups {
		g := &e.Groups[gi]
		if g.Flags.Has(WithSTP) {
			// STP traces advance for Poisson neurons as well: a spike
			// generator group can be facilitating/depressing, and delivery
			// reads its ring slots like any other pre-synaptic neuron's.
			for i := g.StartN; i < g.EndN; i++ {
				cur := StpBufPos(i, t, e.MaxDelay)
				prev := StpBufPos(i, t-1, e.MaxDelay)
				uPrev := e.StpU[prev]
				xPrev := e.StpX[prev]
				e.StpU[cur] = uPrev * (1 - g.STPTauUInv)
				e.StpX[cur] = xPrev + (1-xPrev)*g.STPTauXInv
			}
		}
		if g.Flags.Has(Poisson) {
			continue
		}
		if e.ConductanceMode {
			for i := g.StartN; i < g.EndN; i++ {
				n := &e.Neurons[i]
				n.GAMPA *= e.Decay.AMPA
				n.GGABAa *= e.Decay.GABAa
				if e.NMDARise {
					n.GNMDAr *= e.Decay.NMDARise
					n.GNMDAd *= e.Decay.NMDA
				} else {
					n.GNMDA *= e.Decay.NMDA
				}
				if e.GABAbRise {
					n.GGABAbR *= e.Decay.GABAbRise
					n.GGABAbD *= e.Decay.GABAb
				} else {
					n.GGABAb *= e.Decay.GABAb
				}
			}
		} else {
			for i := g.StartN; i < g.EndN; i++ {
				e.Neurons[i].Current = 0
			}
		}
	}
}
