// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/chewxy/math32"

// weightCommitDelta evaluates the four-way STANDARD/DA_MOD x
// homeostasis/no-homeostasis weight-change formula for one plastic edge.
// The STANDARD+homeostasis case folds in the raw wtChange, not the
// stdpScaleFactor-scaled eff; the other three cases (STANDARD without
// homeostasis, and both DA_MOD cases) use eff.
func weightCommitDelta(daMod, homeo bool, diff, hScale, wt, wtChange, eff, grpDA, baseFiring, avgTimeScale float32) float32 {
	switch {
	case daMod && homeo:
		return (diff*wt*hScale + grpDA*eff) * baseFiring / avgTimeScale / (1 + 50*math32.Abs(diff))
	case daMod && !homeo:
		return grpDA * eff
	case !daMod && homeo:
		return (diff*wt*hScale + wtChange) * baseFiring / avgTimeScale / (1 + 50*math32.Abs(diff))
	default:
		return eff
	}
}

// commitWeights applies accumulated weight changes: for every plastic edge
// of every WithSTDP, non-fixed-weight group, it applies the E-STDP rule
// (gated by WithESTDP, using ESTDPMode) then the I-STDP rule (gated by
// WithISTDP, using ISTDPMode) in sequence, each independently updating the
// weight; decays wtChange; then clamps to the edge's excitatory/inhibitory
// range. A no-op in testing mode.
func (e *Engine) commitWeights() {
	if e.TestingMode {
		return
	}
	for gi := range e.Groups {
		g := &e.Groups[gi]
		if !g.Flags.Has(WithSTDP) || g.Flags.Has(FixedInputWts) {
			continue
		}
		homeo := g.Flags.Has(WithHomeostasis)

		for i := g.StartN; i < g.EndN; i++ {
			n := &e.Neurons[i]
			diff := float32(0)
			hScale := float32(1)
			if homeo {
				if n.BaseFiring <= 0 {
					panicInvariant("weight commit: neuron %d is homeostatic with baseFiring=%v", i, n.BaseFiring)
				}
				diff = 1 - n.AvgFiring/n.BaseFiring
				hScale = g.HomeostasisScale
			}
			lo := e.CumulativePre[i]
			hi := lo + e.NPrePlastic[i]
			for edge := lo; edge < hi; edge++ {
				s := &e.Synapses[edge]
				eff := e.StdpScaleFactor * s.WtChange

				if g.Flags.Has(WithESTDP) {
					s.Wt += weightCommitDelta(g.ESTDPMode == DAModSTDP, homeo, diff, hScale, s.Wt, s.WtChange, eff, e.GrpDA[gi], n.BaseFiring, g.AvgTimeScale)
				}
				if g.Flags.Has(WithISTDP) {
					s.Wt += weightCommitDelta(g.ISTDPMode == DAModSTDP, homeo, diff, hScale, s.Wt, s.WtChange, eff, e.GrpDA[gi], n.BaseFiring, g.AvgTimeScale)
				}

				s.WtChange *= e.WtChangeDecay

				r := s.ClampRange()
				s.Wt = r.ClipVal(s.Wt)
			}
		}
	}
}
