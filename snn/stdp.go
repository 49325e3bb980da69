// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/chewxy/math32"

// stdpCutoff is the dt*tauInv product beyond which the exponential STDP
// curves contribute nothing and are skipped.
const stdpCutoff = 25

// stdpExp is the basic exponential STDP kernel, alpha*exp(-dt*tauInv).
func stdpExp(dt, alpha, tauInv float32) float32 {
	return alpha * math32.Exp(-dt*tauInv)
}

// applyPreBeforePostSTDP runs pre-before-post STDP over every plastic
// incoming edge of the neuron that just fired.
func (e *Engine) applyPreBeforePostSTDP(post int32, g *GroupConfig, t int32) {
	if e.TestingMode || !g.Flags.Has(WithSTDP) {
		return
	}
	start := e.CumulativePre[post]
	end := start + e.NPrePlastic[post]
	for ei := start; ei < end; ei++ {
		s := &e.Synapses[ei]
		if s.SynSpikeTime == MaxTime {
			continue
		}
		dt := float32(t - s.SynSpikeTime)
		if dt <= 0 {
			panicInvariant("pre-before-post STDP: non-positive dt=%v against real spike at edge %d", dt, ei)
		}
		if s.MaxSynWt >= 0 {
			if !g.Flags.Has(WithESTDP) {
				continue
			}
			switch g.ECurve {
			case ExpCurve:
				if dt*g.TauPlusInvExc < stdpCutoff {
					s.WtChange += stdpExp(dt, g.AlphaPlusExc, g.TauPlusInvExc)
				}
			case TimingBasedCurve:
				if dt*g.TauPlusInvExc < stdpCutoff {
					if dt <= g.Gamma {
						s.WtChange += g.Omega + g.Kappa*stdpExp(dt, g.AlphaPlusExc, g.TauPlusInvExc)
					} else {
						s.WtChange -= stdpExp(dt, g.AlphaPlusExc, g.TauPlusInvExc)
					}
				}
			default:
				panic(&ConfigError{Msg: "invalid E-STDP curve"})
			}
		} else {
			if !g.Flags.Has(WithISTDP) {
				continue
			}
			switch g.ICurve {
			case ExpCurve:
				if dt*g.TauPlusInvInb < stdpCutoff {
					s.WtChange -= stdpExp(dt, g.AlphaPlusInb, g.TauPlusInvInb)
				}
			case PulseCurve:
				switch {
				case dt <= g.Lambda:
					s.WtChange -= g.BetaLTP
				case dt <= g.Delta:
					s.WtChange -= g.BetaLTD
				}
			default:
				panic(&ConfigError{Msg: "invalid I-STDP curve"})
			}
		}
	}
}

// applyPostBeforePreSTDP runs post-before-pre STDP, triggered by a
// delivery arriving at a WithSTDP post-synaptic neuron.
func (e *Engine) applyPostBeforePreSTDP(edge int32, preGroup *GroupConfig, post int32, t int32) {
	if e.TestingMode {
		return
	}
	postGroup := &e.Groups[e.Neurons[post].GroupID]
	if !postGroup.Flags.Has(WithSTDP) {
		return
	}
	lastPost := e.Neurons[post].LastSpikeTime
	dt := float32(t - lastPost)
	if dt < 0 {
		if lastPost != MaxTime {
			panicInvariant("post-before-pre STDP: negative dt=%v against real spike at post %d", dt, post)
		}
		return
	}
	s := &e.Synapses[edge]
	inhibChannel := preGroup.Flags.Has(TargetGABAa) || preGroup.Flags.Has(TargetGABAb)
	excChannel := preGroup.Flags.Has(TargetAMPA) || preGroup.Flags.Has(TargetNMDA)
	switch {
	case inhibChannel && postGroup.Flags.Has(WithISTDP):
		switch postGroup.ICurve {
		case ExpCurve:
			if dt*postGroup.TauMinusInvInb < stdpCutoff {
				s.WtChange -= stdpExp(dt, postGroup.AlphaMinusInb, postGroup.TauMinusInvInb)
			}
		case PulseCurve:
			switch {
			case dt <= postGroup.Lambda:
				s.WtChange -= postGroup.BetaLTP
			case dt <= postGroup.Delta:
				s.WtChange -= postGroup.BetaLTD
			}
		default:
			panic(&ConfigError{Msg: "invalid I-STDP curve"})
		}
	case excChannel && postGroup.Flags.Has(WithESTDP):
		switch postGroup.ECurve {
		case ExpCurve, TimingBasedCurve:
			// post-before-pre uses the same exponential tail for both
			// excitatory curves
			if dt*postGroup.TauMinusInvExc < stdpCutoff {
				s.WtChange += stdpExp(dt, postGroup.AlphaMinusExc, postGroup.TauMinusInvExc)
			}
		default:
			panic(&ConfigError{Msg: "invalid E-STDP curve"})
		}
	}
}
