// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/chewxy/math32"

// vRange clamps membrane voltage to the Izhikevich model's valid range.
var vRange = struct{ Min, Max float32 }{Min: -90, Max: 30}

// neuronStateUpdate closes each millisecond step: per-group dopamine decay
// and sampling, per-neuron homeostatic averaging, and COBA/CUBA membrane
// integration.
func (e *Engine) neuronStateUpdate(t int32) {
	for gi := range e.Groups {
		g := &e.Groups[gi]
		if g.Flags.Has(Poisson) {
			if g.Flags.Has(WithHomeostasis) {
				for i := g.StartN; i < g.EndN; i++ {
					e.Neurons[i].AvgFiring *= g.AvgFiringDecay
				}
			}
			continue
		}

		daMod := g.ESTDPMode == DAModSTDP || g.ISTDPMode == DAModSTDP
		if daMod && e.GrpDA[gi] > g.BaseDP {
			e.GrpDA[gi] *= g.DecayDP
		}
		e.GrpDABuffer[gi*1000+int(t%1000)] = e.GrpDA[gi]

		for i := g.StartN; i < g.EndN; i++ {
			n := &e.Neurons[i]
			if g.Flags.Has(WithHomeostasis) {
				n.AvgFiring *= g.AvgFiringDecay
			}
			if e.ConductanceMode {
				e.integrateCOBA(n)
			} else {
				e.integrateCUBA(n)
			}
			if math32.IsNaN(n.Voltage) || math32.IsInf(n.Voltage, 0) {
				panicInvariant("neuron %d: voltage is NaN/Inf after integration", i)
			}
		}
	}
}

func (e *Engine) integrateCOBA(n *Neuron) {
	const scale = CondIntegrationScale
	n.Current = 0
	for step := 0; step < scale; step++ {
		mg := (n.Voltage + 80) / 60
		mg = mg * mg
		gate := mg / (1 + mg)

		gNMDAEff := n.GNMDA
		if e.NMDARise {
			gNMDAEff = n.GNMDAd - n.GNMDAr
		}
		gGABAbEff := n.GGABAb
		if e.GABAbRise {
			gGABAbEff = n.GGABAbD - n.GGABAbR
		}

		i := -(n.GAMPA*(n.Voltage-0) +
			gNMDAEff*gate*(n.Voltage-0) +
			n.GGABAa*(n.Voltage+70) +
			gGABAbEff*(n.Voltage+90))

		n.Voltage += ((0.04*n.Voltage+5)*n.Voltage + 140 - n.Recovery + i + n.ExtCurrent) / scale
		n.Current += i

		// threshold clamp ends the sub-stepping, but the recovery variable
		// is still advanced for this final sub-step
		spiked := false
		if n.Voltage > vRange.Max {
			n.Voltage = vRange.Max
			spiked = true
		}
		if n.Voltage < vRange.Min {
			n.Voltage = vRange.Min
		}
		n.Recovery += n.IzhA * (n.IzhB*n.Voltage - n.Recovery) / scale
		if spiked {
			break
		}
	}
}

func (e *Engine) integrateCUBA(n *Neuron) {
	drive := n.Current + n.ExtCurrent
	n.Voltage += 0.5 * ((0.04*n.Voltage+5)*n.Voltage + 140 - n.Recovery + drive)
	n.Voltage += 0.5 * ((0.04*n.Voltage+5)*n.Voltage + 140 - n.Recovery + drive)
	if n.Voltage > vRange.Max {
		n.Voltage = vRange.Max
	}
	if n.Voltage < vRange.Min {
		n.Voltage = vRange.Min
	}
	n.Recovery += n.IzhA * (n.IzhB*n.Voltage - n.Recovery)
}
