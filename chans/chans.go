// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the synaptic conductance channels driven by spike
delivery: fast excitatory/inhibitory (AMPA, GABAa) and slow, optionally
rise-gated excitatory/inhibitory (NMDA, GABAb).
*/
package chans

// Decay holds the per-ms multiplicative decay constants for the four
// conductance channels. NMDA and GABAb each support an optional two-state
// rise/decay model in place of the single flat constant; the Rise and
// Scale fields are only meaningful when the corresponding rise model is
// enabled on the owning engine.
type Decay struct {
	AMPA  float32 `desc:"per-ms multiplicative decay of the fast excitatory (AMPA) conductance"`
	GABAa float32 `desc:"per-ms multiplicative decay of the fast inhibitory (GABAa) conductance"`

	NMDA      float32 `desc:"per-ms multiplicative decay of NMDA when the rise/decay model is disabled"`
	NMDARise  float32 `desc:"per-ms multiplicative decay of the NMDA rise state when the rise/decay model is enabled"`
	NMDAScale float32 `desc:"delivery-time scale applied to the NMDA rise and decay states when the rise/decay model is enabled"`

	GABAb      float32 `desc:"per-ms multiplicative decay of GABAb when the rise/decay model is disabled"`
	GABAbRise  float32 `desc:"per-ms multiplicative decay of the GABAb rise state when the rise/decay model is enabled"`
	GABAbScale float32 `desc:"delivery-time scale applied to the GABAb rise and decay states when the rise/decay model is enabled"`
}

// SetAll sets the flat-model decay constants for all four channels.
func (d *Decay) SetAll(ampa, gabaa, nmda, gabab float32) {
	d.AMPA, d.GABAa, d.NMDA, d.GABAb = ampa, gabaa, nmda, gabab
}

// Defaults fills in decay constants of 1 (no decay) everywhere, so a zero
// Decay never silently freezes conductances via multiplication.
func (d *Decay) Defaults() {
	d.AMPA, d.GABAa = 1, 1
	d.NMDA, d.NMDARise, d.NMDAScale = 1, 1, 1
	d.GABAb, d.GABAbRise, d.GABAbScale = 1, 1, 1
}
