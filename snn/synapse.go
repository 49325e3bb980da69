// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/emer/emergent/v2/emer"

// Synapse holds the per-edge plastic/structural state for one pre->post
// connection. Engine.Synapses is indexed by the flat edge id.
type Synapse struct {

	// Wt is the current synaptic weight.
	Wt float32

	// MaxSynWt is the upper (or, if negative, lower) weight bound; its sign
	// also encodes excitatory (>= 0) vs inhibitory (< 0).
	MaxSynWt float32

	// WtChange accumulates pending plastic delta from both pre-before-post
	// and post-before-pre STDP within the current second, until the next
	// weight commit.
	WtChange float32

	// SynSpikeTime is the arrival time (ms) of the last spike delivered on
	// this edge; MaxTime means "never."
	SynSpikeTime int32

	// ConnIdsPreIdx is the connection-group id, used to look up this edge's
	// MulSynFast/MulSynSlow gain factor in the owning Engine.
	ConnIdsPreIdx int32
}

// ClampRange returns the [min,max] weight bound implied by MaxSynWt's
// sign: excitatory edges clamp into [0, MaxSynWt], inhibitory edges into
// [MaxSynWt, 0].
func (s *Synapse) ClampRange() emer.MinMax {
	if s.MaxSynWt >= 0 {
		return emer.MinMax{Min: 0, Max: s.MaxSynWt}
	}
	return emer.MinMax{Min: s.MaxSynWt, Max: 0}
}

// DelayInfo is a contiguous range of fan-out edge slots in
// Engine.PostSynapticIds sharing the same exact axonal delay, for one
// pre-synaptic neuron.
type DelayInfo struct {
	Start  int32
	Length int32
}

// PostSynInfo packs a fan-out entry: which post-synaptic neuron, and which
// of its incoming synapse slots this edge occupies.
type PostSynInfo struct {
	Post int32
	Slot int32
}

// ConnGain holds the per-connection-group fast/slow conductance gain
// multipliers looked up via Synapse.ConnIdsPreIdx.
type ConnGain struct {
	MulSynFast float32
	MulSynSlow float32
}
