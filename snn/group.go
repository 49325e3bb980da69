// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"github.com/goki/ki/bitflag"
	"github.com/goki/ki/kit"
)

// GroupFlags are bit flags encoding a group's neuron type and synaptic
// target, plus its plasticity features. A group may combine more than one
// TARGET_* flag (e.g. a group driving both AMPA and NMDA receptors).
type GroupFlags int32

//go:generate stringer -type=GroupFlags

var KiT_GroupFlags = kit.Enums.AddEnum(GroupFlagsN, kit.BitFlag, nil)

const (
	// Poisson marks a group whose neurons emit spikes from a rate source
	// rather than from integrated Izhikevich dynamics.
	Poisson GroupFlags = iota

	// TargetAMPA marks a group whose outgoing synapses drive AMPA (fast
	// excitatory) conductance on their post-synaptic targets.
	TargetAMPA

	// TargetNMDA marks a group whose outgoing synapses drive NMDA (slow
	// excitatory, Mg2+-gated) conductance.
	TargetNMDA

	// TargetGABAa marks a group whose outgoing synapses drive GABAa (fast
	// inhibitory) conductance.
	TargetGABAa

	// TargetGABAb marks a group whose outgoing synapses drive GABAb (slow
	// inhibitory) conductance.
	TargetGABAb

	// TargetDA marks a dopaminergic group: delivery from this group bumps
	// the post-synaptic neuron's group dopamine level.
	TargetDA

	// WithSTP enables short-term facilitation/depression traces for this
	// group's neurons.
	WithSTP

	// WithSTDP gates whether any spike-timing-dependent plasticity runs for
	// edges touching this group at all (both pre-before-post on incoming
	// plastic edges and post-before-pre on delivered edges).
	WithSTDP

	// WithESTDP further gates excitatory-edge STDP (maxSynWt >= 0).
	WithESTDP

	// WithISTDP further gates inhibitory-edge STDP (maxSynWt < 0).
	WithISTDP

	// WithHomeostasis enables average-firing-rate homeostatic scaling of
	// weight changes for this group.
	WithHomeostasis

	// FixedInputWts excludes this group's incoming plastic edges from the
	// weight commit phase entirely (weights never move).
	FixedInputWts

	GroupFlagsN
)

func (f GroupFlags) Has(flag GroupFlags) bool { return bitflag.Has32(int32(f), int(flag)) }

func (f *GroupFlags) Set(flag GroupFlags)   { bitflag.Set32((*int32)(f), int(flag)) }
func (f *GroupFlags) Clear(flag GroupFlags) { bitflag.Clear32((*int32)(f), int(flag)) }

// STDPMode selects whether a group's plasticity is the standard
// Hebbian-timing rule, or additionally scaled by the group's dopamine level.
type STDPMode int32

const (
	StandardSTDP STDPMode = iota
	DAModSTDP
)

// STDPCurve selects the shape of the timing-dependent weight-change curve.
type STDPCurve int32

const (
	// ExpCurve is the classic double-exponential STDP curve.
	ExpCurve STDPCurve = iota
	// TimingBasedCurve potentiates by Omega plus a Kappa-scaled exponential
	// term inside Gamma and depresses by the exponential term beyond it
	// (excitatory only).
	TimingBasedCurve
	// PulseCurve applies flat LTP/LTD steps inside two timing windows
	// (inhibitory only).
	PulseCurve
)

// GroupConfig holds the per-group structural range, feature/target flags,
// and all numeric plasticity/homeostasis parameters. One GroupConfig exists
// per neuron group; Neuron.GroupID indexes into the owning Engine's Groups
// slice.
type GroupConfig struct {

	// StartN, EndN is the global neuron id range [StartN, EndN) owned by
	// this group.
	StartN, EndN int32

	// Flags is this group's neuron-type, target, and feature bit set.
	Flags GroupFlags

	ESTDPMode STDPMode
	ISTDPMode STDPMode
	ECurve    STDPCurve
	ICurve    STDPCurve

	// TauPlusInvExc, AlphaPlusExc are the pre-before-post excitatory
	// exponential-curve time constant (inverse, per ms) and gain.
	TauPlusInvExc, AlphaPlusExc float32
	// TauMinusInvExc, AlphaMinusExc are the post-before-pre excitatory
	// counterparts, used by both ExpCurve and TimingBasedCurve.
	TauMinusInvExc, AlphaMinusExc float32

	// TauPlusInvInb, AlphaPlusInb are the pre-before-post inhibitory
	// exponential-curve constants.
	TauPlusInvInb, AlphaPlusInb float32
	// TauMinusInvInb, AlphaMinusInb are the post-before-pre inhibitory
	// counterparts.
	TauMinusInvInb, AlphaMinusInb float32

	// Gamma, Kappa, Omega parameterize TimingBasedCurve excitatory STDP.
	Gamma, Kappa, Omega float32

	// Lambda, Delta, BetaLTP, BetaLTD parameterize PulseCurve inhibitory STDP.
	Lambda, Delta, BetaLTP, BetaLTD float32

	// STPA scales the facilitation*depression product applied to delivered
	// weight at synapses whose pre-synaptic neuron belongs to a WithSTP group.
	STPA float32
	// STPTauUInv, STPTauXInv are the per-ms facilitation decay rate and
	// depression recovery rate for this group's STP traces.
	STPTauUInv, STPTauXInv float32

	// BaseDP is the tonic dopamine level below which decay does not apply;
	// DecayDP is the per-ms multiplicative decay factor applied above it.
	BaseDP, DecayDP float32

	// AvgTimeScale is the homeostatic averaging window (ms) used as a
	// divisor in the weight commit equation. AvgFiringDecay is the
	// per-ms multiplicative decay applied to AvgFiring.
	AvgTimeScale     float32
	AvgFiringDecay   float32
	HomeostasisScale float32
}

// Defaults fills in a GroupConfig with values appropriate for a plain,
// non-plastic group. Callers override individual fields as needed; this
// only guarantees no field is left at a pathological zero value (e.g. a
// zero AvgTimeScale would divide by zero in the weight commit).
func (g *GroupConfig) Defaults() {
	g.ESTDPMode = StandardSTDP
	g.ISTDPMode = StandardSTDP
	g.ECurve = ExpCurve
	g.ICurve = ExpCurve
	g.AvgTimeScale = 10000
	g.AvgFiringDecay = 1
	g.HomeostasisScale = 1
	g.DecayDP = 1
}

// N returns the number of neurons owned by this group.
func (g *GroupConfig) N() int32 { return g.EndN - g.StartN }
