// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// MaxTime is the sentinel value for "this neuron or synapse has never
// fired / received a spike."
const MaxTime int32 = 1<<31 - 1

// SpikeThreshold is the Izhikevich membrane-voltage firing threshold, in mV.
const SpikeThreshold float32 = 30

// CondIntegrationScale is the number of equal sub-steps (each
// 1/CondIntegrationScale ms) used to integrate conductance-based neuron
// dynamics within a single 1 ms tick.
const CondIntegrationScale = 2

// Neuron holds the per-neuron regular-state variables. Engine.Neurons is
// indexed by the global neuron id.
type Neuron struct {

	// GroupID is the index into Engine.Groups of this neuron's owning group.
	GroupID int32

	// Voltage, Recovery are the Izhikevich membrane potential (mV) and
	// recovery variable.
	Voltage, Recovery float32

	// IzhA, IzhB, IzhC, IzhD are this neuron's Izhikevich parameters.
	IzhA, IzhB, IzhC, IzhD float32

	// GAMPA, GGABAa are the fast excitatory/inhibitory conductances.
	GAMPA, GGABAa float32

	// GNMDA, GGABAb hold the slow conductances when the rise-time model is
	// disabled for that channel; GNMDAr/GNMDAd and GGABAbR/GGABAbD hold the
	// rising/decaying pair when it is enabled. Engine.NMDARise and
	// Engine.GABAbRise select which pair is live; the inactive pair is
	// simply left at zero.
	GNMDA, GGABAb    float32
	GNMDAr, GNMDAd   float32
	GGABAbR, GGABAbD float32

	// Current is the net input current accumulator: the sole driver of
	// integration in current-based mode, and a by-product of conductance
	// integration kept for monitoring in conductance mode.
	Current float32

	// ExtCurrent is externally injected current (Engine.InjectCurrent).
	ExtCurrent float32

	// LastSpikeTime is the simulation time (ms) of this neuron's most
	// recent firing; MaxTime means "never fired."
	LastSpikeTime int32

	// AvgFiring, BaseFiring are the exponentially averaged firing rate and
	// the homeostatic target rate.
	AvgFiring, BaseFiring float32
}

// VarByName returns a named monitored variable, for lightweight inspection
// without exposing the full struct. Unknown names return (0, false).
func (n *Neuron) VarByName(name string) (float32, bool) {
	switch name {
	case "Voltage":
		return n.Voltage, true
	case "Recovery":
		return n.Recovery, true
	case "GAMPA":
		return n.GAMPA, true
	case "GGABAa":
		return n.GGABAa, true
	case "GNMDA":
		return n.GNMDA, true
	case "GGABAb":
		return n.GGABAb, true
	case "Current":
		return n.Current, true
	case "AvgFiring":
		return n.AvgFiring, true
	}
	return 0, false
}
