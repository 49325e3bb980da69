// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snn implements the per-millisecond simulation core of a spiking
neural network: Izhikevich neuron dynamics, conductance- or current-based
synapses, axonal conduction delays, short-term plasticity, and
spike-timing-dependent plasticity with dopamine modulation and homeostasis.

The core is the Engine.Step pipeline that, once per simulated millisecond,
decays state, drains externally scheduled spikes, integrates neuron
dynamics to detect firings, delivers delayed spikes to post-synaptic
targets, and applies plasticity. Engine.ShiftTablesAndCommitWeights runs
once per simulated second to compact the delay-window tables and commit
accumulated weight changes.

Network construction (populating Groups, Neurons and the connectivity
tables), external spike scheduling policy beyond the Poisson and callback
sources, and monitoring/IO are the caller's responsibility.
*/
package snn
