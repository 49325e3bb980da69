// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"log"

	"github.com/c2h5oh/datasize"
	"github.com/emer/snncore/chans"
)

// Engine is the single owned aggregate that every phase function operates
// on by pointer. There is no package-level mutable state; everything the
// simulation needs lives here and is threaded through all computation.
type Engine struct {
	// N is the total number of neurons; MaxDelay is the longest axonal
	// conduction delay (ms) any connection uses.
	N        int32
	MaxDelay int32

	// ConductanceMode selects COBA (true) vs CUBA (false) integration for
	// the whole network. It is a single whole-engine switch, set once at
	// build time, not a per-group toggle.
	ConductanceMode bool

	// NMDARise, GABAbRise select the rising/decaying two-state channel
	// model (true) vs a single decaying conductance (false), network-wide.
	NMDARise, GABAbRise bool

	// Decay holds the per-ms multiplicative decay constants for the four
	// conductance channels.
	Decay chans.Decay

	// StdpScaleFactor, WtChangeDecay are the global weight-commit scaling
	// factor and per-second WtChange decay multiplier.
	StdpScaleFactor float32
	WtChangeDecay   float32

	// TestingMode disables all STDP accumulation and weight-commit writes:
	// WtChange is never written and Wt is never modified.
	TestingMode bool

	Groups  []GroupConfig
	Neurons []Neuron

	// HasD1, HasD2 classify each neuron at network build time: D1 if its
	// outgoing edges are all exactly 1 ms, D2 if it has any >= 2 ms edge
	// (such a neuron's 1 ms edges are then served by the D2 path's
	// zero-offset slot). A builder may set both for a neuron it wants
	// visited by both delivery passes.
	HasD1, HasD2 []bool

	// Synapses, indexed by flat edge id e.
	Synapses []Synapse

	// CumulativePre[p]..CumulativePre[p]+NPre[p] is the incoming-edge range
	// for post-synaptic neuron p; the first NPrePlastic[p] of those edges
	// are plastic.
	CumulativePre []int32
	NPre          []int32
	NPrePlastic   []int32

	// CumulativePost[i] is the start offset into PostSynapticIds for
	// pre-synaptic neuron i's fan-out; PostDelayInfo[i*(MaxDelay+1)+d]
	// gives the {start,length} sub-range of that fan-out with delay d.
	CumulativePost  []int32
	PostSynapticIds []PostSynInfo
	PostDelayInfo   []DelayInfo

	// ConnGains is indexed by Synapse.ConnIdsPreIdx.
	ConnGains []ConnGain

	// FiringTableD1, FiringTableD2 hold the neuron ids that fired this
	// second (FiringTableD2 also keeps the delay window carried over by the
	// shift; FiringTableD1 is emptied at each shift); their
	// capacity is the overflow bound. TT1, TT2 are the per-ms prefix-count
	// markers, spanning 1000+MaxDelay+1 slots.
	FiringTableD1, FiringTableD2 []int32
	TT1, TT2                     []int32

	// STP ring buffers, length N*(MaxDelay+1).
	StpU, StpX []float32

	// Per-group dopamine state.
	GrpDA       []float32
	GrpDABuffer []float32

	// DAIncrement[g] is the per-delivery dopamine bump applied to a
	// post-synaptic neuron's group when the pre-synaptic neuron's group has
	// TargetDA set; defaults to 0.04 but is overridable per source group
	// via SetDopamineIncrement.
	DAIncrement []float32

	// Global counters.
	SimTime, SimTimeMs, SimTimeSec int32
	SpikeCountSec                  int32
	SpikeCountD1Sec                int32
	SpikeCountD2Sec                int32
	SpikeCount                     int64
	SpikeCountD1                   int64
	SpikeCountD2                   int64

	// SpikeBufferFull is set for the remainder of a step once a firing
	// table append overflows; LastOverflowAt records when. Neither is a
	// user-visible error; overflow is observable by monitors only, and the
	// next shift reclaims capacity.
	SpikeBufferFull bool
	LastOverflowAt  int32

	// TimeSlice bounds the relative-offset window accepted by
	// ScheduleSpike. The Poisson and callback spike sources do not read it;
	// they take their window as explicit currTime/endOfWindow arguments.
	TimeSlice int32

	spikeBuf *spikeBuffer

	// LogFunc receives diagnostic messages (buffer overflow, etc); defaults
	// to log.Printf.
	LogFunc func(format string, args ...any)
}

// NewEngine allocates an Engine sized for n neurons and the given maximum
// axonal delay. Callers (a network builder external to this package) then
// populate Groups, Neurons, HasD1/HasD2, and the connectivity tables before
// the first Step.
func NewEngine(n, maxDelay int32) *Engine {
	e := &Engine{
		N:               n,
		MaxDelay:        maxDelay,
		ConductanceMode: true,
		StdpScaleFactor: 1,
		WtChangeDecay:   1,
		TimeSlice:       1000,
		LastOverflowAt:  -1,
		LogFunc:         log.Printf,
	}
	e.Decay.Defaults()
	e.Neurons = make([]Neuron, n)
	e.HasD1 = make([]bool, n)
	e.HasD2 = make([]bool, n)
	for i := range e.Neurons {
		e.Neurons[i].LastSpikeTime = MaxTime
	}
	e.CumulativePre = make([]int32, n+1)
	e.NPre = make([]int32, n)
	e.NPrePlastic = make([]int32, n)
	e.CumulativePost = make([]int32, n+1)
	e.PostDelayInfo = make([]DelayInfo, int(n)*int(maxDelay+1))

	ringLen := int(n) * int(maxDelay+1)
	e.StpU = make([]float32, ringLen)
	e.StpX = make([]float32, ringLen)

	// The marker tables span one second plus the delay window; the firing
	// tables are sized for the worst case of every neuron firing every ms
	// of a second, which is what bounds the overflow flag in appendFiring.
	tableLen := 1000 + int(maxDelay) + 1
	maxSpikes := int(n) * 1000
	e.FiringTableD1 = make([]int32, 0, maxSpikes)
	e.FiringTableD2 = make([]int32, 0, maxSpikes)
	e.TT1 = make([]int32, tableLen)
	e.TT2 = make([]int32, tableLen)

	e.spikeBuf = newSpikeBuffer()
	return e
}

// SetGroups installs the group table and allocates the per-group dopamine
// state sized to it. Call once after populating the group list, before any
// neuron is assigned a GroupID.
func (e *Engine) SetGroups(groups []GroupConfig) {
	e.Groups = groups
	e.GrpDA = make([]float32, len(groups))
	e.GrpDABuffer = make([]float32, len(groups)*1000)
	e.DAIncrement = make([]float32, len(groups))
	for i := range e.DAIncrement {
		e.DAIncrement[i] = 0.04
	}
}

// SetDopamineIncrement overrides the per-delivery dopamine bump associated
// with a dopaminergic source group (default 0.04).
func (e *Engine) SetDopamineIncrement(groupID int32, amount float32) {
	e.DAIncrement[groupID] = amount
}

// InjectCurrent sets the externally injected current for one neuron.
func (e *Engine) InjectCurrent(neurID int32, amps float32) {
	e.Neurons[neurID].ExtCurrent = amps
}

// Step advances simulation time by one millisecond. Phase order is part of
// the contract: decay, external-spike intake, firing detection (with
// delay-window markers), delayed delivery, neuron state update.
func (e *Engine) Step() {
	t := e.SimTime
	tms := t % 1000
	e.SpikeBufferFull = false

	e.decayPhase(t)
	e.drainSpikeBuffer(t)
	e.firingDetect(t, tms)
	e.deliverSpikes(t, tms)
	e.neuronStateUpdate(t)

	e.SimTime = t + 1
	e.SimTimeMs = e.SimTime % 1000
	e.SimTimeSec = e.SimTime / 1000
}

// ShiftTablesAndCommitWeights runs the per-second table shift followed by
// the weight commit. Callers invoke this once every 1000 steps, strictly
// between the second boundary and the next Step.
func (e *Engine) ShiftTablesAndCommitWeights() {
	e.shiftTables()
	e.commitWeights()
}

// MemStats reports the approximate memory footprint of the engine's
// runtime arrays, for a companion monitor to surface; the engine itself
// persists nothing.
func (e *Engine) MemStats() datasize.ByteSize {
	const f32 = 4
	const i32 = 4
	sz := uint64(0)
	sz += uint64(len(e.Neurons)) * 80 // approx sizeof(Neuron)
	sz += uint64(len(e.Synapses)) * 20
	sz += uint64(len(e.PostSynapticIds)) * 8
	sz += uint64(len(e.PostDelayInfo)) * 8
	sz += uint64(cap(e.FiringTableD1)+cap(e.FiringTableD2)) * i32
	sz += uint64(len(e.TT1)+len(e.TT2)) * i32
	sz += uint64(len(e.StpU)+len(e.StpX)) * f32
	return datasize.ByteSize(sz)
}

func (e *Engine) logf(format string, args ...any) {
	if e.LogFunc != nil {
		e.LogFunc(format, args...)
	}
}
