// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// SpikeCallback is a user-supplied external spike source: for one neuron,
// it returns the next absolute time that neuron should fire, or a rejected
// value to stop generation for that neuron within the current slice.
type SpikeCallback interface {
	NextSpikeTime(groupID, localNeurID, currTime, lastScheduled, endOfWindow int32) int32
}

// GenerateCallbackSpikes runs the callback spike source for one group: for
// every neuron, it repeatedly asks cb for the next spike time and schedules
// it, until the returned time is rejected by the acceptance predicate
// (ret > lastScheduled || ret == 0) && currTime <= ret < endOfWindow.
func (e *Engine) GenerateCallbackSpikes(groupIdx int32, cb SpikeCallback, currTime, endOfWindow int32) {
	g := &e.Groups[groupIdx]
	for local := int32(0); local < g.N(); local++ {
		neurID := g.StartN + local
		// resume from the last firing so a callback that paces itself off
		// lastScheduled keeps its spacing across slices; the ret == 0
		// escape exists because a spike at t=0 cannot be distinguished
		// from the never-fired initial state otherwise
		lastScheduled := e.Neurons[neurID].LastSpikeTime
		if lastScheduled == MaxTime {
			lastScheduled = 0
		}
		for {
			ret := cb.NextSpikeTime(groupIdx, local, currTime, lastScheduled, endOfWindow)
			accepted := (ret > lastScheduled || ret == 0) && currTime <= ret && ret < endOfWindow
			if !accepted {
				break
			}
			e.spikeBuf.push(ScheduledSpike{
				NeurID:  neurID,
				GroupID: groupIdx,
				Time:    ret,
			})
			lastScheduled = ret
		}
	}
}
