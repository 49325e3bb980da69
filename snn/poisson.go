// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"github.com/emer/emergent/v2/erand"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonSource describes a Poisson-rate spike generator for one group:
// Rate holds one firing rate (Hz) per local neuron index within the group.
type PoissonSource struct {
	Rate              []float32
	RefractoryFloorMs float32
	GPUResident       bool
	Seed              uint64
}

// GeneratePoissonSpikes runs the rate source for one group: for each
// neuron, draw inter-spike intervals from an exponential with mean 1/rate
// and a hard refractory floor, scheduling arrivals into the spike buffer
// at times in [currTime, endOfWindow). The walk resumes from the neuron's
// last spike time, so the refractory floor is maintained across scheduling
// slices; draws that land before currTime are skipped, not terminal.
//
// A rate-array length mismatch and a GPU-resident rate array handed to
// this (CPU-only) engine are both reported as a *ConfigError rather than
// panicking, since they are caller mistakes discoverable before any
// simulation state is touched.
func (e *Engine) GeneratePoissonSpikes(groupIdx int32, src *PoissonSource, currTime, endOfWindow int32) error {
	g := &e.Groups[groupIdx]
	n := int(g.N())
	if len(src.Rate) != n {
		return &ConfigError{Msg: "GeneratePoissonSpikes: rate array length does not match group size"}
	}
	if src.GPUResident {
		return &ConfigError{Msg: "GeneratePoissonSpikes: rate array resides on GPU but engine is CPU-only"}
	}

	rng := rand.NewSource(src.Seed)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	erand.PermuteInts(order)

	for _, li := range order {
		rateHz := src.Rate[li]
		if rateHz <= 0 {
			continue
		}
		exp := distuv.Exponential{Rate: float64(rateHz) / 1000.0, Src: rng}

		neurID := g.StartN + int32(li)
		cursor := e.Neurons[neurID].LastSpikeTime
		if cursor == MaxTime {
			cursor = 0
		}
		for {
			isi := float32(exp.Rand())
			if isi < src.RefractoryFloorMs {
				isi = src.RefractoryFloorMs
			}
			step := int32(isi)
			if step < 1 {
				// a 1 ms tick cannot resolve sub-ms intervals
				step = 1
			}
			cursor += step
			if cursor >= endOfWindow {
				break
			}
			if cursor < currTime {
				continue
			}
			e.spikeBuf.push(ScheduledSpike{
				NeurID:  neurID,
				GroupID: groupIdx,
				Time:    cursor,
			})
		}
	}
	return nil
}
