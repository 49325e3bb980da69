// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// deliverSpikes runs the two-tier delayed spike delivery. D2 (>= 2 ms
// delay) runs before D1 (exactly 1 ms), each visiting
// its firing table backwards from the most recent entry. t is the
// absolute, monotonic simulation time (threaded through to deliverOne for
// STP-ring lookups and SynSpikeTime/dopamine/STDP timestamps); tms is t mod
// 1000, used to navigate the TT1/TT2 marker tables, which only span one
// second's window.
func (e *Engine) deliverSpikes(t, tms int32) {
	e.deliverD2(t, tms)
	e.deliverD1(t, tms)
}

func (e *Engine) deliverD2(t, tms int32) {
	kEnd := e.TT2[tms+1]
	tPos := tms
	for k := e.SpikeCountD2Sec - 1; k >= kEnd; k-- {
		for !(e.TT2[tPos+e.MaxDelay] <= k && k < e.TT2[tPos+e.MaxDelay+1]) {
			tPos--
			if tPos+e.MaxDelay < 0 {
				panicInvariant("D2 delivery: backward scan underflowed at k=%d, tms=%d", k, tms)
			}
		}
		delta := tms - tPos
		if delta < 0 || delta >= e.MaxDelay {
			panicInvariant("D2 delivery: delta=%d out of [0,%d) at tms=%d", delta, e.MaxDelay, tms)
		}
		pre := e.FiringTableD2[k]
		di := e.PostDelayInfo[pre*(e.MaxDelay+1)+delta]
		base := e.CumulativePost[pre]
		for off := int32(0); off < di.Length; off++ {
			e.deliverOne(pre, di.Start+off, base, delta, t)
		}
	}
}

func (e *Engine) deliverD1(t, tms int32) {
	kEnd := e.TT1[tms+e.MaxDelay]
	for k := e.SpikeCountD1Sec - 1; k >= kEnd; k-- {
		pre := e.FiringTableD1[k]
		di := e.PostDelayInfo[pre*(e.MaxDelay+1)+0]
		base := e.CumulativePost[pre]
		for off := int32(0); off < di.Length; off++ {
			e.deliverOne(pre, di.Start+off, base, 0, t)
		}
	}
}

// deliverOne applies one pre-synaptic firing to one post-synaptic target:
// conductance (or current) update, arrival stamp, dopamine bump, and the
// post-before-pre plasticity check.
func (e *Engine) deliverOne(pre, edgeInFanout, basePost, delta, t int32) {
	info := e.PostSynapticIds[basePost+edgeInFanout]
	post := info.Post
	slot := info.Slot
	edge := e.CumulativePre[post] + slot
	s := &e.Synapses[edge]
	mulIdx := s.ConnIdsPreIdx
	gain := e.ConnGains[mulIdx]

	preGroup := &e.Groups[e.Neurons[pre].GroupID]
	change := s.Wt
	if preGroup.Flags.Has(WithSTP) {
		uPlus := e.StpU[StpBufPos(pre, t-delta, e.MaxDelay)]
		xMinus := e.StpX[StpBufPos(pre, t-delta-1, e.MaxDelay)]
		change *= preGroup.STPA * uPlus * xMinus
	}

	// target flags are not exclusive: a pre-group can drive both its fast
	// and slow receptor channels from the same delivered spike
	postN := &e.Neurons[post]
	if e.ConductanceMode {
		if preGroup.Flags.Has(TargetAMPA) {
			postN.GAMPA += change * gain.MulSynFast
		}
		if preGroup.Flags.Has(TargetNMDA) {
			if e.NMDARise {
				postN.GNMDAr += change * e.Decay.NMDAScale * gain.MulSynSlow
				postN.GNMDAd += change * e.Decay.NMDAScale * gain.MulSynSlow
			} else {
				postN.GNMDA += change * gain.MulSynSlow
			}
		}
		if preGroup.Flags.Has(TargetGABAa) {
			postN.GGABAa -= change * gain.MulSynFast
		}
		if preGroup.Flags.Has(TargetGABAb) {
			if e.GABAbRise {
				postN.GGABAbR -= change * e.Decay.GABAbScale * gain.MulSynSlow
				postN.GGABAbD -= change * e.Decay.GABAbScale * gain.MulSynSlow
			} else {
				postN.GGABAb -= change * gain.MulSynSlow
			}
		}
	} else {
		postN.Current += change
	}

	s.SynSpikeTime = t

	if preGroup.Flags.Has(TargetDA) {
		preGroupID := e.Neurons[pre].GroupID
		e.GrpDA[postN.GroupID] += e.DAIncrement[preGroupID]
	}

	e.applyPostBeforePreSTDP(edge, preGroup, post, t)
}
