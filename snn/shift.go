// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// shiftTables is the per-second compaction of the D2 firing table and its
// TT2 marker window, run when SimTimeMs rolls over: the most recent
// MaxDelay ms of firings are carried forward as history and everything
// older is dropped.
func (e *Engine) shiftTables() {
	md := e.MaxDelay
	base := e.TT2[1000]
	// The marker table only ever receives writes at markIdx = tms+md+1 for
	// tms in [0,999], so its highest populated slot is TT2[1000+md]; the
	// upper bound of "everything recorded this second" is simply the live
	// running total, equal by construction to len(e.FiringTableD2).
	top := e.SpikeCountD2Sec

	copy(e.FiringTableD2[0:top-base], e.FiringTableD2[base:top])
	e.FiringTableD2 = e.FiringTableD2[:top-base]

	for i := int32(0); i < md; i++ {
		e.TT2[i+1] = e.TT2[1000+i+1] - base
	}
	e.TT1[md] = 0

	e.SpikeCount += int64(e.SpikeCountSec)
	e.SpikeCountD2 += int64(e.SpikeCountD2Sec - e.TT2[md])
	e.SpikeCountD1 += int64(e.SpikeCountD1Sec)

	e.SpikeCountD1Sec = 0
	e.SpikeCountSec = 0
	e.SpikeCountD2Sec = e.TT2[md]

	e.FiringTableD1 = e.FiringTableD1[:0]
}
