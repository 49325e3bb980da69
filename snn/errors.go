// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "fmt"

// ConfigError reports an unrecoverable problem discovered while configuring
// the engine or a spike source: an invalid STDP curve id, a rate-array
// length mismatch, or a GPU-resident rate array handed to the CPU engine.
// Callers terminate the simulation on receipt; the core never retries.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// InvariantError is panicked, not returned, because it signals a broken
// contract the core's own arithmetic guarantees rather than a condition a
// caller could reasonably recover from: a spike timing difference that
// goes negative against a real past spike, or a NaN/Inf membrane voltage.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return e.Msg }

func panicInvariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
