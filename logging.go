/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package divrem

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger backs SetLogger/Logger. It defaults to zerolog.Nop() so the
// facade's diagnostics calls cost nothing on the hot path until a caller
// opts in.
var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs l as the logger the facade (UDivRem/SDivRem and
// friends) uses to report which algorithm it picked for a given width.
// The "regime" field it logs is always "recommended"; the small-divisor,
// medium or wide regime a call goes through is not logged. It never receives the operands themselves - those are
// ordinary caller data of unbounded size, not something this package
// decides to log on a caller's behalf.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the currently installed logger.
func Logger() zerolog.Logger {
	return *logger.Load()
}

// logSelection records the facade's algorithm choice for a width. It is
// never called from the leaf algorithms themselves - binaryLong,
// delegate, trifecta, and asymmetric are pure and stay that way; only the
// facade layer (facade.go) that picks among them logs.
func logSelection(width int, algorithm, regime string) {
	Logger().Debug().
		Int("width", width).
		Str("algorithm", algorithm).
		Str("regime", regime).
		Msg("divrem: algorithm selected")
}
