// SPDX-License-Identifier: MIT

package linsolve

import "errors"

// ErrInconsistent is returned when the system has no solution
// (a reduced row reads 0 = c with c != 0).
var ErrInconsistent = errors.New("linsolve: inconsistent system")
