// SPDX-License-Identifier: MIT

package eigen

import "errors"

// ErrNumericalFailure is returned when the iteration produces a non-finite
// value or the input holds NaN/Inf.
var ErrNumericalFailure = errors.New("eigen: numerical failure")
