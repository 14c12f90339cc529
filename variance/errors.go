// SPDX-License-Identifier: MIT

package variance

import "errors"

// ErrRange indicates a selection parameter (k or threshold) outside its
// valid interval.
var ErrRange = errors.New("variance: parameter out of range")
