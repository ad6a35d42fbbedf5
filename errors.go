// SPDX-License-Identifier: EPL-2.0

package twang

import "errors"

// ErrUnknownFormat is returned when no decoder is registered for a format.
var ErrUnknownFormat = errors.New("unknown audio format")
