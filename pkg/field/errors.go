package field

import "errors"

// ErrSettleLimit indicates Loop.Settle gave up because tasks kept scheduling
// more tasks.
var ErrSettleLimit = errors.New("field: loop did not settle")
