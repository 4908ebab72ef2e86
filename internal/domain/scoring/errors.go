package scoring

import "errors"

// ErrUnknownStrategy indicates a strategy identifier outside the known set.
var ErrUnknownStrategy = errors.New("unknown scoring strategy")
