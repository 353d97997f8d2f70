package worker

import "errors"

// ErrNotProcessed marks a work item skipped because the pool was stopped.
var ErrNotProcessed = errors.New("move not processed: pool stopped")
