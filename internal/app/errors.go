package service

import "errors"

// ErrQueueFull indicates the submission queue rejected a submission.
var ErrQueueFull = errors.New("submission queue full")
