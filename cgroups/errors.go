package cgroups

import "errors"

var (
	// ErrBufferTooSmall reports a control-file line that did not fit
	// the fixed read buffer. Control files carry values from a bounded
	// enumeration, so an oversized line is a protocol violation and
	// never returned partially.
	ErrBufferTooSmall = errors.New("cgroups: line exceeds read buffer")

	// ErrPrecondition reports arguments outside an operation's
	// documented domain: freezing the root group, a scheduling domain
	// level outside -1..5, an empty attribute list.
	ErrPrecondition = errors.New("cgroups: precondition violated")
)
