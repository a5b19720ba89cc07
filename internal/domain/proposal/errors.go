package proposal

import "errors"

var (
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrProposalWindowClosed = errors.New("proposals may only be submitted in December or January")
	ErrInvalidSlot          = errors.New("slot must be 1 or 2")
	ErrEmptyProposal        = errors.New("at least one proposal slot must be filled")
)
