package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrResumeNotFound    = errors.New("candidate has no resume on file")
	ErrEmailExists       = errors.New("candidate email already registered")
	ErrAlreadyConverted  = errors.New("candidate has already been converted to an employee")
)
