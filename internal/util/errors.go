package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameTaken         = errors.New("username already registered")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrSessionNotFound       = errors.New("test session not found")
	ErrInvalidExamType       = errors.New("unknown exam type")
	ErrInvalidSessionStatus  = errors.New("unknown session status")
	ErrInvalidDiagnosticMode = errors.New("unknown diagnostic mode")
	ErrSessionNotActive      = errors.New("test session is not active")
	ErrDuplicateQuestion     = errors.New("question number already answered in this session")
	ErrQuestionOutOfRange    = errors.New("question number exceeds the session's total")
	ErrRecommendationClosed  = errors.New("recommendation already completed")
)
