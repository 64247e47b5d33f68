package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrBankNotFound       = errors.New("question bank not found")
	ErrBankEmpty          = errors.New("question bank contains no questions")
	ErrBankEntryInvalid   = errors.New("bank entry is missing question_id or question text")
	ErrExamNotFound       = errors.New("exam result not found")
	ErrExamFinished       = errors.New("exam already submitted")
	ErrInvalidChoice      = errors.New("choice must be one of a, b, c, d")
	ErrInvalidMastery     = errors.New("level must be one of gold, silver, bronze")
	ErrUnsupportedArchive = errors.New("unsupported bank file, expected .json or .zip")
)
