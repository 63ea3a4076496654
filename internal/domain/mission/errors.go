package mission

import "errors"

var (
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMissionNotReviewer   = errors.New("only the assigned manager may decide this mission")
	ErrMissionNotReviewable = errors.New("mission is not awaiting review")
	ErrInvalidMissionRange  = errors.New("end date must not be before start date")
)
