package controller

import (
	"context"
	"errors"

	"barprep_backend/internal/llm"
	"barprep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errInvalidUserID = errors.New("user id must be a positive integer")

// handleServiceError maps a service failure onto the wire. Only
// missing resources surface as 404; everything else collapses to a
// generic 500, categorized in the logs so validation, provider, and
// persistence failures stay distinguishable.
func handleServiceError(ctx *gin.Context, err error) {
	var unknownProvider *llm.ErrUnknownProvider
	var unavailable *llm.ErrProviderUnavailable
	var rateLimited *llm.ErrRateLimit
	var invalidReply *llm.ErrInvalidResponse

	switch {
	case errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)

	case errors.Is(err, util.ErrInvalidExamType),
		errors.Is(err, util.ErrInvalidSessionStatus),
		errors.Is(err, util.ErrInvalidDiagnosticMode),
		errors.Is(err, util.ErrSessionNotActive),
		errors.Is(err, util.ErrDuplicateQuestion),
		errors.Is(err, util.ErrQuestionOutOfRange),
		errors.Is(err, util.ErrRecommendationClosed):
		util.Fail(ctx, util.CategoryValidation, err)

	case errors.As(err, &unknownProvider),
		errors.As(err, &unavailable),
		errors.As(err, &rateLimited),
		errors.As(err, &invalidReply),
		errors.Is(err, context.DeadlineExceeded):
		util.Fail(ctx, util.CategoryProvider, err)

	default:
		util.Fail(ctx, util.CategoryPersistence, err)
	}
}
