package aggregators

import (
	"fmt"

	"marketplace-analytics/internal/shared/svcerrors"
)

// AnalyticsService errors
const (
	codeInternalEngineApplyFailed  = "AGG_9000"
	codeInternalUserStoreFailed    = "AGG_9001"
	codeInternalProductStoreFailed = "AGG_9002"
)

// errInternalEngineApplyFailed returns an error when the merge of an event into an aggregate fails.
func errInternalEngineApplyFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEngineApplyFailed, fmt.Errorf("engineApplyFailed: %w", cause))
}

// errInternalUserStoreFailed returns an error when a user analytics store operation fails.
func errInternalUserStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUserStoreFailed, fmt.Errorf("userAnalyticsStoreFailed: %w", cause))
}

// errInternalProductStoreFailed returns an error when a product analytics store operation fails.
func errInternalProductStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProductStoreFailed, fmt.Errorf("productAnalyticsStoreFailed: %w", cause))
}
