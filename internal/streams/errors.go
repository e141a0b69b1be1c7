package streams

import (
	"fmt"

	"marketplace-analytics/internal/shared/svcerrors"
)

// Transport errors
const (
	codeFetchFailed   = "STR_9000"
	codePublishFailed = "STR_9001"
)

// errInternalPublishFailed returns an error when a publish to the broker fails.
func errInternalPublishFailed(topic string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codePublishFailed, fmt.Errorf("publish to %q failed: %w", topic, cause))
}
