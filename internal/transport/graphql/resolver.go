package graphql

import (
	"github.com/cimillas/crm-graphql/internal/metrics"
	"go.uber.org/zap"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svcs    Services
	logger  *zap.Logger
	metrics *metrics.Recorder
}

func (r *Resolver) mutationFailed(mutation string, err error) error {
	code, _ := errorCode(err)
	r.metrics.Mutation(mutation, code)
	return r.clientError(mutation, err)
}

func (r *Resolver) mutationSucceeded(mutation string) {
	r.metrics.Mutation(mutation, "ok")
}

// clientError converts err into a client-facing error. Unexpected errors are
// logged and replaced by a generic one.
func (r *Resolver) clientError(operation string, err error) error {
	code, known := errorCode(err)
	if !known {
		r.logger.Error("graphql operation failed", zap.String("operation", operation), zap.Error(err))
		return &resolverError{code: code, message: "internal error"}
	}
	return &resolverError{code: code, message: err.Error()}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
