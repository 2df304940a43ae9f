package graphql

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophaccount/internal/common"
)

// resolverError is what clients see: a message plus extensions.code.
// graphql-go copies Extensions into the response error object.
type resolverError struct {
	kind common.Kind
	msg  string
}

func (e *resolverError) Error() string { return e.msg }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.kind.String()}
}

// clientErrors are the failures whose message is safe to return as is.
var clientErrors = []error{
	common.ErrorNotFound,
	common.ErrorUnauthorized,
	common.ErrorConflict,
	common.ErrorInvalidArgument,
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// toResolverError hides internal failures behind a generic message after
// logging them; classified failures keep their own message.
func (r *Resolver) toResolverError(ctx context.Context, operation string, err error) error {
	if !isClientError(err) {
		r.logger.Error(ctx, "operation failed", "operation", operation, "error", err.Error())
		return &resolverError{kind: common.KindInternal, msg: common.ErrorInternal.Msg}
	}
	kind := common.KindOf(err)
	r.logger.Debug(ctx, "operation rejected", "operation", operation, "code", kind.String())
	return &resolverError{kind: kind, msg: common.MessageOf(err)}
}

func (e *resolverError) asCommon() error {
	return common.NewError(e.kind, e.msg)
}
