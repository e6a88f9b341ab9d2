// Package errors provides the structured errors shared by every layer of the arena service.
//
// Errors carry a Code, a message that is safe to show a caller, an optional cause and
// metadata. Repositories return NotFound for cache misses, orchestrators return
// InvalidArgument built with a ValidationBuilder, and handlers convert to the transport:
//
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
//
// or, on the HTTP gateway, errors.GetCode(err).HTTPStatus().
//
// Wrapping keeps the original code:
//
//	if err := repo.Put(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to cache battle")
//	}
package errors
