package apperror

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode maps the error taxonomy onto gRPC status codes.
func GRPCCode(err error) codes.Code {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return codes.InvalidArgument
	}

	var re *RemoteError
	if errors.As(err, &re) {
		switch re.Kind {
		case KindNotFound:
			return codes.NotFound
		case KindConstraintViolation:
			return codes.AlreadyExists
		case KindAuth:
			return codes.PermissionDenied
		default:
			return codes.Unavailable
		}
	}

	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Internal
}

func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(GRPCCode(err), err.Error())
}
