package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/employee-org-analyzer/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, employee.ErrLoadSource):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, employee.ErrInvalidPolicy):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
