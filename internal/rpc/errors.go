package rpc

import (
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielpatrickdp/eres666/internal/fault"
)

// #region reasons
var reasons = map[fault.Kind]string{
	fault.DivisionByZero: "DIVISION_BY_ZERO",
	fault.InvalidRange:   "INVALID_RANGE",
}

func kindForReason(reason string) (fault.Kind, bool) {
	for k, r := range reasons {
		if r == reason {
			return k, true
		}
	}
	return "", false
}

// #endregion reasons

// #region to-status
// toStatus maps core faults to InvalidArgument with an ErrorInfo detail.
// Anything else becomes Internal.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var fe *fault.Error
	if !errors.As(err, &fe) {
		return status.Error(codes.Internal, err.Error())
	}
	st := status.New(codes.InvalidArgument, err.Error())
	withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reasons[fe.Kind],
		Domain: errorInfoDomain,
		Metadata: map[string]string{
			"op":      fe.Op,
			"field":   fe.Field,
			"value":   strconv.FormatFloat(fe.Value, 'g', -1, 64),
			"message": fe.Msg,
		},
	})
	if derr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// #endregion to-status

// #region from-status
// fromStatus restores a *fault.Error from an ErrorInfo detail; other errors
// are returned unchanged.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorInfoDomain {
			continue
		}
		kind, ok := kindForReason(info.GetReason())
		if !ok {
			continue
		}
		md := info.GetMetadata()
		value, _ := strconv.ParseFloat(md["value"], 64)
		return &fault.Error{
			Kind:  kind,
			Op:    md["op"],
			Field: md["field"],
			Value: value,
			Msg:   md["message"],
		}
	}
	return err
}

// #endregion from-status
