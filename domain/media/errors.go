package media

import (
	"errors"
	"fmt"
)

// Platform error identifiers understood by Classify.
const (
	NameNotAllowed       = "NotAllowedError"
	NamePermissionDenied = "PermissionDeniedError"
	NameOverconstrained  = "OverconstrainedError"
	NameNotFound         = "NotFoundError"
	NameNotReadable      = "NotReadableError"
)

// User-facing messages.
const (
	MsgUnsupported      = "Your browser doesn't support getUserMedia."
	MsgPermissionDenied = "Please allow access to continue."
	MsgOverconstrained  = "Cannot satisfy the constraints."
	MsgNotFound         = "No media device found."
	MsgDeviceBusy       = "Media device is already in use."
	MsgOther            = "An issue occurred. Please try again."
	MsgUnrecognized     = "An unexpected error occurred."
)

// ErrUnsupported is returned when no capture capability exists on the platform.
var ErrUnsupported = errors.New(MsgUnsupported)

// ErrorKind is the acquisition failure taxonomy.
type ErrorKind int

const (
	KindUnsupported ErrorKind = iota + 1
	KindPermissionDenied
	KindOverconstrained
	KindDeviceNotFound
	KindDeviceBusy
	KindOther
	KindUnrecognized
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindPermissionDenied:
		return "permission_denied"
	case KindOverconstrained:
		return "overconstrained"
	case KindDeviceNotFound:
		return "device_not_found"
	case KindDeviceBusy:
		return "device_busy"
	case KindOther:
		return "other"
	case KindUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// AcquisitionError is a classified failure. Error returns the user-facing message.
type AcquisitionError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AcquisitionError) Error() string { return e.Message }

func (e *AcquisitionError) Unwrap() error { return e.Cause }

// DeviceError carries a platform error identifier.
type DeviceError struct {
	name string
	err  error
}

// NewDeviceError wraps cause under the given identifier. cause may be nil.
func NewDeviceError(name string, cause error) *DeviceError {
	return &DeviceError{name: name, err: cause}
}

// Name returns the platform identifier, e.g. "NotFoundError".
func (e *DeviceError) Name() string { return e.name }

func (e *DeviceError) Error() string {
	if e.err == nil {
		return e.name
	}
	return fmt.Sprintf("%s: %v", e.name, e.err)
}

func (e *DeviceError) Unwrap() error { return e.err }

type namedError interface {
	error
	Name() string
}

// Classify maps a failure to its AcquisitionError. Errors are matched by the
// identifier of the first named error in their chain; any other error is
// KindOther. A failure that is not an error at all is KindUnrecognized.
func Classify(failure any) *AcquisitionError {
	if failure == nil {
		return nil
	}
	err, ok := failure.(error)
	if !ok {
		return &AcquisitionError{Kind: KindUnrecognized, Message: MsgUnrecognized, Cause: fmt.Errorf("%v", failure)}
	}
	if errors.Is(err, ErrUnsupported) {
		return &AcquisitionError{Kind: KindUnsupported, Message: MsgUnsupported, Cause: err}
	}
	var named namedError
	if !errors.As(err, &named) {
		return &AcquisitionError{Kind: KindOther, Message: MsgOther, Cause: err}
	}
	switch named.Name() {
	case NameNotAllowed, NamePermissionDenied:
		return &AcquisitionError{Kind: KindPermissionDenied, Message: MsgPermissionDenied, Cause: err}
	case NameOverconstrained:
		return &AcquisitionError{Kind: KindOverconstrained, Message: MsgOverconstrained, Cause: err}
	case NameNotFound:
		return &AcquisitionError{Kind: KindDeviceNotFound, Message: MsgNotFound, Cause: err}
	case NameNotReadable:
		return &AcquisitionError{Kind: KindDeviceBusy, Message: MsgDeviceBusy, Cause: err}
	default:
		return &AcquisitionError{Kind: KindOther, Message: MsgOther, Cause: err}
	}
}
