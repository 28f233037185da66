package convert

import (
	"github.com/wippyai/linera-bridge/base/ownership"
	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/errors"
)

func CloseChainError[W shape.Enum](w W) ownership.CloseChainError {
	switch uint8(w) {
	case shape.NotPermitted:
		return ownership.CloseChainNotPermitted
	}
	panic(errors.Unreachable("close-chain-error", uint8(w)))
}

func ChangeApplicationPermissionsError[W shape.Enum](w W) ownership.ChangeApplicationPermissionsError {
	switch uint8(w) {
	case shape.NotPermitted:
		return ownership.ChangeApplicationPermissionsNotPermitted
	}
	panic(errors.Unreachable("change-application-permissions-error", uint8(w)))
}
