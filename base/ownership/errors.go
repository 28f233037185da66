package ownership

import "strconv"

// CloseChainError is returned to a contract whose request to close its
// chain was refused.
type CloseChainError uint8

const (
	// CloseChainNotPermitted means the application may not close the chain.
	CloseChainNotPermitted CloseChainError = iota
)

func (e CloseChainError) Error() string {
	switch e {
	case CloseChainNotPermitted:
		return "unauthorized attempt to close the chain"
	}
	return "close chain error " + strconv.Itoa(int(e))
}

// ChangeApplicationPermissionsError is returned to a contract whose
// request to change application permissions was refused.
type ChangeApplicationPermissionsError uint8

const (
	// ChangeApplicationPermissionsNotPermitted means the application may
	// not change the chain's application permissions.
	ChangeApplicationPermissionsNotPermitted ChangeApplicationPermissionsError = iota
)

func (e ChangeApplicationPermissionsError) Error() string {
	switch e {
	case ChangeApplicationPermissionsNotPermitted:
		return "unauthorized attempt to change the application permissions"
	}
	return "change application permissions error " + strconv.Itoa(int(e))
}
