package domain

import "fmt"

//region ValidationError

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region InvalidGoalError

// InvalidGoalError is a ValidationError raised by the withdrawal impact
// calculator for a goal that cannot be divided by.
type InvalidGoalError struct {
	Msg string
}

func (e *InvalidGoalError) Error() string {
	return e.Msg
}

func (e *InvalidGoalError) Is(target error) bool {
	switch target.(type) {
	case *InvalidGoalError, *ValidationError:
		return true
	default:
		return false
	}
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region InvalidDenominationError

type InvalidDenominationError struct {
	Msg string
}

func (e *InvalidDenominationError) Error() string {
	return e.Msg
}

func (e *InvalidDenominationError) Is(target error) bool {
	_, ok := target.(*InvalidDenominationError)
	return ok
}

//endregion

//region GiftCardNotFoundError

type GiftCardNotFoundError struct {
	Msg string
}

func (e *GiftCardNotFoundError) Error() string {
	return e.Msg
}

func (e *GiftCardNotFoundError) Is(target error) bool {
	_, ok := target.(*GiftCardNotFoundError)
	return ok
}

//endregion

//region CharityNotFoundError

type CharityNotFoundError struct {
	Msg string
}

func (e *CharityNotFoundError) Error() string {
	return e.Msg
}

func (e *CharityNotFoundError) Is(target error) bool {
	_, ok := target.(*CharityNotFoundError)
	return ok
}

//endregion

//region NoDestinationVaultError

type NoDestinationVaultError struct {
	Msg string
}

func (e *NoDestinationVaultError) Error() string {
	return e.Msg
}

func (e *NoDestinationVaultError) Is(target error) bool {
	_, ok := target.(*NoDestinationVaultError)
	return ok
}

//endregion

//region EntityNotFoundError

type EntityNotFoundError struct {
	Msg string
}

func (e *EntityNotFoundError) Error() string {
	return e.Msg
}

func (e *EntityNotFoundError) Is(target error) bool {
	_, ok := target.(*EntityNotFoundError)
	return ok
}

//endregion

//region BankingUnavailableError

type BankingUnavailableError struct {
	Msg   string
	Cause error
}

func (e *BankingUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}

	return e.Msg
}

func (e *BankingUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *BankingUnavailableError) Is(target error) bool {
	_, ok := target.(*BankingUnavailableError)
	return ok
}

//endregion

//region TransferFailedError

type TransferFailedError struct {
	Msg     string
	Timeout bool
	Cause   error
}

func (e *TransferFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}

	return e.Msg
}

func (e *TransferFailedError) Unwrap() error {
	return e.Cause
}

func (e *TransferFailedError) Is(target error) bool {
	_, ok := target.(*TransferFailedError)
	return ok
}

//endregion

//region ExternalSettlementUnavailableError

type ExternalSettlementUnavailableError struct {
	Msg   string
	Cause error
}

func (e *ExternalSettlementUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}

	return e.Msg
}

func (e *ExternalSettlementUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *ExternalSettlementUnavailableError) Is(target error) bool {
	_, ok := target.(*ExternalSettlementUnavailableError)
	return ok
}

//endregion

//region StreakNotEligibleError

type StreakNotEligibleError struct {
	Msg string
}

func (e *StreakNotEligibleError) Error() string {
	return e.Msg
}

func (e *StreakNotEligibleError) Is(target error) bool {
	_, ok := target.(*StreakNotEligibleError)
	return ok
}

//endregion

//region WalletNotFoundError

type WalletNotFoundError struct {
	Msg string
}

func (e *WalletNotFoundError) Error() string {
	return e.Msg
}

func (e *WalletNotFoundError) Is(target error) bool {
	_, ok := target.(*WalletNotFoundError)
	return ok
}

//endregion
