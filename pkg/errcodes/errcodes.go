package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Conflict            failure.ErrorCode = "Conflict"

	// Ошибки хранилища
	ConstraintViolation failure.ErrorCode = "ConstraintViolation" // check-constraint отверг значение
	UniqueViolation     failure.ErrorCode = "UniqueViolation"

	TenantRequired failure.ErrorCode = "TenantRequired"
	UserRequired   failure.ErrorCode = "UserRequired"

	LotNotFound       failure.ErrorCode = "LotNotFound"
	InvalidLotID      failure.ErrorCode = "InvalidLotID"
	InvalidLotStatus  failure.ErrorCode = "InvalidLotStatus"
	TransitionDenied  failure.ErrorCode = "TransitionDenied"
	LotStatusChanged  failure.ErrorCode = "LotStatusChanged" // CAS по статусу проиграл гонку
	InvalidPOCount    failure.ErrorCode = "InvalidPOCount"
	InvalidDocument   failure.ErrorCode = "InvalidDocument"
	RoundNotFound     failure.ErrorCode = "RoundNotFound"
	InviteNotFound    failure.ErrorCode = "InviteNotFound"
	InvalidOfferMode  failure.ErrorCode = "InvalidOfferMode"
	InvalidUnitPrice  failure.ErrorCode = "InvalidUnitPrice"
	InvalidTotal      failure.ErrorCode = "InvalidTotal"
	UnknownLineRef    failure.ErrorCode = "UnknownLineRef"
	NoUsableLines     failure.ErrorCode = "NoUsableLines"
	CredentialMissing failure.ErrorCode = "CredentialMissing" // нет рабочего доступа к почтовому ящику
	MailFetchFailed   failure.ErrorCode = "MailFetchFailed"
	PollInProgress    failure.ErrorCode = "PollInProgress"
)
