package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMessageID       = "message-id"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
	FieldTenantID        = "tenant-id"
	FieldLotID           = "lot-id"
	FieldDealID          = "deal-id"
	FieldRoundID         = "round-id"
	FieldInvite          = "invite"
	FieldOfferID         = "offer-id"
	FieldOutcome         = "outcome"
	FieldStatus          = "status"
	FieldProcessed       = "processed"
)
