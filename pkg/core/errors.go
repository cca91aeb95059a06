package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory groups error kinds by where in the request cycle they arise.
type ErrorCategory int

// Error category constants.
const (
	// CategoryValidation covers local parameter checks done before any network call.
	CategoryValidation ErrorCategory = iota
	// CategorySigning covers building the Authorization header.
	CategorySigning
	// CategoryTransport covers connection, timeout and TLS failures.
	CategoryTransport
	// CategoryExchange covers business errors reported by the exchange.
	CategoryExchange
	// CategoryNormalization covers bodies that do not match the expected shape.
	CategoryNormalization
)

// String returns the string representation of the category.
func (c ErrorCategory) String() string {
	return [...]string{
		"VALIDATION",
		"SIGNING",
		"TRANSPORT",
		"EXCHANGE",
		"NORMALIZATION",
	}[c]
}

// ErrorKind is the closed, machine-matchable classification of an error.
type ErrorKind int

// Error kinds reported by the exchange.
const (
	// KindUnexpectedError is the fallback for unknown or generic server errors.
	KindUnexpectedError ErrorKind = iota
	KindJWTVerification
	KindExpiredAccessKey
	KindInvalidQueryPayload
	KindInvalidAccessKey
	KindInvalidVolumeBid
	KindInvalidPriceBid
	KindUnderMinTotalAsk
	KindUnderMinTotalBid
	KindInsufficientFundsAsk
	KindInsufficientFundsBid
	KindCreateOrderError
	KindNonceUsed
	KindNoAuthorizationIP
	KindOutOfScope
	KindWithdrawAddressNotRegistered
	KindOrderNotFound
	KindNotSupportedOrderType
)

// Error kinds raised by the client itself.
const (
	// KindInvalidParameter indicates a malformed or inconsistent parameter.
	KindInvalidParameter ErrorKind = iota + KindNotSupportedOrderType + 1
	// KindNeitherParameterSpecified indicates none of a required set of parameters was given.
	KindNeitherParameterSpecified
	// KindTooManyParameterSpecified indicates mutually exclusive parameters were given together.
	KindTooManyParameterSpecified
	// KindJSONParse indicates the response body did not match the expected shape.
	KindJSONParse
	// KindTransport indicates the HTTP request could not be completed.
	KindTransport
	// KindHMAC indicates the signing key could not be used.
	KindHMAC
	// KindTokenEncode indicates the token could not be encoded.
	KindTokenEncode
	// KindURLParse indicates the request URL could not be parsed.
	KindURLParse
	// KindMissingCredentials indicates a signed call was attempted without keys.
	KindMissingCredentials
)

var errorKindNames = map[ErrorKind]string{
	KindUnexpectedError:              "UNEXPECTED_ERROR",
	KindJWTVerification:              "JWT_VERIFICATION",
	KindExpiredAccessKey:             "EXPIRED_ACCESS_KEY",
	KindInvalidQueryPayload:          "INVALID_QUERY_PAYLOAD",
	KindInvalidAccessKey:             "INVALID_ACCESS_KEY",
	KindInvalidVolumeBid:             "INVALID_VOLUME_BID",
	KindInvalidPriceBid:              "INVALID_PRICE_BID",
	KindUnderMinTotalAsk:             "UNDER_MIN_TOTAL_ASK",
	KindUnderMinTotalBid:             "UNDER_MIN_TOTAL_BID",
	KindInsufficientFundsAsk:         "INSUFFICIENT_FUNDS_ASK",
	KindInsufficientFundsBid:         "INSUFFICIENT_FUNDS_BID",
	KindCreateOrderError:             "CREATE_ORDER_ERROR",
	KindNonceUsed:                    "NONCE_USED",
	KindNoAuthorizationIP:            "NO_AUTHORIZATION_IP",
	KindOutOfScope:                   "OUT_OF_SCOPE",
	KindWithdrawAddressNotRegistered: "WITHDRAW_ADDRESS_NOT_REGISTERED",
	KindOrderNotFound:                "ORDER_NOT_FOUND",
	KindNotSupportedOrderType:        "NOT_SUPPORTED_ORDER_TYPE",
	KindInvalidParameter:             "INVALID_PARAMETER",
	KindNeitherParameterSpecified:    "NEITHER_PARAMETER_SPECIFIED",
	KindTooManyParameterSpecified:    "TOO_MANY_PARAMETER_SPECIFIED",
	KindJSONParse:                    "JSON_PARSE_ERROR",
	KindTransport:                    "TRANSPORT_ERROR",
	KindHMAC:                         "HMAC_ERROR",
	KindTokenEncode:                  "TOKEN_ENCODE_ERROR",
	KindURLParse:                     "URL_PARSE_ERROR",
	KindMissingCredentials:           "MISSING_CREDENTIALS",
}

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Category returns the category the kind belongs to.
func (k ErrorKind) Category() ErrorCategory {
	switch k {
	case KindInvalidParameter, KindNeitherParameterSpecified, KindTooManyParameterSpecified:
		return CategoryValidation
	case KindHMAC, KindTokenEncode, KindURLParse, KindMissingCredentials:
		return CategorySigning
	case KindTransport:
		return CategoryTransport
	case KindJSONParse:
		return CategoryNormalization
	default:
		return CategoryExchange
	}
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// ResponseError is the single error type surfaced to callers.
// It carries a machine-matchable kind plus the exchange's name and message.
type ResponseError struct {
	// Kind classifies the error.
	Kind ErrorKind `json:"kind"`
	// StatusCode is the HTTP status, or 0 for errors raised before a response.
	StatusCode int `json:"status_code"`
	// Name is the exchange's error name, e.g. "insufficient_funds_bid".
	Name string `json:"name,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Err is the underlying cause, if any.
	Err error `json:"-"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Name != "":
		return fmt.Sprintf("[upbit] %s (%d/%s): %s", e.Kind, e.StatusCode, e.Name, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("[upbit] %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("[upbit] %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// NewResponseError creates an error for a response reported by the exchange.
func NewResponseError(kind ErrorKind, statusCode int, name, message string) *ResponseError {
	return &ResponseError{
		Kind:       kind,
		StatusCode: statusCode,
		Name:       name,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// NewLocalError creates an error raised before any response was received.
func NewLocalError(kind ErrorKind, message string) *ResponseError {
	return &ResponseError{
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WrapError creates an error of the given kind around a cause.
func WrapError(kind ErrorKind, err error) *ResponseError {
	return &ResponseError{
		Kind:      kind,
		Message:   err.Error(),
		Err:       err,
		Timestamp: time.Now(),
	}
}

// IsErrorKind reports whether err is a ResponseError of the given kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

func isCategory(err error, category ErrorCategory) bool {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Kind.Category() == category
	}
	return false
}

// IsValidationError returns true if the error was raised by a local parameter check.
// No request was sent.
func IsValidationError(err error) bool {
	return isCategory(err, CategoryValidation)
}

// IsSigningError returns true if the Authorization header could not be built.
func IsSigningError(err error) bool {
	return isCategory(err, CategorySigning)
}

// IsTransportError returns true if the HTTP request itself failed.
func IsTransportError(err error) bool {
	return isCategory(err, CategoryTransport)
}

// IsExchangeError returns true if the exchange reported a business error.
func IsExchangeError(err error) bool {
	return isCategory(err, CategoryExchange)
}

// IsNormalizationError returns true if the response body could not be decoded.
func IsNormalizationError(err error) bool {
	return isCategory(err, CategoryNormalization)
}

// IsAuthenticationError returns true if the exchange rejected the credentials or token.
func IsAuthenticationError(err error) bool {
	var re *ResponseError
	if !errors.As(err, &re) {
		return false
	}
	switch re.Kind {
	case KindJWTVerification, KindExpiredAccessKey, KindInvalidQueryPayload,
		KindInvalidAccessKey, KindNonceUsed, KindNoAuthorizationIP, KindOutOfScope:
		return true
	}
	return false
}
