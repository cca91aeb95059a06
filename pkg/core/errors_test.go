package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		want string
	}{
		{"unexpected", KindUnexpectedError, "UNEXPECTED_ERROR"},
		{"insufficient_funds_bid", KindInsufficientFundsBid, "INSUFFICIENT_FUNDS_BID"},
		{"not_supported_order_type", KindNotSupportedOrderType, "NOT_SUPPORTED_ORDER_TYPE"},
		{"invalid_parameter", KindInvalidParameter, "INVALID_PARAMETER"},
		{"missing_credentials", KindMissingCredentials, "MISSING_CREDENTIALS"},
		{"out_of_range", ErrorKind(999), "ErrorKind(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestErrorKind_DistinctValues(t *testing.T) {
	seen := make(map[ErrorKind]bool)
	for kind := KindUnexpectedError; kind <= KindMissingCredentials; kind++ {
		assert.False(t, seen[kind])
		seen[kind] = true
		assert.NotContains(t, kind.String(), "ErrorKind(")
	}
	assert.Len(t, seen, len(errorKindNames))
}

func TestErrorKind_Category(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want ErrorCategory
	}{
		{KindNeitherParameterSpecified, CategoryValidation},
		{KindTooManyParameterSpecified, CategoryValidation},
		{KindInvalidParameter, CategoryValidation},
		{KindHMAC, CategorySigning},
		{KindTokenEncode, CategorySigning},
		{KindURLParse, CategorySigning},
		{KindMissingCredentials, CategorySigning},
		{KindTransport, CategoryTransport},
		{KindJSONParse, CategoryNormalization},
		{KindOrderNotFound, CategoryExchange},
		{KindUnexpectedError, CategoryExchange},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Category())
		})
	}
}

func TestResponseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ResponseError
		want string
	}{
		{
			name: "with_name",
			err:  NewResponseError(KindInsufficientFundsBid, 400, "insufficient_funds_bid", "not enough KRW"),
			want: "[upbit] INSUFFICIENT_FUNDS_BID (400/insufficient_funds_bid): not enough KRW",
		},
		{
			name: "status_only",
			err:  NewResponseError(KindUnexpectedError, 502, "", "Bad Gateway"),
			want: "[upbit] UNEXPECTED_ERROR (502): Bad Gateway",
		},
		{
			name: "local",
			err:  NewLocalError(KindNeitherParameterSpecified, "one of uuid or identifier is required"),
			want: "[upbit] NEITHER_PARAMETER_SPECIFIED: one of uuid or identifier is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestWrapError_Unwrap(t *testing.T) {
	err := WrapError(KindTransport, context.DeadlineExceeded)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, context.DeadlineExceeded.Error(), err.Message)
	assert.True(t, IsTransportError(err))
}

func TestIsErrorKind(t *testing.T) {
	err := NewResponseError(KindOrderNotFound, 404, "order_not_found", "order not found")
	wrapped := fmt.Errorf("cancel: %w", err)

	assert.True(t, IsErrorKind(wrapped, KindOrderNotFound))
	assert.False(t, IsErrorKind(wrapped, KindUnexpectedError))
	assert.False(t, IsErrorKind(errors.New("plain"), KindOrderNotFound))
	assert.False(t, IsErrorKind(nil, KindOrderNotFound))
}

func TestCategoryHelpers(t *testing.T) {
	validation := NewLocalError(KindTooManyParameterSpecified, "both given")
	signing := NewLocalError(KindMissingCredentials, "no keys")
	exchange := NewResponseError(KindNonceUsed, 401, "nonce_used", "nonce reused")
	parse := NewLocalError(KindJSONParse, "bad body")

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(signing))
	assert.True(t, IsSigningError(signing))
	assert.True(t, IsExchangeError(exchange))
	assert.True(t, IsAuthenticationError(exchange))
	assert.False(t, IsAuthenticationError(parse))
	assert.True(t, IsNormalizationError(parse))
	assert.False(t, IsTransportError(parse))
}

func TestKindFromWireName(t *testing.T) {
	tests := []struct {
		name string
		want ErrorKind
	}{
		{"jwt_verification", KindJWTVerification},
		{"expired_access_key", KindExpiredAccessKey},
		{"invalid_query_payload", KindInvalidQueryPayload},
		{"invalid_access_key", KindInvalidAccessKey},
		{"invalid_volume_bid", KindInvalidVolumeBid},
		{"invalid_price_bid", KindInvalidPriceBid},
		{"under_min_total_ask", KindUnderMinTotalAsk},
		{"under_min_total_bid", KindUnderMinTotalBid},
		{"insufficient_funds_ask", KindInsufficientFundsAsk},
		{"insufficient_funds_bid", KindInsufficientFundsBid},
		{"create_ask_error", KindCreateOrderError},
		{"create_bid_error", KindCreateOrderError},
		{"nonce_used", KindNonceUsed},
		{"no_authorization_i_p", KindNoAuthorizationIP},
		{"out_of_scope", KindOutOfScope},
		{"withdraw_address_not_registerd", KindWithdrawAddressNotRegistered},
		{"order_not_found", KindOrderNotFound},
		{"not_supported_ord_type", KindNotSupportedOrderType},
		{"server_error", KindUnexpectedError},
		{"totally_new_error", KindUnexpectedError},
		{"", KindUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindFromWireName(tt.name))
		})
	}
}
