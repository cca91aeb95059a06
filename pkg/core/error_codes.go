package core

import "strings"

// Wire error names as the exchange reports them in error.name.
const (
	WireJWTVerification              = "jwt_verification"
	WireExpiredAccessKey             = "expired_access_key"
	WireInvalidQueryPayload          = "invalid_query_payload"
	WireInvalidAccessKey             = "invalid_access_key"
	WireInvalidVolumeBid             = "invalid_volume_bid"
	WireInvalidPriceBid              = "invalid_price_bid"
	WireUnderMinTotalAsk             = "under_min_total_ask"
	WireUnderMinTotalBid             = "under_min_total_bid"
	WireInsufficientFundsAsk         = "insufficient_funds_ask"
	WireInsufficientFundsBid         = "insufficient_funds_bid"
	WireCreateAskError               = "create_ask_error"
	WireCreateBidError               = "create_bid_error"
	WireNonceUsed                    = "nonce_used"
	WireNoAuthorizationIP            = "no_authorization_i_p"
	WireOutOfScope                   = "out_of_scope"
	WireWithdrawAddressNotRegistered = "withdraw_address_not_registerd"
	WireOrderNotFound                = "order_not_found"
	WireNotSupportedOrdType          = "not_supported_ord_type"
	WireServerError                  = "server_error"
)

var wireErrorKinds = map[string]ErrorKind{
	WireJWTVerification:              KindJWTVerification,
	WireExpiredAccessKey:             KindExpiredAccessKey,
	WireInvalidQueryPayload:          KindInvalidQueryPayload,
	WireInvalidAccessKey:             KindInvalidAccessKey,
	WireInvalidVolumeBid:             KindInvalidVolumeBid,
	WireInvalidPriceBid:              KindInvalidPriceBid,
	WireUnderMinTotalAsk:             KindUnderMinTotalAsk,
	WireUnderMinTotalBid:             KindUnderMinTotalBid,
	WireInsufficientFundsAsk:         KindInsufficientFundsAsk,
	WireInsufficientFundsBid:         KindInsufficientFundsBid,
	WireCreateAskError:               KindCreateOrderError,
	WireCreateBidError:               KindCreateOrderError,
	WireNonceUsed:                    KindNonceUsed,
	WireNoAuthorizationIP:            KindNoAuthorizationIP,
	WireOutOfScope:                   KindOutOfScope,
	WireWithdrawAddressNotRegistered: KindWithdrawAddressNotRegistered,
	// corrected spelling, in case the exchange fixes its typo
	"withdraw_address_not_registered": KindWithdrawAddressNotRegistered,
	WireOrderNotFound:                 KindOrderNotFound,
	WireNotSupportedOrdType:           KindNotSupportedOrderType,
	WireServerError:                   KindUnexpectedError,
}

// KindFromWireName maps an exchange error name to its ErrorKind.
// Unrecognized names map to KindUnexpectedError.
func KindFromWireName(name string) ErrorKind {
	if kind, ok := wireErrorKinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return kind
	}
	return KindUnexpectedError
}
