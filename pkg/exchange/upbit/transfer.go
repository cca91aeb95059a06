package upbit

import (
	"context"

	"upbit/pkg/core"
	"upbit/pkg/exchange"
)

// ListWithdraws lists withdrawals, filtered by WithCurrency, WithWithdrawState,
// WithUUIDs and WithTxIDs.
func (e *UpbitExchange) ListWithdraws(ctx context.Context, opts ...exchange.Option) ([]core.WithdrawInfo, error) {
	return call[[]core.WithdrawInfo](ctx, e, core.OpListWithdraws, transferListParams(opts))
}

// GetWithdraw retrieves one withdrawal by uuid or txid.
func (e *UpbitExchange) GetWithdraw(ctx context.Context, lookup exchange.TransferLookup) (*core.WithdrawInfo, error) {
	return call[*core.WithdrawInfo](ctx, e, core.OpGetWithdraw, transferLookupParams(lookup))
}

// GetWithdrawChance retrieves withdrawal limits and fees for currency on netType.
func (e *UpbitExchange) GetWithdrawChance(ctx context.Context, currency, netType string) (*core.WithdrawChance, error) {
	params := core.Params{
		"currency": currency,
		"net_type": netType,
	}
	return call[*core.WithdrawChance](ctx, e, core.OpGetWithdrawChance, params)
}

// WithdrawCoin requests a digital asset withdrawal to a registered address.
func (e *UpbitExchange) WithdrawCoin(ctx context.Context, req *exchange.CoinWithdrawal) (*core.WithdrawInfo, error) {
	if req == nil {
		return nil, core.NewLocalError(core.KindInvalidParameter, "missing required parameter: withdrawal")
	}

	params := core.Params{
		"currency":          req.Currency,
		"net_type":          req.NetType,
		"amount":            req.Amount,
		"address":           req.Address,
		"secondary_address": req.SecondaryAddress,
		"transaction_type":  req.TransactionType,
	}
	info, err := call[*core.WithdrawInfo](ctx, e, core.OpWithdrawCoin, params)
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("uuid", info.UUID).
		Str("currency", info.Currency).
		Stringer("state", info.State).
		Msg("coin withdrawal requested")
	return info, nil
}

// WithdrawKRW requests a KRW withdrawal to the registered bank account.
func (e *UpbitExchange) WithdrawKRW(ctx context.Context, amount float64, twoFactor core.TwoFactorType) (*core.WithdrawInfo, error) {
	return call[*core.WithdrawInfo](ctx, e, core.OpWithdrawKRW, krwParams(amount, twoFactor))
}

// ListWithdrawAddresses lists the addresses withdrawals are allowed to.
func (e *UpbitExchange) ListWithdrawAddresses(ctx context.Context) ([]core.WithdrawAddress, error) {
	return call[[]core.WithdrawAddress](ctx, e, core.OpListWithdrawAddresses, core.Params{})
}

// ListDeposits lists deposits, filtered by WithCurrency, WithDepositState,
// WithUUIDs and WithTxIDs.
func (e *UpbitExchange) ListDeposits(ctx context.Context, opts ...exchange.Option) ([]core.DepositInfo, error) {
	return call[[]core.DepositInfo](ctx, e, core.OpListDeposits, transferListParams(opts))
}

// GetDeposit retrieves one deposit by uuid or txid.
func (e *UpbitExchange) GetDeposit(ctx context.Context, lookup exchange.TransferLookup) (*core.DepositInfo, error) {
	return call[*core.DepositInfo](ctx, e, core.OpGetDeposit, transferLookupParams(lookup))
}

// DepositKRW requests a KRW deposit from the registered bank account.
func (e *UpbitExchange) DepositKRW(ctx context.Context, amount float64, twoFactor core.TwoFactorType) (*core.DepositInfo, error) {
	return call[*core.DepositInfo](ctx, e, core.OpDepositKRW, krwParams(amount, twoFactor))
}

// GenerateCoinAddress asks for a deposit address. Address creation is
// asynchronous: the first call usually returns a response whose Ready
// reports false, and a later call returns the address.
func (e *UpbitExchange) GenerateCoinAddress(ctx context.Context, currency, netType string) (*core.CoinAddressResponse, error) {
	params := core.Params{
		"currency": currency,
		"net_type": netType,
	}
	return call[*core.CoinAddressResponse](ctx, e, core.OpGenerateCoinAddress, params)
}

// ListCoinAddresses lists every deposit address issued.
func (e *UpbitExchange) ListCoinAddresses(ctx context.Context) ([]core.CoinAddress, error) {
	return call[[]core.CoinAddress](ctx, e, core.OpListCoinAddresses, core.Params{})
}

// GetCoinAddress retrieves the deposit address for currency on netType.
func (e *UpbitExchange) GetCoinAddress(ctx context.Context, currency, netType string) (*core.CoinAddress, error) {
	params := core.Params{
		"currency": currency,
		"net_type": netType,
	}
	return call[*core.CoinAddress](ctx, e, core.OpGetCoinAddress, params)
}

func transferListParams(opts []exchange.Option) core.Params {
	options := exchange.ApplyOptions(opts...)
	return core.Params{
		"currency": options.Currency,
		"state":    options.State,
		"uuids":    options.UUIDs,
		"txids":    options.TxIDs,
		"limit":    options.Limit,
		"page":     options.Page,
		"order_by": options.OrderBy,
	}
}

func transferLookupParams(lookup exchange.TransferLookup) core.Params {
	return core.Params{
		"uuid":     lookup.UUID,
		"txid":     lookup.TxID,
		"currency": lookup.Currency,
	}
}

func krwParams(amount float64, twoFactor core.TwoFactorType) core.Params {
	return core.Params{
		"amount":          amount,
		"two_factor_type": twoFactor,
	}
}
