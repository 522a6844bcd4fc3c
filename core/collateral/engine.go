// Copyright (C) 2024 Halo Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package collateral

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"code.haloprotocol.io/halo/core/assets"
	"code.haloprotocol.io/halo/core/events"
	"code.haloprotocol.io/halo/core/oracles"
	"code.haloprotocol.io/halo/core/types"
	"code.haloprotocol.io/halo/libs/num"
	"code.haloprotocol.io/halo/logging"
	"code.haloprotocol.io/halo/metrics"
)

const (
	namedLogger = "collateral"
	engineName  = "collateral"

	// engineParty identifies the engine's own custody account on the
	// external collaborators.
	engineParty = "engine"
)

// Broker send events.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.haloprotocol.io/halo/core/collateral Broker
type Broker interface {
	Send(event events.Event)
}

// AssetSource is the transfer collaborator for one registered asset. A
// false return (not an error) means the collaborator declined the
// transfer, and the operation must fail with ErrTransferFailed.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_source_mock.go -package mocks code.haloprotocol.io/halo/core/collateral AssetSource
type AssetSource interface {
	TransferFrom(ctx context.Context, from, to string, amount *num.Uint) (bool, error)
	Transfer(ctx context.Context, to string, amount *num.Uint) (bool, error)
}

// DebtToken is the pegged synthetic asset collaborator. Only the engine is
// authorized to call Mint and Burn.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/debt_token_mock.go -package mocks code.haloprotocol.io/halo/core/collateral DebtToken
type DebtToken interface {
	Mint(ctx context.Context, to string, amount *num.Uint) (bool, error)
	TransferFrom(ctx context.Context, from, to string, amount *num.Uint) (bool, error)
	Burn(ctx context.Context, amount *num.Uint) error
}

// Engine orchestrates all public operations on the ledger: it validates
// preconditions, mutates the ledger inside a transaction, invokes the
// external collaborators, and re-validates the health factor before any
// state change is considered final.
//
// Operations execute under a sequential transaction-per-call model. The
// busy flag is the reentrancy guard: collaborators are called mid
// operation and an adversarial implementation could call back into the
// engine before the current operation finishes, such nested calls fail
// with ErrReentrancyDetected. The guard is released on every exit path.
type Engine struct {
	log *logging.Logger
	cfg Config

	registry *assets.Registry
	prices   oracles.PriceSource
	debt     DebtToken
	sources  map[string]AssetSource
	broker   Broker
	ledger   *Ledger

	busy atomic.Bool
}

// New creates the collateral engine. Every asset registered in the
// registry needs a transfer collaborator in sources.
func New(
	log *logging.Logger,
	cfg Config,
	registry *assets.Registry,
	prices oracles.PriceSource,
	debt DebtToken,
	sources map[string]AssetSource,
	broker Broker,
) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	maxDebt, overflow := num.UintFromString(cfg.MaxDebtPerAccount, 10)
	if overflow || maxDebt.IsZero() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDebtCap, cfg.MaxDebtPerAccount)
	}
	for _, id := range registry.AssetIDs() {
		if _, ok := sources[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingAssetSource, id)
		}
	}

	metrics.Register()
	return &Engine{
		log:      log,
		cfg:      cfg,
		registry: registry,
		prices:   prices,
		debt:     debt,
		sources:  sources,
		broker:   broker,
		ledger:   NewLedger(maxDebt),
	}, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the collateral engine. The debt cap is not reloadable, changing it
// requires a restart.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.cfg = cfg
}

func (e *Engine) enter() error {
	if !e.busy.CompareAndSwap(false, true) {
		return ErrReentrancyDetected
	}
	return nil
}

func (e *Engine) exit() {
	e.busy.Store(false)
}

func (e *Engine) finish(op string, err error) error {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.EngineOpCounterInc(engineName, op, status)
	return err
}

// Deposit locks amount of the given asset as the party's collateral. The
// ledger is credited first, then the asset source is asked to move the
// funds into the engine's custody, a declined transfer rolls the credit
// back.
func (e *Engine) Deposit(ctx context.Context, party, asset string, amount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "deposit")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	return e.finish("deposit", e.deposit(ctx, party, asset, amount))
}

func (e *Engine) deposit(ctx context.Context, party, asset string, amount *num.Uint) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !e.registry.IsAllowed(asset) {
		return assets.ErrUnknownAsset
	}

	tx := e.ledger.Begin()
	tx.AddCollateral(party, asset, amount)

	ok, err := e.sources[asset].TransferFrom(ctx, party, engineParty, amount)
	if err != nil || !ok {
		tx.Rollback()
		return transferFailed(err)
	}
	tx.Commit()

	e.broker.Send(events.NewDepositEvent(ctx, party, asset, amount))
	if e.log.IsDebug() {
		e.log.Debug("collateral deposited",
			logging.PartyID(party),
			logging.AssetID(asset),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Mint creates amount units of debt against the party's collateral. The
// debt is applied to the ledger, checked against the per-account cap and
// the resulting health factor, and only then is the debt token asked to
// mint, any failure rolls the debt increase back.
func (e *Engine) Mint(ctx context.Context, party string, amount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "mint")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	return e.finish("mint", e.mint(ctx, party, amount))
}

func (e *Engine) mint(ctx context.Context, party string, amount *num.Uint) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	tx := e.ledger.Begin()
	if err := tx.AddDebt(party, amount); err != nil {
		tx.Rollback()
		return err
	}
	if err := e.checkSolvency(ctx, party); err != nil {
		tx.Rollback()
		return err
	}

	ok, err := e.debt.Mint(ctx, party, amount)
	if err != nil || !ok {
		tx.Rollback()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMintFailed, err)
		}
		return ErrMintFailed
	}
	tx.Commit()

	e.broker.Send(events.NewMintEvent(ctx, party, amount))
	if e.log.IsDebug() {
		e.log.Debug("debt minted",
			logging.PartyID(party),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Withdraw releases amount of the party's collateral back to them. The
// rule is strict: requesting the full balance is disallowed, the amount
// must be strictly less than the current balance. The post-withdrawal
// health factor is enforced before the asset source is called.
func (e *Engine) Withdraw(ctx context.Context, party, asset string, amount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "withdraw")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	return e.finish("withdraw", e.withdraw(ctx, party, asset, amount))
}

func (e *Engine) withdraw(ctx context.Context, party, asset string, amount *num.Uint) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !e.registry.IsAllowed(asset) {
		return assets.ErrUnknownAsset
	}
	if amount.GTE(e.ledger.GetCollateral(party, asset)) {
		return ErrInsufficientCollateral
	}

	tx := e.ledger.Begin()
	if err := tx.SubCollateral(party, asset, amount); err != nil {
		tx.Rollback()
		return err
	}
	if err := e.checkSolvency(ctx, party); err != nil {
		tx.Rollback()
		return err
	}

	ok, err := e.sources[asset].Transfer(ctx, party, amount)
	if err != nil || !ok {
		tx.Rollback()
		return transferFailed(err)
	}
	tx.Commit()

	e.broker.Send(events.NewWithdrawalEvent(ctx, party, asset, amount))
	if e.log.IsDebug() {
		e.log.Debug("collateral withdrawn",
			logging.PartyID(party),
			logging.AssetID(asset),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Burn destroys amount units of the party's minted debt. The debt token
// first moves the units from the party to the engine and destroys them,
// the ledger debt is decreased only once the collaborator calls
// succeeded.
func (e *Engine) Burn(ctx context.Context, party string, amount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "burn")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	return e.finish("burn", e.burn(ctx, party, amount))
}

func (e *Engine) burn(ctx context.Context, party string, amount *num.Uint) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.GT(e.ledger.GetDebt(party)) {
		return ErrInsufficientDebtToBurn
	}

	ok, err := e.debt.TransferFrom(ctx, party, engineParty, amount)
	if err != nil || !ok {
		return transferFailed(err)
	}
	if err := e.debt.Burn(ctx, amount); err != nil {
		return fmt.Errorf("debt token burn: %w", err)
	}

	tx := e.ledger.Begin()
	if err := tx.SubDebt(party, amount); err != nil {
		// checked above, the ledger did not change in between
		tx.Rollback()
		return err
	}
	tx.Commit()

	e.broker.Send(events.NewBurnEvent(ctx, party, amount))
	if e.log.IsDebug() {
		e.log.Debug("debt burned",
			logging.PartyID(party),
			logging.BigUint("amount", amount),
		)
	}
	return nil
}

// Redeem releases collateral and burns debt as one transaction. The
// solvency invariant is recomputed once, after both legs are applied.
func (e *Engine) Redeem(ctx context.Context, party, asset string, collateralAmount, debtAmount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "redeem")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	err := e.redeem(ctx, party, party, party, asset, collateralAmount, debtAmount, true)
	if err == nil {
		e.broker.Send(events.NewRedemptionEvent(ctx, party, asset, collateralAmount, debtAmount))
	}
	return e.finish("redeem", err)
}

// RedeemFor is the liquidation path: it runs the same redemption
// transaction against the target's ledger, with the collateral flowing to
// the recipient, who also funds the debt burn. No health factor gate
// applies, the caller is expected to have established the target is
// liquidatable, and a single liquidation is not required to restore
// health.
func (e *Engine) RedeemFor(ctx context.Context, target, recipient, asset string, collateralAmount, debtAmount *num.Uint) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "redeem_for")
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	return e.finish("redeem_for", e.redeem(ctx, target, recipient, recipient, asset, collateralAmount, debtAmount, false))
}

func (e *Engine) redeem(ctx context.Context, party, recipient, debtPayer, asset string, collateralAmount, debtAmount *num.Uint, gated bool) error {
	if err := validateAmount(collateralAmount); err != nil {
		return err
	}
	if err := validateAmount(debtAmount); err != nil {
		return err
	}
	if !e.registry.IsAllowed(asset) {
		return assets.ErrUnknownAsset
	}
	if gated && collateralAmount.GTE(e.ledger.GetCollateral(party, asset)) {
		return ErrInsufficientCollateral
	}
	if debtAmount.GT(e.ledger.GetDebt(party)) {
		return ErrInsufficientDebtToBurn
	}

	tx := e.ledger.Begin()
	if err := tx.SubCollateral(party, asset, collateralAmount); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.SubDebt(party, debtAmount); err != nil {
		tx.Rollback()
		return err
	}
	if gated {
		if err := e.checkSolvency(ctx, party); err != nil {
			tx.Rollback()
			return err
		}
	}

	ok, err := e.debt.TransferFrom(ctx, debtPayer, engineParty, debtAmount)
	if err != nil || !ok {
		tx.Rollback()
		return transferFailed(err)
	}
	if err := e.debt.Burn(ctx, debtAmount); err != nil {
		tx.Rollback()
		return fmt.Errorf("debt token burn: %w", err)
	}
	ok, err = e.sources[asset].Transfer(ctx, recipient, collateralAmount)
	if err != nil || !ok {
		tx.Rollback()
		return transferFailed(err)
	}
	tx.Commit()

	if e.log.IsDebug() {
		e.log.Debug("collateral redeemed",
			logging.PartyID(party),
			logging.String("recipient", recipient),
			logging.AssetID(asset),
			logging.BigUint("collateral-amount", collateralAmount),
			logging.BigUint("debt-amount", debtAmount),
		)
	}
	return nil
}

// HealthFactorOf returns the party's current health factor, reading fresh
// oracle prices.
func (e *Engine) HealthFactorOf(ctx context.Context, party string) (*num.Uint, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.exit()
	return e.healthFactor(ctx, party)
}

// CollateralValueOf returns the USD value of all collateral the party
// holds, at current oracle prices.
func (e *Engine) CollateralValueOf(ctx context.Context, party string) (*num.Uint, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.exit()
	return e.collateralValue(ctx, party)
}

// AccountInfo returns a read-only snapshot of the party's balances.
func (e *Engine) AccountInfo(party string) (*types.Account, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.exit()
	return e.ledger.AccountInfo(party)
}

// DebtOf returns the party's outstanding minted debt.
func (e *Engine) DebtOf(party string) *num.Uint {
	return e.ledger.GetDebt(party)
}

// CollateralOf returns the party's balance in the given asset.
func (e *Engine) CollateralOf(party, asset string) *num.Uint {
	return e.ledger.GetCollateral(party, asset)
}

// TokenAmountFromUsd converts a USD value (18 decimals) into an amount of
// the given asset at the current oracle price.
func (e *Engine) TokenAmountFromUsd(ctx context.Context, asset string, usd *num.Uint) (*num.Uint, error) {
	price, err := e.priceOf(ctx, asset)
	if err != nil {
		return nil, err
	}
	return AmountFromUsd(price, usd), nil
}

// TotalCollateralValue returns the USD value of all collateral held in the
// engine's custody, across all accounts. Together with the ledger's total
// debt it expresses the global solvency invariant: aggregate collateral
// value must always cover aggregate debt.
func (e *Engine) TotalCollateralValue(ctx context.Context) (*num.Uint, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.exit()
	total := num.UintZero()
	for _, party := range e.ledger.Parties() {
		v, err := e.collateralValue(ctx, party)
		if err != nil {
			return nil, err
		}
		total.AddSum(v)
	}
	return total, nil
}

// TotalDebt returns the aggregate outstanding debt across all accounts.
func (e *Engine) TotalDebt() *num.Uint {
	return e.ledger.TotalDebt()
}

// checkSolvency recomputes the health factor over the party's current
// (mid-transaction) state and fails with ErrSolvencyViolation when below
// the minimum.
func (e *Engine) checkSolvency(ctx context.Context, party string) error {
	hf, err := e.healthFactor(ctx, party)
	if err != nil {
		return err
	}
	if hf.LT(MinHealthFactor) {
		if e.log.IsDebug() {
			e.log.Debug("operation rejected, health factor below minimum",
				logging.PartyID(party),
				logging.BigUint("health-factor", hf),
			)
		}
		return ErrSolvencyViolation
	}
	return nil
}

func (e *Engine) healthFactor(ctx context.Context, party string) (*num.Uint, error) {
	value, err := e.collateralValue(ctx, party)
	if err != nil {
		return nil, err
	}
	return HealthFactor(e.ledger.GetDebt(party), value), nil
}

func (e *Engine) collateralValue(ctx context.Context, party string) (*num.Uint, error) {
	total := num.UintZero()
	for _, asset := range e.registry.AssetIDs() {
		amount := e.ledger.GetCollateral(party, asset)
		if amount.IsZero() {
			continue
		}
		price, err := e.priceOf(ctx, asset)
		if err != nil {
			return nil, err
		}
		total.AddSum(UsdValue(price, amount))
	}
	return total, nil
}

// priceOf reads the latest price for the asset's feed. Prices are read
// fresh on every call, never cached across operations.
func (e *Engine) priceOf(ctx context.Context, asset string) (*num.Uint, error) {
	feed, err := e.registry.PriceFeedOf(asset)
	if err != nil {
		return nil, err
	}
	price, ok := e.prices.LatestPrice(ctx, feed)
	if !ok {
		return nil, fmt.Errorf("%w: %s", oracles.ErrOracleUnavailable, asset)
	}
	return price, nil
}

func validateAmount(amount *num.Uint) error {
	if amount == nil || amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

func transferFailed(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	return ErrTransferFailed
}
