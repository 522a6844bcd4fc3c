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

package liquidation

import (
	"context"
	"errors"
	"time"

	"code.haloprotocol.io/halo/core/collateral"
	"code.haloprotocol.io/halo/core/events"
	"code.haloprotocol.io/halo/libs/num"
	"code.haloprotocol.io/halo/logging"
	"code.haloprotocol.io/halo/metrics"
)

const (
	namedLogger = "liquidation"
	engineName  = "liquidation"
)

// ErrHealthFactorOk is returned when liquidation is attempted on an
// account whose health factor is at or above the minimum. Only unhealthy
// accounts can be liquidated.
var ErrHealthFactorOk = errors.New("health factor ok, account not liquidatable")

// CollateralEngine is the slice of the collateral engine the liquidation
// module relies on: reading the target's solvency, converting the covered
// debt into a collateral quantity, and running the redemption transaction
// against the target's ledger.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/collateral_engine_mock.go -package mocks code.haloprotocol.io/halo/core/liquidation CollateralEngine
type CollateralEngine interface {
	HealthFactorOf(ctx context.Context, party string) (*num.Uint, error)
	TokenAmountFromUsd(ctx context.Context, asset string, usd *num.Uint) (*num.Uint, error)
	RedeemFor(ctx context.Context, target, recipient, asset string, collateralAmount, debtAmount *num.Uint) error
}

// Broker send events.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks code.haloprotocol.io/halo/core/liquidation Broker
type Broker interface {
	Send(event events.Event)
}

// Engine computes the seized collateral quantity and bonus for a
// liquidator covering another account's debt, then delegates to the
// collateral engine's redemption path.
type Engine struct {
	log    *logging.Logger
	cfg    Config
	engine CollateralEngine
	broker Broker
}

func New(log *logging.Logger, cfg Config, engine CollateralEngine, broker Broker) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	metrics.Register()
	return &Engine{
		log:    log,
		cfg:    cfg,
		engine: engine,
		broker: broker,
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the liquidation engine.
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

// Liquidate forcibly closes part of target's position: the liquidator
// covers debtToCover of the target's debt and receives the equivalent
// collateral quantity plus a 10% bonus. Only permitted while the target's
// health factor is below minimum. A single call is not required to fully
// restore the target's health, there is deliberately no post-condition
// re-check. Returns the total collateral transferred to the liquidator.
func (e *Engine) Liquidate(ctx context.Context, liquidator, target, asset string, debtToCover *num.Uint) (*num.Uint, error) {
	defer metrics.EngineTimeCounterAdd(time.Now(), engineName, "liquidate")
	seized, err := e.liquidate(ctx, liquidator, target, asset, debtToCover)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.EngineOpCounterInc(engineName, "liquidate", status)
	return seized, err
}

func (e *Engine) liquidate(ctx context.Context, liquidator, target, asset string, debtToCover *num.Uint) (*num.Uint, error) {
	if debtToCover == nil || debtToCover.IsZero() {
		return nil, collateral.ErrZeroAmount
	}

	hf, err := e.engine.HealthFactorOf(ctx, target)
	if err != nil {
		return nil, err
	}
	if hf.GTE(collateral.MinHealthFactor) {
		if e.log.IsDebug() {
			e.log.Debug("liquidation rejected, target is healthy",
				logging.PartyID(target),
				logging.BigUint("health-factor", hf),
			)
		}
		return nil, ErrHealthFactorOk
	}

	seized, err := e.engine.TokenAmountFromUsd(ctx, asset, debtToCover)
	if err != nil {
		return nil, err
	}
	bonus := collateral.LiquidationBonus(seized)
	total := num.Sum(seized, bonus)

	if err := e.engine.RedeemFor(ctx, target, liquidator, asset, total, debtToCover); err != nil {
		return nil, err
	}

	e.broker.Send(events.NewLiquidationEvent(ctx, liquidator, target, asset, total, debtToCover))
	e.log.Info("position liquidated",
		logging.String("liquidator", liquidator),
		logging.PartyID(target),
		logging.AssetID(asset),
		logging.BigUint("seized-amount", total),
		logging.BigUint("debt-covered", debtToCover),
	)
	return total, nil
}
