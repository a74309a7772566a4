// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package access

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Control holds the owner and oracle roles for one gateway instance.
// Both addresses are non-zero for the lifetime of the instance once
// Initialize succeeds.
type Control struct {
	owner       common.Address
	oracle      common.Address
	initialized bool
}

func NewControl() *Control {
	return &Control{}
}

// Initialize sets the owner and oracle roles. It can only be called once.
func (c *Control) Initialize(owner common.Address, oracle common.Address) error {
	if c.initialized {
		return ErrInvalidArgument
	}
	if owner == (common.Address{}) || oracle == (common.Address{}) {
		return ErrInvalidArgument
	}

	c.owner = owner
	c.oracle = oracle
	c.initialized = true
	return nil
}

// ChangeOracle replaces the oracle role. Only the owner may call it.
// Returns the previous oracle so the caller can report the rotation.
func (c *Control) ChangeOracle(caller common.Address, newOracle common.Address) (common.Address, error) {
	if err := c.RequireOwner(caller); err != nil {
		return common.Address{}, err
	}
	if newOracle == (common.Address{}) {
		return common.Address{}, ErrInvalidArgument
	}

	previous := c.oracle
	c.oracle = newOracle
	return previous, nil
}

func (c *Control) RequireOwner(caller common.Address) error {
	if !c.initialized || caller != c.owner {
		return ErrUnauthorized
	}
	return nil
}

func (c *Control) RequireOracle(caller common.Address) error {
	if !c.initialized || caller != c.oracle {
		return ErrUnauthorized
	}
	return nil
}

func (c *Control) Owner() common.Address {
	return c.owner
}

func (c *Control) Oracle() common.Address {
	return c.oracle
}

func (c *Control) Initialized() bool {
	return c.initialized
}
