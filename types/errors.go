// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrIncorrectAmount paid value plus fund balance does not settle the required amount exactly
	ErrIncorrectAmount = errors.New("ErrIncorrectAmount")
	// ErrIncorrectStatus game status does not allow the operation
	ErrIncorrectStatus = errors.New("ErrIncorrectStatus")
	// ErrInvalidIndex number index out of the game's lucky number range
	ErrInvalidIndex = errors.New("ErrInvalidIndex")
	// ErrNotAuthorized sender lacks the role the operation requires
	ErrNotAuthorized = errors.New("ErrNotAuthorized")
	// ErrAlreadyWithdrew award of this game already claimed by the sender
	ErrAlreadyWithdrew = errors.New("ErrAlreadyWithdrew")
	// ErrIncorrectTiming operation attempted outside its time window
	ErrIncorrectTiming = errors.New("ErrIncorrectTiming")
	// ErrReachPlayerLimit game already holds maxPlayerCount distinct players
	ErrReachPlayerLimit = errors.New("ErrReachPlayerLimit")
	// ErrVrfRequestNotFound randomness request unknown or already consumed
	ErrVrfRequestNotFound = errors.New("ErrVrfRequestNotFound")
)
