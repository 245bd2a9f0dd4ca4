// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Outcome labels passed to [Observer].
const (
	OutcomeOK = "ok"

	ReadOutcomeAbsent     = "absent"
	ReadOutcomeCorrupt    = "corrupt"
	ReadOutcomeUnreadable = "unreadable"

	WriteOutcomeInvalid = "invalid"
	WriteOutcomeFailed  = "failed"

	AssetOutcomeNotFound = "not_found"
	AssetOutcomeError    = "error"
)

type nopObserver struct{}

func (nopObserver) ObserveConfigRead(string)  {}
func (nopObserver) ObserveConfigWrite(string) {}
func (nopObserver) ObserveAssetLookup(string) {}
