// Package domain contains shared domain types used across entity sub-packages.
// The submission entity lives in domain/submission. This root package holds
// the sentinel errors and the field-level ValidationError shared by every
// layer, so adapters can map failures without importing entity packages.
package domain
