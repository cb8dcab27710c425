package model

// Settings is the single per-installation configuration record.
//
// Its presence in the store is the sole signal that onboarding completed.
// PINEnabled and BiometricEnabled are stored flags only; enforcement lives
// in a front-end outside this core.
type Settings struct {
	Language         string
	CountryCode      string
	CurrencyCode     string
	PINEnabled       bool
	BiometricEnabled bool
	IsOnboarded      bool
}
