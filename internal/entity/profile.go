package entity

import "github.com/waprofiles/waprofiles/constants"

// Profile is the synthesized record for one phone number. Profiles are
// constructed once by the synthesizer and never mutated afterwards.
type Profile struct {
	Number           string                `json:"number"`
	IsRegistered     bool                  `json:"is_registered"`
	ProfilePicture   string                `json:"profile_picture"`
	About            string                `json:"about"`
	AboutLastUpdated string                `json:"about_last_updated"`
	AccountType      constants.AccountType `json:"account_type"`
}

// Field is one named value of a record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered field walk of one exported row. Encoders consume
// records rather than Profiles so that rows with differing field sets
// still serialize uniformly.
type Record []Field

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Record walks the profile's fields in their canonical order.
func (p *Profile) Record() Record {
	return Record{
		{Key: "number", Value: p.Number},
		{Key: "is_registered", Value: p.IsRegistered},
		{Key: "profile_picture", Value: p.ProfilePicture},
		{Key: "about", Value: p.About},
		{Key: "about_last_updated", Value: p.AboutLastUpdated},
		{Key: "account_type", Value: string(p.AccountType)},
	}
}
