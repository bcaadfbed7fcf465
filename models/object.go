// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CatalogObject is a deep-sky object keyed by its NGC number.
//
// Coordinates and magnitude are exact decimals so that values such as
// "13.703" round-trip through the store without binary-float drift.
type CatalogObject struct {
	NGC           int64   `json:"ngc" dynamodbav:"ngc"`
	Name          string  `json:"name" dynamodbav:"name"`
	Type          string  `json:"type" dynamodbav:"type"`
	Constellation string  `json:"constellation" dynamodbav:"constellation"`
	RA            Decimal `json:"ra" dynamodbav:"ra"`
	Dec           Decimal `json:"dec" dynamodbav:"dec"`
	Magnitude     Decimal `json:"magnitude" dynamodbav:"magnitude"`
	Collection    string  `json:"collection" dynamodbav:"collection"`
}

// ObjectSummary is the listing view of a CatalogObject: identifying and
// numeric fields only.
type ObjectSummary struct {
	NGC           int64   `json:"ngc"`
	Constellation string  `json:"constellation"`
	RA            Decimal `json:"ra"`
	Dec           Decimal `json:"dec"`
	Magnitude     Decimal `json:"magnitude"`
}

// Summary drops name, type and collection.
func (o CatalogObject) Summary() ObjectSummary {
	return ObjectSummary{
		NGC:           o.NGC,
		Constellation: o.Constellation,
		RA:            o.RA,
		Dec:           o.Dec,
		Magnitude:     o.Magnitude,
	}
}
