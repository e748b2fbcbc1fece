package domain

import "github.com/shopspring/decimal"

type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"releaseYear"`
	Available    bool   `json:"available"`
	GasAvailable bool   `json:"gasAvailable"`
}

// CarCategory groups interchangeable vehicles under a shared daily price.
// Price accepts both JSON numbers and numeric strings on decode.
type CarCategory struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	CarIDs []string        `json:"carIds"`
	Price  decimal.Decimal `json:"price"`
}
