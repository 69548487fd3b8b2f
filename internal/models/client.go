package models

// Client is a customer of the sales schema. Region is the categorical
// dimension used by the dashboard filter.
type Client struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Region string `db:"region" json:"region"`
}
