// Package product contains the Product aggregate: a catalog entry with a
// price, a stock level, and the optional trade attributes some business
// categories need (batch numbers and expiry dates for pharmacies, brands and
// part numbers for auto spare parts).
package product
