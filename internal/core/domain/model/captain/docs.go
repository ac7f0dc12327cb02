// Package captain implements the Captain aggregate of the order-management
// system. A captain is a delivery driver with an availability flag, an
// optional last known position and the performance figures (rating and
// lifetime delivered-orders count) consumed by the dispatch ranking.
package captain
