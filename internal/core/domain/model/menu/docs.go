// Package menu contains the daily menu offering aggregate.
//
// An Offering is a specific day's purchasable menu bundle with a finite
// available quantity. The aggregate owns the stock ledger for that quantity:
// Reserve is the only decrement path (at order creation) and Release is the
// only increment path (at order cancellation). Quantity never goes negative.
package menu
