// Package kernel provides the shared value objects of the laundry domain.
//
// The package includes:
//   - UUID: identifier for orders, assignments, photos and actors
//   - Address: a pickup or delivery address
//   - TimeWindow: a pickup or delivery slot agreed with the customer
//
// All values are immutable and must be built through their constructors;
// zero values fail Validate.
package kernel
