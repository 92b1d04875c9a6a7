// Package order holds the Order aggregate and its status registry.
//
// The package includes:
//   - Status: the 18 lifecycle statuses with step numbers, terminal and
//     failure classification (the single source of truth for status data)
//   - PaymentStatus: PENDING, PAID, REFUNDED
//   - Order: the aggregate root carrying the current status and the
//     one-way invoice flags
//
// Key business rules:
//   - An order is placed in ORDER_PLACED and never deleted
//   - DELIVERED, CANCELLED and REFUNDED are terminal
//   - Invoice generation unlocks once PROCESSING_COMPLETED is reached and the
//     invoice can be generated only once
//   - Transition legality is decided by services.TransitionValidator
package order
