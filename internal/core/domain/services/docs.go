// Package services provides domain services that decide order lifecycle
// questions spanning more than one aggregate or needing the acting role.
//
// The package includes:
//   - TransitionValidator: the adjacency table and role gating of order status changes
//   - EffectDispatcher: the side effects a committed transition requires
//   - Handoff table: which driver assignment status mirrors a driver order status
//
// All services are pure: they read aggregates and return decisions, and the
// application layer persists whatever they decide.
package services
