// Package order implements the Order aggregate of the marketplace: a single
// buyer/seller sale settled through mobile money with escrow-like confirmation.
//
// The package includes:
//   - Order: the aggregate root owning the status machine, timers, dispute
//     metadata, review flags and audit timestamps
//   - Status: the lifecycle enum and its transition table
//   - Fees: the frozen money split (total, platform cut, seller share)
//   - Product, PaymentInfo, Proof, DeliveryType: snapshot value objects
//   - Event: what happened, for whom, recorded on each transition
//
// Key business rules:
//   - Happy path: initiated -> proof_sent -> confirmed -> delivered
//   - Cancellation only from initiated; manual dispute from any non-terminal status
//   - An order left in proof_sent or confirmed 24h after the proof escalates
//     to disputed with the seller blocked
//   - delivered, disputed and cancelled are absorbing
//   - Illegal transitions fail with errs.PreconditionFailedError and leave
//     the order unchanged
package order
