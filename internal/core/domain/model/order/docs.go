// Package order provides domain entities and business logic for order
// management in the shop backend. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning submitted lines and the lifecycle state
//   - Item: A validated, immutable order line
//   - NewItems: Whole-batch validation of submitted order lines
//
// Key business rules:
//   - Orders belong to exactly one user and carry at least one item
//   - Status moves forward only along NIEZATWIERDZONE -> ZATWIERDZONE ->
//     ZREALIZOWANE; ANULOWANE cancels any non-terminal order and is terminal
//   - The approval timestamp is stamped once and never reset
//   - Opinions are admitted only on terminal orders, by the owning user
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
