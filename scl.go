/*
Package scl is a toolkit for building secure multiparty computation (MPC)
protocols. It provides:

  - Fixed-precision prime fields and rings (package field, ring2k), an
    arbitrary-precision integer (package bignum), and an elliptic curve group
    over secp256k1 (package curve).
  - Generic polymorphic containers — vector, matrix, polynomial, fixed-width
    array — over any element satisfying the algebra.Elt contract (package
    algebra).
  - Secret sharing schemes: additive, Shamir, Feldman, and Pedersen (package
    share).
  - A cooperative-concurrency protocol execution model (packages coroutine,
    protocol) running over a packet-oriented channel abstraction (package
    netio) with a type-directed serialization layer (package serialize).
  - A deterministic network simulator that co-executes multiple parties on a
    single thread and measures protocol behavior under configurable network
    conditions (package sim).

scl aims at letting protocol authors reason about MPC algorithms without
re-deriving the algebraic and runtime substrate they sit on.
*/
package scl
