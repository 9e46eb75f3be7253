/*
Package domain contains the core value types shared by the isaw engine and its hosts.

It defines what an enumeration request looks like (alphabet, length bounds, filter
settings), what comes back (a lazy ResultStream or an immutable CountTable) and the
errors that can be reported before any generation starts. The package has no
dependencies beyond the standard library so that adapters and the CLI can share it.

# Key Entities

  - LengthRange: The inclusive bound on arrangement length (Min, Max).
  - FilterConfig: Pattern, case folding, exact length and uniqueness settings.
  - ResultStream: The lazy, forward-only, optionally capped sequence of results.
  - CountTable: Closed-form totals per length, computed without generation.
  - Hooks: Optional callbacks fired while a stream is consumed.
*/
package domain
