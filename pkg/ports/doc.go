/*
Package ports defines the driven ports (interfaces) for the isaw engine.

These interfaces decouple the generation core from the way external data is loaded,
so the engine can validate words against a file on disk, an in-memory list or a test
stand-in without knowing which.

# Key Interfaces

  - Dictionary: Answers membership questions for the words mode.
*/
package ports
