package vm

// DefaultMaxCycles bounds a Run call so a buggy or infinite-looping program
// cannot hang the host process; callers that want to run forever pass 0.
const DefaultMaxCycles = 10_000_000

// DefaultLogCapacity is the starting capacity of the instruction-address log.
const DefaultLogCapacity = 1024

// MaxFieldSpec is the largest legal encoded field byte, (5:5) -> 8*5+5.
const MaxFieldSpec = 45
