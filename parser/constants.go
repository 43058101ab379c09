package parser

// MaxSymbolLength is the longest a MIXAL symbol may be.
const MaxSymbolLength = 10

// TopMemoryCell is the highest memory address, and the first cell the
// literal-constant pool allocates from, working downward.
const TopMemoryCell = 3999
