// Package cpu implements the LS8 microprocessor, its program loader and
// assembler.
//
// The CPU consists of a program counter (PC), eight 8-bit registers (R0-R7)
// with R7 reserved as the stack pointer, a 256 byte memory, an ALU, a
// downward growing stack held in memory, and the Equal flag set by CMP.
//
// Programs are loaded either from the .ls8 text format (one binary literal
// byte per line) or assembled from LS8 assembly, which supports labels,
// equates, and compile-time expression evaluation.
package cpu
