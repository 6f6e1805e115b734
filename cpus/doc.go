/*
Package cpus turns CPU selections into affinity masks, and supports pinning
tasks and processes to the CPUs selected.

A CPU selection comes in several shapes, depending on who produced it:

  - comma-separated CPU indices, such as “0,2,3” (see [MaskFromCSV]),
  - one boolean per CPU, CPU 0 first (see [MaskFromBools]),
  - a half-open range of CPU indices (see [MaskFromRange]),
  - the Linux kernel CPU list format, such as “0-3,6” (see [NewList]).

[Mask] is the single-word integer affinity mask with bit i representing CPU i,
as expected by process launchers that take a numeric (or hexadecimal) CPU
restriction. [List] and [Set] instead are not limited to 64 CPUs.

  - [List] internally stores CPU numbers as ranges, such as 1-4, 8-15.
  - [Set] internally stores CPU numbers as bits in a sequence of words, such as
    (hex) ff1e, mirroring the representation used by the Linux affinity
    syscalls.

[List.Set] converts a List into its corresponding Set. In the opposite
direction, [Set.List] converts a Set into its equivalent List. [Set.Mask] and
[List.Mask] narrow down to the first 64 CPUs, while [Mask.Set] and [Mask.List]
widen a Mask.
*/
package cpus
