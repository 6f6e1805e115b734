/*
Package cmdline splits a single launch command string into its argument
vector, honoring single and double quoted regions as well as backslash-escaped
whitespace.

Quote characters are never stripped: they travel along into the resulting
arguments unchanged, so that the process-spawning side can decide how to treat
them. No other shell syntax is interpreted; there is no globbing, variable
expansion, redirection, or piping.
*/
package cmdline
