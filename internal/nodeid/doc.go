/*
Package nodeid parses the addresses ability files use to name components.

An address is a dot-separated path of segments, each optionally indexed:
`condition.alive`, `trigger.on_attack[1]`. A component address has exactly
two segments, the kind and the name; only the name of a trigger address
may carry an index, which selects one of the values the trigger provides.
*/
package nodeid
