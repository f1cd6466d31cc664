/*
Package oracle is the protocol adapter between the DPLL search engine and an
external propagation procedure.

The exchange is file based: each propagation round writes a small textual
trigger record (decision level and trigger literal), launches the engine
command, then reads back a textual response made of a status block, a
propagation narrative and a complete variable-state block. The Client type
implements solver.Oracle on top of this exchange; the record codec is
exposed separately so test harnesses can play the external side.
*/
package oracle
