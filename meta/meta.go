// meta/meta.go
package meta

// NUM_TERRITORIES is the size of the standard map.
const NUM_TERRITORIES = 5

// HOLD_TARGET is the number of territories a "hold" mission requires.
const HOLD_TARGET = 3

// DIE_SIDES is the number of faces on each combat die.
const DIE_SIDES = 6

// MAX_TURNS caps autopilot games.
const MAX_TURNS = 300

// GAMES is the default number of simulated games.
const GAMES = 100
