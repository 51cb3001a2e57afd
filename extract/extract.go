// Package extract implements the heuristic field extraction engine: it
// normalizes rendered lines, segments them into items, trims page noise,
// classifies field headers and accumulates values into canonical records.
package extract
