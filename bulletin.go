// Package bulletin converts bulletin-style announcement pages into
// structured records with a fixed set of canonical fields.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The extraction engine lives in extract/, and
// implementations of the I/O collaborators live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, excelize/).
package bulletin
