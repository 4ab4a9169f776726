// Package ingest defines the §6 wire-format types external adapters use
// to feed the fusion engine: FieldUpdate and NodeSpec/EdgeSpec for entity
// creation and field writes, the ConstraintRecord tagged-variant family
// consumed by package constraints, and TimingPathRecord for timing-report
// ingestion. It also declares the adapter interfaces
// (NetlistIngestor/ConstraintParser/TimingReportParser/FloorplanIngestor/
// BoardIngestor) as pure boundaries: this module never parses a netlist,
// SDC file, or timing report itself, matching §1's "parsing of external
// artifact formats [...] remain external collaborators."
package ingest
