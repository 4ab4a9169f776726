package ingest

import "context"

// NetlistIngestor parses a synthesis netlist into NodeSpec/EdgeSpec
// entities plus the FieldUpdate writes that accompany them. Concrete
// parsers are external collaborators (§1); this module declares only the
// boundary.
type NetlistIngestor interface {
	IngestNetlist(ctx context.Context, path string) ([]NodeSpec, []EdgeSpec, []FieldUpdate, error)
}

// ConstraintParser parses a constraint file (e.g. SDC) into the
// ConstraintRecord family consumed by package constraints.
type ConstraintParser interface {
	ParseConstraints(ctx context.Context, path string) ([]ConstraintRecord, error)
}

// TimingReportParser parses a timing report into TimingPathRecord values.
type TimingReportParser interface {
	ParseTimingReport(ctx context.Context, path string) ([]TimingPathRecord, error)
}

// FloorplanIngestor parses a floorplan description into the FieldUpdate
// writes that attach Pblock membership and physical placement to nodes.
type FloorplanIngestor interface {
	IngestFloorplan(ctx context.Context, path string) ([]FieldUpdate, error)
}

// BoardIngestor parses a board/package description into the
// NodeSpec/EdgeSpec/FieldUpdate values connecting package pins to board
// connectors.
type BoardIngestor interface {
	IngestBoard(ctx context.Context, path string) ([]NodeSpec, []EdgeSpec, []FieldUpdate, error)
}
