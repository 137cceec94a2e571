package domain

import "time"

// ReportColumn describes one column the print/PDF renderer lays out.
// Width is relative to the other columns.
type ReportColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width int    `json:"width"`
}

// Report is the shape handed to the rendering sink: a title, ordered
// column descriptors, and plain string rows.
type Report struct {
	Title       string         `json:"title"`
	Columns     []ReportColumn `json:"columns"`
	Rows        [][]string     `json:"rows"`
	GeneratedAt time.Time      `json:"generated_at"`
}
