package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// moveRow is the columnar form of a MoveRecord. One row per move decision,
// compact enough to keep whole experiment runs around for later analysis.
type moveRow struct {
	Game       int32  `parquet:"game"`
	Step       int32  `parquet:"step"`
	Player     string `parquet:"player,dict"`
	Cell       int32  `parquet:"cell"`
	DurationMs int64  `parquet:"duration_ms"`
	Playouts   int32  `parquet:"playouts"`
	Nodes      int32  `parquet:"nodes"`
}

// WriteMoveParquet stores the move records as a zstd-compressed parquet file
// next to the CSV output.
func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.parquet")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move parquet file: %w", err)
	}

	pw := parquet.NewGenericWriter[moveRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)

	rows := make([]moveRow, len(records))
	for i, r := range records {
		rows[i] = moveRow{
			Game:       int32(r.Game),
			Step:       int32(r.Step),
			Player:     r.Player,
			Cell:       int32(r.Cell),
			DurationMs: r.Duration.Milliseconds(),
			Playouts:   int32(r.Playouts),
			Nodes:      int32(r.Nodes),
		}
	}

	if _, err := pw.Write(rows); err != nil {
		pw.Close()
		f.Close()
		return fmt.Errorf("failed to write move parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close move parquet writer: %w", err)
	}
	return f.Close()
}
