package cmapgen

import (
	"bufio"
	"fmt"
	"io"
)

// EmitOptions control the header comments and the declared identifier
// of the generated array. Zero values fall back to the CMRMAP
// conventions used by the downstream renderer.
type EmitOptions struct {
	ArrayName   string
	Label       string
	Provenance  string
	Description string
	Rows        int
	Cols        int
}

func (o *EmitOptions) withDefaults() {
	if o.ArrayName == "" {
		o.ArrayName = "CMRMAP_DATA"
	}
	if o.Label == "" {
		o.Label = "CMRMAP data"
	}
	if o.Provenance == "" {
		o.Provenance = "Generated from Friture's plotting/generated_cmrmap.py"
	}
	if o.Description == "" {
		o.Description = "Black → Purple → Red → Yellow → White"
	}
	if o.Rows == 0 {
		o.Rows = 256
	}
	if o.Cols == 0 {
		o.Cols = 3
	}
}

// Emit writes the table as a statically-initialized C++ array literal.
// Channel values are printed with 18 digits after the decimal point and
// an "f" literal suffix; every data line but the last ends with a
// comma. The declared dimensions stay fixed at [256][3] regardless of
// the actual entry count, which is reported in the leading comment.
func Emit(w io.Writer, table Table, opts EmitOptions) error {
	opts.withDefaults()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %s - %d RGB triplets\n", opts.Label, len(table))
	fmt.Fprintf(bw, "// %s\n", opts.Provenance)
	fmt.Fprintf(bw, "// %s\n", opts.Description)
	fmt.Fprintf(bw, "static const float %s[%d][%d] = {\n", opts.ArrayName, opts.Rows, opts.Cols)

	for i, rgb := range table {
		terminator := ","
		if i == len(table)-1 {
			terminator = ""
		}
		fmt.Fprintf(bw, "    {%.18ff, %.18ff, %.18ff}%s\n", rgb[0], rgb[1], rgb[2], terminator)
	}

	fmt.Fprintln(bw, "};")
	return bw.Flush()
}
