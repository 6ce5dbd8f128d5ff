package output

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "order\tgene\tlength\tlocation\ttranslation"

// Formats lists every record format in help-text order.
var Formats = []string{FormatText, FormatTSV, FormatJSON, FormatJSONL, FormatFASTA}
