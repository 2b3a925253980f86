package format

// parquetMagic is the 4-byte signature closing every Parquet file.
// Parquet is footer-addressed: the file metadata sits at the end, so the
// trailing magic is the reliable marker, independent of prefix content.
var parquetMagic = []byte("PAR1")

var parquetRule = Rule{
	Name:        "parquet",
	Description: "Apache Parquet columnar file",
	Sniff:       sniffParquet,
}

func sniffParquet(w *Window) FileType {
	if w.MatchFooter(parquetMagic) {
		return Parquet
	}
	return Unknown
}
