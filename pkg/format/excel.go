package format

// oleSignature is the compound file binary (OLE2) magic, the container of
// legacy Office documents such as .xls workbooks.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

var excelRule = Rule{
	Name:        "xls",
	Description: "Microsoft Excel workbook (OLE container)",
	Signatures:  [][]byte{oleSignature},
	Sniff:       sniffExcel,
}

func sniffExcel(w *Window) FileType {
	if w.MatchPrefix(oleSignature) {
		return Excel
	}
	return Unknown
}
