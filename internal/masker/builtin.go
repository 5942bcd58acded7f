package masker

// BuiltinRules is the fixed, ordered set of masking rules applied to
// every log line unless a LogParserConfig opts out. Each rule captures
// the non-alphanumeric context around its match in the named groups S
// and E and restores it in the replacement, so masking never consumes
// the delimiter that separates a parameter from its neighbors.
var BuiltinRules = []Rule{
	MustRule("ids",
		`(?P<S>^|[^A-Za-z\d])([A-Za-z\d]{2,}:){3,}[A-Za-z\d]{2,}(?P<E>[^A-Za-z\d]|$)`,
		`$S<§ID§>$E`),
	MustRule("ipv4",
		`(?P<S>^|[^A-Za-z\d])\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}(:\d{1,5})?(?P<E>[^A-Za-z\d]|$)`,
		`$S<§IP§>$E`),
	MustRule("hex_sequence",
		`(?P<S>^|[^A-Za-z\d])([A-Fa-f\d]{4,}\s){3,}[A-Fa-f\d]{4,}(?P<E>[^A-Za-z\d]|$)`,
		`$S<§SEQ§>$E`),
	MustRule("hex_0x",
		`(?P<S>^|[^A-Za-z\d])0[xX][0-9A-Fa-f]+(?P<E>[^A-Za-z\d]|$)`,
		`$S<§HEX§>$E`),
	MustRule("hex_plain",
		`(?P<S>^|[^A-Za-z\d])[0-9A-Fa-f]{4,}(?P<E>[^A-Za-z\d]|$)`,
		`$S<§HEX§>$E`),
	MustRule("size",
		`(?P<S>^|[^A-Za-z\d])\d+(\.\d+)?[KMGT]?i?B(?P<E>[^A-Za-z\d]|$)`,
		`$S<§SIZE§>$E`),
	MustRule("time",
		`(?P<S>^|[^A-Za-z\d])(\d{1,2}:)+\d{1,2}(?P<E>[^A-Za-z\d]|$)`,
		`$S<§TIME§>$E`),
	MustRule("num_grouped",
		`(?P<S>^|[^A-Za-z\d])\d{1,3}(,\d{3})+(\.\d+)?(?P<E>[^A-Za-z\d]|$)`,
		`$S<§NUM§>$E`),
	MustRule("num_plain",
		`(?P<S>^|[^A-Za-z\d])[-+]?\d+(?P<E>[^A-Za-z\d]|$)`,
		`$S<§NUM§>$E`),
}
