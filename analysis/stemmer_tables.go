package analysis

// suffixRule rewrites a suffix when the remaining stem passes the
// measure guard of the step it belongs to.
type suffixRule struct {
	from string
	to   string
}

// step2Rules is ordered; the first matching suffix wins.
var step2Rules = []suffixRule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
	{"logi", "log"},
	{"fulli", "ful"},
	{"lessli", "less"},
}

var step3Rules = []suffixRule{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

// step4Suffixes are removed outright when m(stem) > 1; "ion" additionally
// requires the stem to end in s or t.
var step4Suffixes = []string{
	"ement",
	"ance",
	"ence",
	"able",
	"ible",
	"ment",
	"ant",
	"ent",
	"ion",
	"ism",
	"ate",
	"iti",
	"ous",
	"ive",
	"ize",
	"al",
	"er",
	"ic",
	"ou",
}
